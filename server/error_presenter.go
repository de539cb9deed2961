/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package server

import (
	"net/http"

	"github.com/botobag/artemis/graphql/handler"
	"go.uber.org/zap"
)

// errorPresenter extends handler.DefaultErrorPresenter to answer malformed HTTP requests (oversized
// or undecodable bodies) with 400 instead of an empty response.
type errorPresenter struct {
	handler.DefaultErrorPresenter
	logger *zap.Logger
}

func newErrorPresenter(logger *zap.Logger) errorPresenter {
	return errorPresenter{
		DefaultErrorPresenter: handler.DefaultErrorPresenter{
			ResultPresenter: handler.DefaultResultPresenter{},
		},
		logger: logger,
	}
}

// Write implements handler.ErrorPresenter.
func (presenter errorPresenter) Write(w http.ResponseWriter, err error) {
	presenter.logger.Debug("rejected GraphQL request", zap.Error(err))

	switch err := err.(type) {
	case *handler.HTTPRequestParseError:
		http.Error(w, err.Error(), http.StatusBadRequest)

	case handler.ErrEmptyQuery, *handler.ErrParseQuery, *handler.ErrPrepare:
		presenter.DefaultErrorPresenter.Write(w, err)

	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
