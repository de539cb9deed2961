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

// Package server serves the staffgraph schema over HTTP.
package server

import (
	"context"
	"io"
	"net"
	"net/http"

	"github.com/botobag/artemis/graphql"
	"github.com/botobag/artemis/graphql/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/botobag/staffgraph/config"
)

// Server routes HTTP requests to the GraphQL handler.
type Server struct {
	config config.Server
	logger *zap.Logger
	router chi.Router
}

// New creates a Server for the given schema. Queries are accepted on /graphql by GET and POST;
// /healthz answers liveness probes.
func New(cfg config.Server, schema graphql.Schema, logger *zap.Logger) (*Server, error) {
	cache, err := handler.NewLRUOperationCache(cfg.OperationCacheSize)
	if err != nil {
		return nil, err
	}

	graphqlHandler, err := handler.New(schema,
		handler.MaxBodySize(cfg.MaxBodySize),
		handler.OverrideOperationCache(cache),
		handler.OverrideErrorPresenter(newErrorPresenter(logger)))
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(requestID)
	router.Use(accessLog(logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	router.Method(http.MethodGet, "/graphql", graphqlHandler)
	router.Method(http.MethodPost, "/graphql", graphqlHandler)

	return &Server{
		config: cfg,
		logger: logger,
		router: router,
	}, nil
}

// Handler returns the root http.Handler of s.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe listens on the configured address and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is done. In-flight requests are then given
// config.Server.ShutdownTimeout to finish. It returns nil after a graceful shutdown.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:  s.router,
		ErrorLog: zap.NewStdLog(s.logger),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(listener)
	}()

	s.logger.Info("serving GraphQL", zap.String("addr", listener.Addr().String()))

	select {
	case err := <-errCh:
		return err

	case <-ctx.Done():
	}

	s.logger.Info("shutting down", zap.Duration("timeout", s.config.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != http.ErrServerClosed {
		return err
	}
	return nil
}
