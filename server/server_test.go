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

package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/botobag/staffgraph/config"
	"github.com/botobag/staffgraph/query"
	"github.com/botobag/staffgraph/schema"
	"github.com/botobag/staffgraph/server"
	"github.com/botobag/staffgraph/store"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// danglingSkillStore serves employees which refer to a skill that doesn't exist.
type danglingSkillStore struct {
	*store.Store
}

func (s danglingSkillStore) Employee(ref store.EmployeeRef) (store.Employee, error) {
	employee, err := s.Store.Employee(ref)
	if err != nil {
		return employee, err
	}
	employee.Skills = append(employee.Skills, store.SkillRef(s.NumSkills()))
	return employee, nil
}

func serverConfig() config.Server {
	return config.Server{
		Addr:               "127.0.0.1:0",
		OperationCacheSize: 8,
		MaxBodySize:        1 << 10,
		ShutdownTimeout:    time.Second,
	}
}

func postJSON(h http.Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

var _ = Describe("Server", func() {
	var (
		logs    *observer.ObservedLogs
		logger  *zap.Logger
		handler http.Handler
	)

	BeforeEach(func() {
		var core zapcore.Core
		core, logs = observer.New(zapcore.DebugLevel)
		logger = zap.New(core)

		s, err := server.New(serverConfig(), schema.MustNew(query.New(store.Demo())), logger)
		Expect(err).ShouldNot(HaveOccurred())
		handler = s.Handler()
	})

	It("answers health checks", func() {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		Expect(w.Code).Should(Equal(http.StatusOK))
		Expect(w.Body.String()).Should(Equal("ok"))
	})

	It("serves queries sent in JSON bodies", func() {
		w := postJSON(handler, `{"query": "{ employees { firstName lastName } }"}`)
		Expect(w.Code).Should(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).Should(Equal("application/json"))
		Expect(w.Body.String()).Should(MatchJSON(`{
			"data": {
				"employees": [
					{ "firstName": "Michael", "lastName": "Jackson" }
				]
			}
		}`))
	})

	It("serves queries sent in URLs", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/graphql?query="+url.QueryEscape(`{ projects { state } }`), nil)
		handler.ServeHTTP(w, r)
		Expect(w.Code).Should(Equal(http.StatusOK))
		Expect(w.Body.String()).Should(MatchJSON(`{
			"data": {
				"projects": [
					{ "state": "FINISHED" }
				]
			}
		}`))
	})

	It("passes variables to the query", func() {
		w := postJSON(handler, `{
			"query": "query Skill($id: ID!) { skill(id: $id) { description } }",
			"variables": { "id": "1" }
		}`)
		Expect(w.Code).Should(Equal(http.StatusOK))
		Expect(w.Body.String()).Should(MatchJSON(`{
			"data": {
				"skill": { "description": "Singing" }
			}
		}`))
	})

	It("rejects queries with syntax errors", func() {
		w := postJSON(handler, `{"query": "{ skills { "}`)
		Expect(w.Code).Should(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).Should(ContainSubstring("Syntax Error"))
	})

	It("rejects empty queries", func() {
		w := postJSON(handler, `{"query": ""}`)
		Expect(w.Code).Should(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).Should(ContainSubstring("empty query"))
	})

	It("reports validation errors in the response", func() {
		w := postJSON(handler, `{"query": "{ employees { salary } }"}`)
		Expect(w.Code).Should(Equal(http.StatusOK))
		Expect(w.Body.String()).Should(ContainSubstring(`Cannot query field \"salary\" on type \"Employee\".`))
		Expect(w.Body.String()).ShouldNot(ContainSubstring(`"data"`))
	})

	It("rejects bodies over the size limit", func() {
		w := postJSON(handler, `{"query": "{ skills { id } }", "padding": "`+strings.Repeat("x", 2<<10)+`"}`)
		Expect(w.Code).Should(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).Should(ContainSubstring("request body is too large"))
	})

	It("generates request ids", func() {
		w := postJSON(handler, `{"query": "{ skills { id } }"}`)
		id := w.Header().Get(server.RequestIDHeader)
		_, err := uuid.Parse(id)
		Expect(err).ShouldNot(HaveOccurred())
	})

	It("keeps request ids supplied by clients", func() {
		r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		r.Header.Set(server.RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		Expect(w.Header().Get(server.RequestIDHeader)).Should(Equal("req-42"))

		entries := logs.FilterMessage("request served").All()
		Expect(entries).Should(HaveLen(1))
		fields := entries[0].ContextMap()
		Expect(fields["request_id"]).Should(Equal("req-42"))
		Expect(fields["path"]).Should(Equal("/healthz"))
		Expect(fields["status"]).Should(BeEquivalentTo(http.StatusOK))
	})

	It("responds 404 to unknown paths", func() {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/graphiql", nil))
		Expect(w.Code).Should(Equal(http.StatusNotFound))
	})

	It("turns broken references into internal server errors", func() {
		s, err := server.New(serverConfig(), schema.MustNew(query.New(danglingSkillStore{store.Demo()})), logger)
		Expect(err).ShouldNot(HaveOccurred())

		w := postJSON(s.Handler(), `{"query": "{ employees { skills { id } } }"}`)
		Expect(w.Code).Should(Equal(http.StatusInternalServerError))
		Expect(logs.FilterMessage("request failed").Len()).Should(Equal(1))

		// The server keeps serving other requests.
		w = postJSON(s.Handler(), `{"query": "{ skills { id } }"}`)
		Expect(w.Code).Should(Equal(http.StatusOK))
	})

	It("rejects a zero operation cache size", func() {
		cfg := serverConfig()
		cfg.OperationCacheSize = 0
		_, err := server.New(cfg, schema.MustNew(query.New(store.Demo())), logger)
		Expect(err).Should(HaveOccurred())
	})

	It("shuts down when the context is done", func() {
		s, err := server.New(serverConfig(), schema.MustNew(query.New(store.Demo())), logger)
		Expect(err).ShouldNot(HaveOccurred())

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).ShouldNot(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- s.Serve(ctx, listener)
		}()

		resp, err := http.Get("http://" + listener.Addr().String() + "/healthz")
		Expect(err).ShouldNot(HaveOccurred())
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(body)).Should(Equal("ok"))

		cancel()
		Eventually(done, 5*time.Second).Should(Receive(BeNil()))
	})
})
