package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/hireloop/identity/pkg/middleware"
	"github.com/hireloop/identity/pkg/requestid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("request id", func() {
	var seen string

	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromRequest(r)
	}))

	BeforeEach(func() {
		seen = ""
	})

	It("keeps the id sent by the caller", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, "abc")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		Expect(seen).To(Equal("abc"))
		Expect(rec.Header().Get(requestid.Header)).To(Equal("abc"))
	})

	It("generates an id when none is sent", func() {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(seen).NotTo(BeEmpty())
		Expect(rec.Header().Get(requestid.Header)).To(Equal(seen))
	})
})

var _ = Describe("gateway rewrite", func() {
	var path string

	handler := middleware.GatewayRewrite("/api/identity/")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
	}))

	DescribeTable("rewrites paths",
		func(in, out string) {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, in, nil))
			Expect(path).To(Equal(out))
		},
		Entry("prefixed route", "/api/identity/api/v1/users/me", "/api/v1/users/me"),
		Entry("bare prefix", "/api/identity", "/"),
		Entry("direct route", "/api/v1/users/me", "/api/v1/users/me"),
		Entry("similar prefix", "/api/identityx/health", "/api/identityx/health"),
	)

	It("is a no-op without a prefix", func() {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
		Expect(middleware.GatewayRewrite("")(next)).NotTo(BeNil())
	})
})

var _ = Describe("logger", func() {
	It("passes the response through", func() {
		handler := middleware.Logger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		Expect(rec.Code).To(Equal(http.StatusTeapot))
	})
})
