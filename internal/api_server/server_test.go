package apiserver_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"time"

	apiserver "github.com/hireloop/identity/internal/api_server"
	"github.com/hireloop/identity/internal/config"
	"github.com/hireloop/identity/internal/documents"
	"github.com/hireloop/identity/internal/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("api server", Ordered, func() {
	var (
		cfg *config.Config
		s   store.Store
	)

	BeforeAll(func() {
		cfg = config.NewDefault()
		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())
		s = store.NewStore(db)
		Expect(s.InitialMigration()).To(Succeed())
	})

	AfterAll(func() {
		s.Close()
	})

	It("serves health without authentication and echoes the request id", func() {
		server := apiserver.New(cfg, s, nil, documents.NewMemoryStore(), nil, nil)
		handler, err := server.Handler()
		Expect(err).To(BeNil())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-Id", "req-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("X-Request-Id")).To(Equal("req-1"))
	})

	It("answers the same routes behind the gateway prefix", func() {
		server := apiserver.New(cfg, s, nil, documents.NewMemoryStore(), nil, nil)
		handler, err := server.Handler()
		Expect(err).To(BeNil())

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/identity/health", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))
	})

	It("answers CORS preflight for allowed origins", func() {
		server := apiserver.New(cfg, s, nil, documents.NewMemoryStore(), nil, nil)
		handler, err := server.Handler()
		Expect(err).To(BeNil())

		req := httptest.NewRequest(http.MethodOptions, "/api/v1/users/me", nil)
		req.Header.Set("Origin", cfg.Service.AllowedOrigins[0])
		req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal(cfg.Service.AllowedOrigins[0]))
	})

	It("runs until the context is cancelled", func() {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).To(BeNil())

		ctx, cancel := context.WithCancel(context.Background())
		server := apiserver.New(cfg, s, listener, documents.NewMemoryStore(), nil, nil)

		errCh := make(chan error, 1)
		go func() { errCh <- server.Run(ctx) }()

		Eventually(func() (int, error) {
			resp, err := http.Get("http://" + listener.Addr().String() + "/health")
			if err != nil {
				return 0, err
			}
			defer resp.Body.Close()
			return resp.StatusCode, nil
		}).Should(Equal(http.StatusOK))

		cancel()
		Eventually(errCh).WithTimeout(10 * time.Second).Should(Receive(BeNil()))
	})

	It("exposes prometheus metrics", func() {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).To(BeNil())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = apiserver.NewMetricServer(listener.Addr().String(), listener).Run(ctx) }()

		Eventually(func() (string, error) {
			resp, err := http.Get("http://" + listener.Addr().String() + "/metrics")
			if err != nil {
				return "", err
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			return string(body), err
		}).Should(ContainSubstring("go_goroutines"))
	})
})

