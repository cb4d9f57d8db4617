package apiserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hireloop/identity/internal/auth"
	"github.com/hireloop/identity/internal/config"
	"github.com/hireloop/identity/internal/documents"
	handlers "github.com/hireloop/identity/internal/handlers/v1"
	"github.com/hireloop/identity/internal/service"
	"github.com/hireloop/identity/internal/store"
	"github.com/hireloop/identity/pkg/metrics"
	"github.com/hireloop/identity/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg         *config.Config
	store       store.Store
	listener    net.Listener
	objects     documents.ObjectStore
	extractor   documents.Extractor
	eventWriter service.EventWriter
}

// New returns a new instance of the identity API server.
func New(
	cfg *config.Config,
	store store.Store,
	listener net.Listener,
	objects documents.ObjectStore,
	extractor documents.Extractor,
	eventWriter service.EventWriter,
) *Server {
	return &Server{
		cfg:         cfg,
		store:       store,
		listener:    listener,
		objects:     objects,
		extractor:   extractor,
		eventWriter: eventWriter,
	}
}

// Handler assembles the router: public health probe, then the authenticated API.
func (s *Server) Handler() (http.Handler, error) {
	authenticator, err := auth.NewAuthenticator(s.cfg.Service.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticator: %w", err)
	}

	metricMiddleware := metrics.NewMiddleware("identity_api")
	if err := metricMiddleware.Register(prometheus.DefaultRegisterer); err != nil {
		return nil, fmt.Errorf("failed to register http metrics: %w", err)
	}

	router := chi.NewRouter()
	router.Use(
		middleware.GatewayRewrite(s.cfg.Service.GatewayPrefix),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   s.cfg.Service.AllowedOrigins,
			AllowedMethods:   []string{"GET", "PATCH", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)

	router.Get("/health", handlers.Health)

	h := handlers.NewServiceHandler(
		service.NewAccountService(s.store, s.eventWriter),
		service.NewProfileService(s.store),
		service.NewDocumentService(s.store, s.objects, s.extractor),
	)
	router.Group(func(r chi.Router) {
		r.Use(authenticator.Authenticator)
		h.Register(r)
	})

	return router, nil
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	handler, err := s.Handler()
	if err != nil {
		return err
	}

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
