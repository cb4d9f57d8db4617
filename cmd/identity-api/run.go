package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	apiserver "github.com/hireloop/identity/internal/api_server"
	"github.com/hireloop/identity/internal/config"
	"github.com/hireloop/identity/internal/documents"
	"github.com/hireloop/identity/internal/events"
	"github.com/hireloop/identity/internal/store"
	"github.com/hireloop/identity/pkg/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the identity api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			zap.S().Fatalw("reading configuration", "error", err)
		}

		_, flush := log.Setup(cfg.Service.LogLevel)
		defer flush()

		zap.S().Info("Starting API service")
		defer zap.S().Info("API service stopped")

		zap.S().Info("Initializing data store")
		db, err := store.InitDB(cfg)
		if err != nil {
			zap.S().Fatalw("initializing data store", "error", err)
		}

		store := store.NewStore(db)
		defer store.Close()

		// postgres schemas come from the migrate command
		if cfg.Database.Type != "pgsql" {
			if err := store.InitialMigration(); err != nil {
				zap.S().Fatalw("running initial migration", "error", err)
			}
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		objects, err := newObjectStore(ctx, cfg)
		if err != nil {
			zap.S().Fatalw("initializing document storage", "error", err)
		}

		writer, err := events.NewWriter(cfg.Service.Events.Writer)
		if err != nil {
			zap.S().Fatalw("initializing event writer", "error", err)
		}
		producer := events.NewEventProducer(writer, events.WithOutputTopic(cfg.Service.Events.Topic))
		defer func() {
			if err := producer.Close(); err != nil {
				zap.S().Errorw("failed to close event producer", "error", err)
			}
		}()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.Address)
			if err != nil {
				zap.S().Fatalw("creating listener", "error", err)
			}

			server := apiserver.New(cfg, store, listener, objects, documents.NewExtractor(), producer)
			if err := server.Run(ctx); err != nil {
				zap.S().Fatalw("Error running server", "error", err)
			}
		}()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.MetricsAddress)
			if err != nil {
				zap.S().Fatalw("creating listener", "error", err)
			}

			metricsServer := apiserver.NewMetricServer(cfg.Service.MetricsAddress, listener)
			if err := metricsServer.Run(ctx); err != nil {
				zap.S().Fatalw("Error running metrics server", "error", err)
			}
		}()

		<-ctx.Done()
		return nil
	},
}

func newObjectStore(ctx context.Context, cfg *config.Config) (documents.ObjectStore, error) {
	if cfg.Service.S3.Endpoint == "" {
		zap.S().Warn("no S3 endpoint configured, documents are kept in memory")
		return documents.NewMemoryStore(), nil
	}

	objects, err := documents.NewMinioStore(ctx,
		documents.WithEndpoint(cfg.Service.S3.Endpoint),
		documents.WithBucket(cfg.Service.S3.Bucket),
		documents.WithAccessKey(cfg.Service.S3.AccessKey),
		documents.WithSecretKey(cfg.Service.S3.SecretKey),
		documents.WithSSL(cfg.Service.S3.UseSSL),
	)
	if err != nil {
		return nil, err
	}
	return objects, nil
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}
