package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hongminglow/dataflow-be/internal/app"
	"github.com/hongminglow/dataflow-be/internal/bootstrap"
	"github.com/hongminglow/dataflow-be/internal/config"
	"github.com/hongminglow/dataflow-be/internal/logger"
	"github.com/hongminglow/dataflow-be/internal/metrics"
	"github.com/hongminglow/dataflow-be/internal/server"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/storage/backend"
	"github.com/hongminglow/dataflow-be/internal/store"
)

var (
	envFile string

	rootCmd = &cobra.Command{
		Use:          "server",
		Short:        "DataFlow admin backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Seed storage if empty and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Write the demo dataset to every empty storage key",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed(cmd.Context())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger.
func setup() (config.Config, *zap.Logger, error) {
	envErr := godotenv.Load(envFile)

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	zap.ReplaceGlobals(log)
	if envErr != nil {
		log.Info("no .env file found; relying on existing environment", zap.String("path", envFile))
	}
	return cfg, log, nil
}

func openStorage(ctx context.Context, cfg config.Config, log *zap.Logger) (storage.KV, error) {
	kv, err := backend.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	written, err := bootstrap.Seed(ctx, kv)
	if err != nil {
		kv.Close()
		return nil, fmt.Errorf("seed storage: %w", err)
	}
	if len(written) > 0 {
		log.Info("seeded storage", zap.String("driver", cfg.Storage.Driver), zap.Int("keys", len(written)))
	}
	return kv, nil
}

func seed(ctx context.Context) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	kv, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	return kv.Close()
}

func serve() error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx := context.Background()
	kv, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer kv.Close()

	m := metrics.New(cfg.Metrics)
	s := store.New(
		store.WithObserver(m.ObserveAction),
		store.WithObserver(func(a store.Action) {
			log.Debug("action applied", zap.String("type", a.Type()))
		}),
	)
	a, err := app.New(s, kv, app.Options{
		DemoPassword: cfg.DemoPassword,
		Logger:       log,
		OnPersist: func(key storage.Key, err error) {
			m.ObservePersist(string(key), err)
		},
	})
	if err != nil {
		return err
	}
	if err := a.Hydrate(ctx); err != nil {
		return fmt.Errorf("hydrate store: %w", err)
	}

	srv := server.New(cfg, a, m, log)
	errCh := make(chan error, 1)
	go func() {
		log.Info("DataFlow backend listening", zap.String("addr", cfg.HTTPAddress()), zap.String("storage", cfg.Storage.Driver))
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Warn("graceful shutdown error", zap.Error(err))
	}
	return nil
}
