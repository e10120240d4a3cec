package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/client-registry/internal/audit"
	"github.com/BruksfildServices01/client-registry/internal/config"
	dbpkg "github.com/BruksfildServices01/client-registry/internal/db"
	"github.com/BruksfildServices01/client-registry/internal/logging"
	"github.com/BruksfildServices01/client-registry/internal/metrics"
	"github.com/BruksfildServices01/client-registry/internal/routes"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:          "client-api",
	Short:        "Client registry HTTP API",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		defer dbpkg.Close(db)

		if err := dbpkg.Migrate(db); err != nil {
			return err
		}
		logger.Info("migrations_applied", "driver", cfg.DBDriver)
		return nil
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	return logging.New(logging.Config{
		Service: "client-api",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

func serve(ctx context.Context) error {
	logger := newLogger()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	defer dbpkg.Close(db)

	if err := dbpkg.Migrate(db); err != nil {
		return err
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), logger, cfg.AuditQueueSize)
	defer auditDispatcher.Close()

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := routes.NewEngine(routes.Deps{
		DB:      db,
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(metrics.NewDefaultRegistry()),
		Audit:   auditDispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_started", "addr", cfg.Addr())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("server_stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
