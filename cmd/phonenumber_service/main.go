package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	phoneApp "github.com/aradsms/pgphone/internal/phonenumber_service/app"
	"github.com/aradsms/pgphone/internal/phonenumber_service/repository/postgres"
	httptransport "github.com/aradsms/pgphone/internal/phonenumber_service/transport/http"
	"github.com/aradsms/pgphone/internal/platform/config"
	"github.com/aradsms/pgphone/internal/platform/database"
	"github.com/aradsms/pgphone/internal/platform/logger"
)

const serviceName = "phonenumber_service"

type pinger interface {
	Ping(ctx context.Context) error
}

func healthHandler(db pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		code := http.StatusOK
		if err := db.Ping(r.Context()); err != nil {
			logger.WarnContext(r.Context(), "Health check database ping failed", "error", err)
			status["status"] = "database unavailable"
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.ErrorContext(r.Context(), "Failed to write health response", "error", err)
		}
	}
}

func main() {
	mainCtx, mainCancel := context.WithCancel(context.Background())
	defer mainCancel()

	cfg, err := config.Load(serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.LogLevel).With("service", serviceName)
	appLogger.Info("Configuration loaded",
		"log_level", cfg.LogLevel,
		"http_port", cfg.HTTPPort,
		"postgres_dsn_present", cfg.PostgresDSN != "",
		"auto_migrate", cfg.AutoMigrate,
	)

	dbPool, err := database.NewDBPool(mainCtx, cfg.PostgresDSN, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize database connection pool", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	repo := postgres.NewPgPhoneNumberRepository(dbPool, appLogger)
	if cfg.AutoMigrate {
		if err := repo.Migrate(mainCtx); err != nil {
			appLogger.Error("Failed to apply schema", "error", err)
			os.Exit(1)
		}
	}

	application := phoneApp.NewApplication(repo, appLogger)
	handler := httptransport.NewPhoneNumberHandler(application, appLogger, validator.New(), cfg.ListDefaultLimit, cfg.ListMaxLimit)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(httptransport.RequestMetricsMiddleware)

	r.Get("/health", healthHandler(dbPool, appLogger))
	r.Handle("/metrics", promhttp.Handler())
	handler.RegisterRoutes(r)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, groupCtx := errgroup.WithContext(mainCtx)

	g.Go(func() error {
		appLogger.Info("HTTP server starting", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("HTTP server failed to serve", "error", err)
			return err
		}
		return nil
	})

	g.Go(func() error {
		stopSignal := make(chan os.Signal, 1)
		signal.Notify(stopSignal, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(stopSignal)
		select {
		case sig := <-stopSignal:
			appLogger.Info("Received termination signal", "signal", sig.String())
			mainCancel()
		case <-groupCtx.Done():
		}
		return nil
	})

	g.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("HTTP server shutdown failed", "error", err)
			return err
		}
		appLogger.Info("HTTP server shut down gracefully")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Service group encountered an error", "error", err)
	}
	appLogger.Info("Service shutdown complete")
}
