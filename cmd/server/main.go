package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/edututor-ai/backend/internal/analytics"
	"github.com/edututor-ai/backend/internal/api"
	"github.com/edututor-ai/backend/internal/classroom"
	"github.com/edututor-ai/backend/internal/infrastructure/config"
	"github.com/edututor-ai/backend/internal/lib/prettylog"
	"github.com/edututor-ai/backend/internal/service"
	"github.com/edututor-ai/backend/internal/store"

	_ "github.com/edututor-ai/backend/docs" // generated swagger docs
)

// @title           EduTutor AI API
// @version         1.0
// @description     Record store and analytics backend for an AI learning assistant — quizzes, encouragements and class analytics.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()

	var handler slog.Handler
	if cfg.LogFormat == "pretty" {
		handler = prettylog.NewHandler(os.Stdout, slog.LevelInfo)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	}
	logger := slog.New(handler)

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewJSONFile(cfg.DataFile)
	if err != nil {
		logger.Error("failed to open record store", "error", err)
		os.Exit(1)
	}

	records := service.NewRecordService(db, logger)
	assessments := service.NewAssessmentService(db, logger)
	engine := analytics.NewEngine(db)
	catalog := classroom.NewMockCatalog()
	apiHandler := api.NewHandler(records, assessments, engine, catalog, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, apiHandler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "data_file", cfg.DataFile)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
