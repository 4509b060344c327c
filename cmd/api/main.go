package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/pgen/pgen-go/internal/config"
	"github.com/pgen/pgen-go/internal/generator"
	"github.com/pgen/pgen-go/internal/handler"
	"github.com/pgen/pgen-go/internal/middleware"
	"github.com/pgen/pgen-go/internal/repository"
	"github.com/pgen/pgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The event log is optional; without a database only stats are disabled.
	var recorder service.EventRecorder
	if cfg.DatabaseDSN != "" {
		db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
		if err != nil {
			slog.Warn("database connection failed, generation stats disabled", "error", err)
		} else {
			defer db.Close()
			repo := repository.NewGenerationRepository(db)
			if err := repo.EnsureSchema(ctx); err != nil {
				slog.Warn("creating generation_events table failed, generation stats disabled", "error", err)
			} else {
				recorder = repo
			}
		}
	}

	genService := service.NewGeneratorService(
		generator.NewSource(),
		service.Limits{DefaultLength: cfg.DefaultLength, MaxLength: cfg.MaxLength},
		recorder,
	)
	genHandler := handler.NewGeneratorHandler(genService)
	formHandler := handler.NewFormHandler(genService)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Get("/", formHandler.HandleShow)
		r.Post("/", formHandler.HandleSubmit)
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		if recorder != nil {
			r.Get("/api/v1/stats", genHandler.HandleStats)
		}
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "stats", recorder != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
