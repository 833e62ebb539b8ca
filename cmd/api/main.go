package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/habitrack/habitrack-go/internal/config"
	"github.com/habitrack/habitrack-go/internal/handler"
	"github.com/habitrack/habitrack-go/internal/identity"
	"github.com/habitrack/habitrack-go/internal/middleware"
	"github.com/habitrack/habitrack-go/internal/repository"
	"github.com/habitrack/habitrack-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repository.Migrate(ctx, db); err != nil {
		cancel()
		slog.Error("schema migration failed", "error", err)
		os.Exit(1)
	}
	cancel()

	userRepo := repository.NewUserRepository(db)
	habitRepo := repository.NewHabitRepository(db)
	completionRepo := repository.NewCompletionRepository(db)

	verifier := identity.NewGoogleVerifier(cfg.GoogleClientID)
	authService := service.NewAuthService(verifier, userRepo, cfg.JWTSecret)
	authHandler := handler.NewAuthHandler(authService)

	habitService := service.NewHabitService(habitRepo, completionRepo)
	habitHandler := handler.NewHabitHandler(habitService)
	completionHandler := handler.NewCompletionHandler(habitService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/auth/google", authHandler.HandleGoogleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(cfg.JWTSecret, userRepo))
		r.Get("/auth/me", authHandler.HandleMe)

		r.Get("/habits", habitHandler.HandleList)
		r.Post("/habits", habitHandler.HandleCreate)
		r.Get("/habits/{habit_id}", habitHandler.HandleGet)
		r.Put("/habits/{habit_id}", habitHandler.HandleUpdate)
		r.Delete("/habits/{habit_id}", habitHandler.HandleDelete)

		r.Post("/habits/{habit_id}/completions", completionHandler.HandleCreate)
		r.Put("/habits/{habit_id}/completions/{date}", completionHandler.HandleUpdate)
		r.Delete("/habits/{habit_id}/completions/{date}", completionHandler.HandleDelete)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
