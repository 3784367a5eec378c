// Agentic Design Patterns course server.
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

	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/api"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/config"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/content/catalog"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/identity"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/livereload"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/metrics"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/middleware"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/quizsession"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/render"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/internal/store"
	"github.com/anouar1991/agentic-design-patterns-website-sub000/web"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelWarn
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	// Load and validate the course catalog. A broken chapter chain or quiz
	// must never make it to readers, so integrity errors are fatal.
	registry, err := content.NewRegistry(catalog.All()...)
	if err != nil {
		slog.Error("Course catalog failed validation", "error", err)
		os.Exit(1)
	}
	slog.Info("Course catalog loaded", "chapters", registry.Len(), "concepts", len(registry.Concepts()))

	renderer := render.New()
	m := metrics.New()

	// Initialize services.
	sm := quizsession.NewSessionManager()

	// Initialize handlers.
	baseHandler := api.NewHandler(registry, repo, renderer, m)
	chapterHandler := api.NewChapterHandler(baseHandler, logger)
	quizHandler := api.NewQuizHandler(baseHandler)
	progressHandler := api.NewProgressHandler(baseHandler)
	healthHandler := api.NewHealthHandler(repo, registry.Len())
	wsHandler := quizsession.NewWebSocketHandler(registry, repo, sm, cfg.FrontendURL, cfg.IsDevelopment())

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(m.Middleware)
	r.Use(identity.Middleware(repo, cfg.IsDevelopment()))

	// Public routes.
	healthHandler.RegisterHealth(r)

	// All routes use identity middleware (no auth needed).
	chapterHandler.RegisterRoutes(r)
	quizHandler.RegisterRoutes(r)
	progressHandler.RegisterRoutes(r)

	r.Handle("/metrics", m.Handler())

	// WebSocket endpoints.
	r.Get("/ws/quiz", wsHandler.ServeHTTP)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.IsDevelopment() && cfg.LiveReload {
		hub := livereload.NewHub()
		r.Get("/ws/reload", hub.ServeHTTP)
		go func() {
			if err := livereload.Watch(ctx, cfg.AssetsDir, hub); err != nil {
				slog.Warn("Live reload watcher stopped", "error", err)
			}
		}()
		slog.Info("Live reload enabled", "dir", cfg.AssetsDir)
	}

	// Serve the frontend (SPA catch-all). Development prefers the on-disk
	// assets so edits show up without a rebuild.
	if cfg.IsDevelopment() {
		r.Handle("/*", web.DiskSPAHandler(cfg.AssetsDir))
	} else {
		r.Handle("/*", web.SPAHandler())
	}

	// Create server.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start TTL worker.
	store.StartTTLWorker(ctx, repo, cfg.LearnerTTL)
	slog.Info("TTL worker started", "learner_ttl", cfg.LearnerTTL)

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	sm.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
