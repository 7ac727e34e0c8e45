// Package main is the entry point for the besinrehberi API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"besinrehberi/internal/cache"
	"besinrehberi/internal/config"
	"besinrehberi/internal/database"
	"besinrehberi/internal/handlers"
	"besinrehberi/internal/middleware"
	"besinrehberi/internal/router"
	"besinrehberi/internal/store"
	"besinrehberi/web"
)

func main() {
	// Load configuration from environment variables (and .env if present).
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: text with debug output in development, JSON otherwise.
	if cfg.IsDev() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	} else {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})))
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"cache_ttl", cfg.CacheTTL.String(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize data stores.
	foodStore := store.NewFoodStore(db)
	categoryStore := store.NewCategoryStore(db)

	// Seed development data (no-op if data already exists).
	var seeded int
	if cfg.IsDev() {
		seeded, err = database.Seed(foodStore)
		if err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for the L2 response cache. The API still works
	// without it, every request just goes to PostgreSQL.
	var valkeyClient *redis.Client
	if cfg.ValkeyHost != "" {
		valkeyClient, err = cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
		if err != nil {
			slog.Warn("valkey unavailable, response cache disabled", "error", err)
			valkeyClient = nil
		} else {
			defer valkeyClient.Close()
		}
	}
	responseCache := cache.NewResponseCache(valkeyClient, cfg.CacheTTL)

	// Responses cached before the seed describe an empty catalog.
	if seeded > 0 {
		responseCache.InvalidateAll(context.Background())
	}

	// Category groups are needed by every slug lookup; keep them in memory.
	groupCache := cache.NewGroupCache(categoryStore.Groups, cfg.CacheTTL)

	// Render the informational pages once at startup.
	pages, err := handlers.LoadPages(web.PagesFS)
	if err != nil {
		slog.Error("failed to load pages", "error", err)
		os.Exit(1)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute, cfg.TrustProxy)
	defer limiter.Stop()

	api := handlers.NewAPI(foodStore, groupCache, responseCache)

	// Set up the Chi router with all middleware and routes.
	r := router.New(api, pages, limiter, cfg.CORSOrigins)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// SIGHUP flushes the caches after the foods table is changed out of
	// band. SIGINT or SIGTERM starts a graceful shutdown.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	var sig os.Signal
	for sig = range sigs {
		if sig != syscall.SIGHUP {
			break
		}
		slog.Info("reload signal received, flushing caches")
		flushCaches(responseCache, groupCache)
	}
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// flushCaches drops every cached API response and forces the category
// groups to reload on the next request.
func flushCaches(responses *cache.ResponseCache, groups *cache.GroupCache) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	responses.InvalidateAll(ctx)
	groups.Invalidate()
}
