// Package server boots the application: config, database, cache, migrations,
// middleware stack, routes, and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/productos/app/routes"
	"github.com/shashiranjanraj/productos/config"
	"github.com/shashiranjanraj/productos/pkg/cache"
	"github.com/shashiranjanraj/productos/pkg/database"
	"github.com/shashiranjanraj/productos/pkg/logger"
	"github.com/shashiranjanraj/productos/pkg/metrics"
	"github.com/shashiranjanraj/productos/pkg/middleware"
	"github.com/shashiranjanraj/productos/pkg/migration"
	"github.com/shashiranjanraj/productos/pkg/reqid"
	"github.com/shashiranjanraj/productos/pkg/router"
	"github.com/shashiranjanraj/productos/pkg/session"
)

// Handler builds the full HTTP handler: global middleware stack, /metrics,
// and the API routes. Exposed separately from Start so tests can drive the
// exact handler the server runs.
func Handler() http.Handler {
	r := router.New()

	// Outermost → innermost:
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. Session           — flash messages for the redirect response mode
	//  6. CORS
	//  7. Rate limiter
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(session.Middleware(session.DefaultOptions()))
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r)

	return r.Handler()
}

// Start boots every subsystem and serves until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	// Redis is optional; without it caching and flash messages no-op.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, continuing without it", "error", err)
	}

	if err := migration.New(database.DB).Run(); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("productos listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
