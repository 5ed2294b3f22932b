// Package app assembles the Boxarr application: configuration, logging,
// the HTTP router and the server lifecycle.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"boxarr/internal/config"
	"boxarr/internal/infrastructure"
	custommw "boxarr/internal/middleware"
	"boxarr/internal/services"
	handlers "boxarr/internal/transport/http"
	"boxarr/internal/version"
)

const shutdownTimeout = 30 * time.Second

// Application is the main application container.
type Application struct {
	Holder   *config.Holder
	Settings *config.Settings
	Logger   *slog.Logger
	Router   *chi.Mux
	Server   *http.Server
}

// NewApplication resolves configuration and wires services, router and
// server. A configuration validation failure is fatal here; the process
// must refuse to start.
func NewApplication() (*Application, error) {
	holder := config.NewHolder()
	settings, err := holder.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := infrastructure.InitializeLogger(settings.LogLevel, settings.LogFormat)

	logger.Info("Application starting",
		slog.String("version", version.Get()),
		slog.String("config_file", settings.SourceFile()),
		slog.Bool("radarr_configured", settings.IsConfigured()))

	// directory creation is explicit, never a validation side effect
	if err := settings.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure data directories: %w", err)
	}

	app := &Application{
		Holder:   holder,
		Settings: settings,
		Logger:   logger,
	}
	app.setupRouter()
	app.createServer()
	return app, nil
}

// setupRouter configures the HTTP router with all routes. When a URL
// base is configured the whole tree is mounted beneath it for reverse
// proxy setups.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(custommw.RequestID)
	r.Use(custommw.StructuredLogger(a.Logger))
	r.Use(custommw.Recoverer(a.Logger))
	r.Use(custommw.Metrics)
	r.Use(custommw.RateLimit(100, 50))

	healthService := services.NewHealthService(a.Holder, version.Get(), a.Logger)
	healthHandler := handlers.NewHealthHandler(healthService, a.Logger)
	configHandler := handlers.NewConfigHandler(a.Holder, a.Logger)

	mount := func(r chi.Router) {
		r.Route("/api", func(r chi.Router) {
			r.Use(render.SetContentType(render.ContentTypeJSON))
			r.Get("/health", healthHandler.HealthCheck)
			r.Get("/version", healthHandler.Version)
			r.Mount("/config", configHandler.Routes())
		})
		r.Handle("/metrics", promhttp.Handler())
	}

	if base := a.Settings.BoxarrURLBase; base != "" {
		r.Route("/"+base, mount)
	} else {
		mount(r)
	}

	a.Router = r
}

// createServer creates the HTTP server bound to the configured host and
// API port.
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         net.JoinHostPort(a.Settings.BoxarrHost, strconv.Itoa(a.Settings.BoxarrAPIPort)),
		Handler:      a.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Run starts the HTTP server and blocks until shutdown. SIGINT/SIGTERM
// trigger a graceful shutdown.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("HTTP server listening", slog.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		a.Logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
