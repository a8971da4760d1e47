// Package folio serves a blog's content catalog as a JSON API built with Echo.
//
// Posts live as front-matter files in a content directory. The catalog is
// loaded once, shared by every request and rebuilt on SIGHUP; see the content
// package for the catalog itself.
package folio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/eringen/folio/content"
)

// App is the central folio application. It wires together the catalog
// provider, handlers, middleware and metrics.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Provider *content.Provider

	logger        *slog.Logger
	registry      *prometheus.Registry
	searchLimiter *RateLimiter
	customRoutes  []func(*App)
}

// New creates a folio App with the given configuration. Routes and
// middleware are registered immediately; nothing is read from disk until the
// first request or Start.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:   cfg,
		Echo:     echo.New(),
		logger:   slog.Default(),
		registry: prometheus.NewRegistry(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if a.Provider == nil {
		a.Provider = content.NewProvider(
			content.NewDirStore(a.Config.ContentDir),
			a.Config.Mode,
			content.WithLogger(a.logger),
			content.WithRegisterer(a.registry),
		)
	}
	a.searchLimiter = NewRateLimiter(a.Config.SearchRateLimit, a.Config.SearchRateWindow)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a
}

// Start loads the catalog, then serves HTTP until SIGINT or SIGTERM. SIGHUP
// reloads the catalog from disk. A catalog that cannot be built (for example
// because two files share a slug) stops Start before it listens.
func (a *App) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := a.Provider.Catalog(ctx); err != nil {
		return fmt.Errorf("folio: load catalog: %w", err)
	}
	go a.reloadOnHangup(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", "addr", a.Config.Addr, "mode", a.Config.Mode)
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down", "timeout", a.Config.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("folio: shutdown: %w", err)
	}
	return nil
}

func (a *App) reloadOnHangup(ctx context.Context) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			c, err := a.Provider.Reload(ctx)
			if err != nil {
				a.logger.Error("reload failed, keeping previous catalog", "error", err)
				continue
			}
			a.logger.Info("catalog reloaded", "documents", c.Len())
		}
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	api := e.Group("/api")
	api.GET("/posts", a.handleListPosts)
	api.GET("/posts/:slug", a.handlePost)
	api.GET("/tags", a.handleTags)
	api.GET("/recent", a.handleRecent)

	e.GET("/healthz", a.handleHealth)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: a.registry,
	}))
}

// Close releases background resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.searchLimiter != nil {
		a.searchLimiter.Stop()
	}
	return a.Echo.Close()
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
// LoadConfig reads every FOLIO_* override through it.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
