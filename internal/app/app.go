package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"NewsPulse/internal/cache"
	"NewsPulse/internal/config"
	"NewsPulse/internal/infrastructure/gnews"
	"NewsPulse/internal/infrastructure/newsapi"
	"NewsPulse/internal/infrastructure/rsswire"
	"NewsPulse/internal/logging"
	"NewsPulse/internal/rest"
	"NewsPulse/internal/source"
	"NewsPulse/internal/usecase"
)

// Application wires configuration to the aggregation pipeline and the
// HTTP lifecycle.
type Application struct {
	cfg    config.Config
	logger *slog.Logger
	server *echo.Echo
}

// New builds a runnable application instance. Registration order in the
// registry fixes the provider merge priority: newsapi, gnews, rsswire.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	timeout := cfg.Providers.Timeout.Std()

	registry := source.NewRegistry()
	registry.Register(newsapi.NewClient(cfg.Providers.NewsAPI, timeout, baseLogger.With("component", "provider.newsapi")))
	registry.Register(gnews.NewClient(cfg.Providers.GNews, timeout, baseLogger.With("component", "provider.gnews")))
	registry.Register(rsswire.NewClient(cfg.Providers.RSS, timeout, baseLogger.With("component", "provider.rsswire")))

	aggregator := usecase.NewAggregator(usecase.AggregatorDeps{
		Registry: registry,
		Cache:    cache.New(),
		TTL:      cfg.Cache.TTL.Std(),
		Logger:   baseLogger.With("component", "aggregator"),
	})

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	rest.RegisterRoutes(e, aggregator)

	return &Application{cfg: cfg, logger: baseLogger, server: e}
}

// Run serves HTTP until the context is cancelled or a termination signal
// arrives, then shuts the listener down gracefully.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", "addr", a.cfg.Server.Addr)
		errCh <- a.server.Start(a.cfg.Server.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.logger.Info("shutting down")
	return a.server.Shutdown(shutdownCtx)
}
