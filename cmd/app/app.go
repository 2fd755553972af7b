// Package main is the entry point for the currency converter service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"converterservice/internal/cache"
	"converterservice/internal/config"
	"converterservice/internal/metrics"
	"converterservice/internal/provider"
	"converterservice/internal/service"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg        *config.Config
	logger     *zap.SugaredLogger
	metrics    *metrics.Metrics
	httpServer *http.Server
}

// NewApp initializes all dependencies and returns a ready-to-run App.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	app := &App{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.NewMetrics(),
	}

	if err := app.initServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *App) initServices() error {
	providers, err := newProviders(app.cfg)
	if err != nil {
		return err
	}

	ttl := time.Duration(app.cfg.Cache.TTLSec) * time.Second
	store := cache.NewMemory[provider.Payload](ttl, nil)

	facade := provider.NewProviderFacade(
		providers,
		app.logger,
		provider.WithHTTPClient(provider.NewHTTPClient(app.cfg.Providers.TimeoutSec)),
		provider.WithRecorder(app.metrics),
	)
	fetcher := provider.NewCachedFetcher(facade, store, app.metrics)
	resolver := service.NewRateResolver(fetcher, app.logger)

	app.logger.Infow("Rate providers configured",
		"count", len(providers),
		"cache_ttl", ttl.String(),
		"timeout_sec", app.cfg.Providers.TimeoutSec,
	)

	app.initHTTP(resolver)
	return nil
}

// newProviders builds the fallback chain in its fixed order. Providers with an empty
// base URL are left out.
func newProviders(cfg *config.Config) ([]provider.Provider, error) {
	var providers []provider.Provider

	if cfg.Providers.PrimaryCDNURL != "" {
		providers = append(providers, provider.NewPrimaryCDNProvider(cfg.Providers.PrimaryCDNURL))
	}
	if cfg.Providers.SecondaryCDNURL != "" {
		providers = append(providers, provider.NewSecondaryCDNProvider(cfg.Providers.SecondaryCDNURL))
	}
	if cfg.Providers.ExchangeRateHostURL != "" {
		providers = append(providers, provider.NewExchangeRateHostProvider(cfg.Providers.ExchangeRateHostURL))
	}
	if cfg.Providers.ExchangeRateAPIURL != "" {
		providers = append(providers, provider.NewExchangeRateAPIProvider(cfg.Providers.ExchangeRateAPIURL))
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no exchange rate providers are configured")
	}
	return providers, nil
}

// Run starts the HTTP server, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "port", app.cfg.Server.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown: triggered by context cancellation (signal or server failure).
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		return fmt.Errorf("http shutdown: %w", err)
	}

	app.logger.Infow("Shutdown complete")
	return nil
}
