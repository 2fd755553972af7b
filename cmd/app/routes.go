package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"converterservice/internal/api"
	"converterservice/internal/api/middleware"
	"converterservice/internal/service"
)

func (app *App) initHTTP(resolver service.ResolverInterface) {
	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           app.router(resolver),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func (app *App) router(resolver service.ResolverInterface) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLoggingMiddleware(app.logger))
	r.Use(middleware.MetricsMiddleware(app.metrics))
	r.Use(chimiddleware.Recoverer)

	r.Get("/currencies", api.HandleGetCurrencies(resolver))
	r.Get("/currencies/search", api.HandleSearchCurrencies(resolver))
	r.Get("/currencies/popular", api.HandleGetPopularCurrencies(resolver))
	r.Get("/rates/{base}", api.HandleGetRates(resolver))
	r.Get("/convert", api.HandleConvert(resolver))
	r.Get("/healthz", api.HandleHealthz())
	r.Get("/readyz", api.HandleReadyz(resolver))

	if app.cfg.Server.ServeMetrics {
		r.Handle("/metrics", app.metrics.Handler())
	}

	if app.cfg.Server.ServeSwagger {
		r.Get("/swagger/*", api.SwaggerUIHandler())
		r.Get("/openapi.json", api.OpenAPISpecHandler())
	}

	return r
}
