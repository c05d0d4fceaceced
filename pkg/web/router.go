// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tenantflow/tenantflow/internal/db"
	"github.com/tenantflow/tenantflow/internal/logging"
	"github.com/tenantflow/tenantflow/internal/monitoring"
	"github.com/tenantflow/tenantflow/internal/tracing"
	"github.com/tenantflow/tenantflow/pkg/metrics"
	"github.com/tenantflow/tenantflow/pkg/property"
	"github.com/tenantflow/tenantflow/pkg/status"
	"github.com/tenantflow/tenantflow/pkg/webhooks"
)

type Config struct {
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

func NewRouter(
	cfg Config,
	authenticate func(http.Handler) http.Handler,
	propertyService property.ServiceInterface,
	webhookService webhooks.ServiceInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)

	// called by kratos and hydra, protected at the network level
	router.Group(func(r chi.Router) {
		r.Use(db.TransactionMiddleware(dbClient, logger))
		webhooks.NewAPI(webhookService, logger).RegisterEndpoints(r)
	})

	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, logger)

	router.Group(func(r chi.Router) {
		r.Use(
			authenticate,
			limiter.Middleware,
			db.TransactionMiddleware(dbClient, logger),
		)
		property.NewAPI(propertyService, tracer, monitor, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{
				http.MethodHead,
				http.MethodGet,
				http.MethodPost,
				http.MethodPut,
				http.MethodPatch,
				http.MethodDelete,
			},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
			MaxAge:           300,
		},
	)
}
