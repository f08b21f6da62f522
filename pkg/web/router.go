// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/hubsign/landing-service/internal/logging"
	"github.com/hubsign/landing-service/internal/monitoring"
	"github.com/hubsign/landing-service/internal/tracing"
	"github.com/hubsign/landing-service/pkg/leads"
	"github.com/hubsign/landing-service/pkg/metrics"
	"github.com/hubsign/landing-service/pkg/pricing"
	"github.com/hubsign/landing-service/pkg/signin"
	"github.com/hubsign/landing-service/pkg/status"
	"github.com/hubsign/landing-service/pkg/tenant"
)

// Services groups the domain services exposed over HTTP
type Services struct {
	Tenant  tenant.ServiceInterface
	Signin  signin.ServiceInterface
	Leads   leads.ServiceInterface
	Pricing pricing.Catalog
}

func NewRouter(
	services Services,
	corsAllowedOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsAllowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(nil, logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	pricing.NewAPI(services.Pricing, logger).RegisterEndpoints(router)
	tenant.NewAPI(services.Tenant, tracer, monitor, logger).RegisterEndpoints(router)
	signin.NewAPI(services.Signin, tracer, monitor, logger).RegisterEndpoints(router)
	leads.NewAPI(services.Leads, tracer, monitor, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
