// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/pkg/authentication"
	"github.com/canonical/webhook-service/pkg/metrics"
	"github.com/canonical/webhook-service/pkg/renewal"
	"github.com/canonical/webhook-service/pkg/status"
	"github.com/canonical/webhook-service/pkg/testtoken"
	"github.com/canonical/webhook-service/pkg/webhooks"
)

type Config struct {
	AllowedOrigins []string
	AdminSubjects  []string
}

// NewRouter serves the management API behind bearer authentication and the
// inbound receiver, status and metrics without it.
func NewRouter(
	cfg Config,
	webhookService webhooks.ServiceInterface,
	scheduler renewal.SchedulerInterface,
	tokens testtoken.ServiceInterface,
	statusService status.ServiceInterface,
	verifier authentication.TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router.Use(
		middleware.RequestID,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", testtoken.HeaderName},
			MaxAge:         300,
		}),
	)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(statusService, logger).RegisterEndpoints(router)

	webhooks.NewReceiver(webhookService, testtoken.NewMiddleware(tokens, logger), tracer, monitor, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate())

		webhooks.NewAPI(webhookService, tracer, monitor, logger).RegisterEndpoints(r)
		renewal.NewAPI(scheduler, cfg.AdminSubjects, tracer, monitor, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
