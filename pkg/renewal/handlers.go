// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package renewal

import (
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/webhook-service/internal/http/types"
	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/pkg/authentication"
)

// API lets operators trigger a pass out of schedule.
type API struct {
	scheduler SchedulerInterface
	admins    []string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/renewals", a.run)
}

func (a *API) run(w http.ResponseWriter, r *http.Request) {
	subject, ok := authentication.SubjectFrom(r.Context())
	if !ok || subject == "" {
		a.write(w, http.StatusUnauthorized, "", nil)
		return
	}

	if !slices.Contains(a.admins, subject) {
		a.logger.Security().AuthzFailure(subject, "renewals")
		a.write(w, http.StatusForbidden, "", nil)
		return
	}

	summary, err := a.scheduler.RunOnce(r.Context())
	if errors.Is(err, ErrPassInProgress) {
		a.write(w, http.StatusConflict, err.Error(), nil)
		return
	}

	if err != nil {
		a.logger.Errorf("renewal pass failed: %v", err)
		a.write(w, http.StatusInternalServerError, "", nil)
		return
	}

	if err := httptypes.WriteJSON(w, http.StatusOK, "renewal pass completed", summary); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) write(w http.ResponseWriter, status int, message string, data any) {
	if err := httptypes.WriteError(w, status, message, data); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewAPI(scheduler SchedulerInterface, admins []string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.scheduler = scheduler
	a.admins = admins

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
