// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/webhook-service/internal/http/types"
	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/types"
	"github.com/canonical/webhook-service/pkg/authentication"
	"github.com/canonical/webhook-service/pkg/providers"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/webhooks", a.create)
	mux.Get("/api/v0/webhooks", a.list)
	mux.Get("/api/v0/webhooks/{id}", a.get)
	mux.Patch("/api/v0/webhooks/{id}", a.update)
	mux.Delete("/api/v0/webhooks/{id}", a.delete)
	mux.Post("/api/v0/webhooks/{id}/test", a.verify)
	mux.Post("/api/v0/webhooks/{id}/test-token", a.mintTestToken)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	var req CreateWebhookRequest
	if !a.decode(w, r, &req) {
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	hook, err := a.service.Create(r.Context(), principal(r), &types.Webhook{
		WorkflowID:     req.WorkflowID,
		Path:           req.Path,
		Provider:       types.Provider(req.Provider),
		ProviderConfig: req.ProviderConfig,
		IsActive:       active,
	})
	if err != nil {
		a.error(w, err)
		return
	}

	a.respond(w, http.StatusCreated, "webhook created", hook)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := types.WebhookFilter{WorkflowID: q.Get("workflow_id")}
	for _, p := range q["provider"] {
		filter.Providers = append(filter.Providers, types.Provider(p))
	}
	filter.ActiveOnly = q.Get("active") == "true"
	filter.Page, _ = strconv.ParseInt(q.Get("page"), 10, 64)
	filter.Size, _ = strconv.ParseInt(q.Get("size"), 10, 64)

	hooks, err := a.service.List(r.Context(), principal(r), filter)
	if err != nil {
		a.error(w, err)
		return
	}

	if err := httptypes.WritePage(w, "webhooks", hooks, filter.Page, filter.Size); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	hook, err := a.service.Get(r.Context(), principal(r), chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, err)
		return
	}

	a.respond(w, http.StatusOK, "webhook", hook)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateWebhookRequest
	if !a.decode(w, r, &req) {
		return
	}

	hook, err := a.service.Update(r.Context(), principal(r), chi.URLParam(r, "id"), types.WebhookPatch{
		Path:           req.Path,
		ProviderConfig: req.ProviderConfig,
		IsActive:       req.IsActive,
	})
	if err != nil {
		a.error(w, err)
		return
	}

	a.respond(w, http.StatusOK, "webhook updated", hook)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	result, err := a.service.Delete(r.Context(), principal(r), chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, err)
		return
	}

	a.respond(w, http.StatusOK, "webhook deleted", result)
}

func (a *API) verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyWebhookRequest
	if r.ContentLength != 0 && !a.decode(w, r, &req) {
		return
	}

	result, err := a.service.Verify(r.Context(), principal(r), chi.URLParam(r, "id"), providers.Params(req.Params))
	if err != nil {
		a.error(w, err)
		return
	}

	message := "verification passed"
	if !result.Passed {
		message = "verification failed"
	}

	a.respond(w, http.StatusOK, message, result)
}

func (a *API) mintTestToken(w http.ResponseWriter, r *http.Request) {
	var req MintTestTokenRequest
	if r.ContentLength != 0 && !a.decode(w, r, &req) {
		return
	}

	token, err := a.service.MintTestToken(r.Context(), principal(r), chi.URLParam(r, "id"), time.Duration(req.TTLSeconds)*time.Second)
	if err != nil {
		a.error(w, err)
		return
	}

	a.respond(w, http.StatusCreated, "test token minted", token)
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.logger.Debugf("invalid request body: %v", err)
		a.write(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}

	if err := a.validate.Struct(v); err != nil {
		a.write(w, http.StatusBadRequest, err.Error(), nil)
		return false
	}

	return true
}

// error translates service errors to statuses, anything unrecognised is a 500 and logged.
func (a *API) error(w http.ResponseWriter, err error) {
	var incomplete *IncompleteConfigError

	switch {
	case errors.As(err, &incomplete):
		a.write(w, http.StatusBadRequest, ErrConfigIncomplete.Error(), MissingFieldsData{Provider: incomplete.Provider, MissingFields: incomplete.Missing})
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnknownProvider):
		a.write(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, ErrUnauthorized):
		a.write(w, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, ErrForbidden):
		a.write(w, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		a.write(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, ErrDuplicatePath):
		a.write(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, providers.ErrRemoteCallFailed):
		a.write(w, http.StatusBadGateway, err.Error(), nil)
	default:
		a.logger.Errorf("request failed: %v", err)
		a.write(w, http.StatusInternalServerError, "internal server error", nil)
	}
}

func (a *API) respond(w http.ResponseWriter, status int, message string, data any) {
	if err := httptypes.WriteJSON(w, status, message, data); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) write(w http.ResponseWriter, status int, message string, data any) {
	if err := httptypes.WriteError(w, status, message, data); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func principal(r *http.Request) string {
	id, _ := authentication.SubjectFrom(r.Context())
	return id
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
