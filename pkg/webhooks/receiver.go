// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/webhook-service/internal/http/types"
	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/types"
	"github.com/canonical/webhook-service/pkg/testtoken"
)

const maxDeliveryBytes = 1 << 20

// Receiver accepts inbound provider deliveries on /webhook/{path}.
// Inactive webhooks only answer when a test token for them was presented.
type Receiver struct {
	resolver ResolverInterface
	bypass   *testtoken.Middleware

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (rc *Receiver) RegisterEndpoints(mux chi.Router) {
	mux.Group(func(r chi.Router) {
		r.Use(rc.bypass.Bypass)
		r.Get("/webhook/*", rc.handshake)
		r.Post("/webhook/*", rc.deliver)
	})
}

// handshake answers the GET challenges of WhatsApp and Microsoft Graph.
func (rc *Receiver) handshake(w http.ResponseWriter, r *http.Request) {
	ctx, span := rc.tracer.Start(r.Context(), "webhooks.Receiver.handshake")
	defer span.End()

	hook, ok := rc.resolve(w, r.WithContext(ctx))
	if !ok {
		return
	}

	q := r.URL.Query()

	switch {
	case hook.Provider == types.ProviderWhatsApp && q.Get("hub.mode") == "subscribe":
		if q.Get("hub.verify_token") != hook.ProviderConfig.String("verificationToken") {
			rc.logger.Warnw("handshake verify token mismatch", "webhook", hook.ID)
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		writePlain(w, q.Get("hub.challenge"))
	case hook.Provider == types.ProviderMicrosoftTeams && q.Has("validationToken"):
		writePlain(w, q.Get("validationToken"))
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (rc *Receiver) deliver(w http.ResponseWriter, r *http.Request) {
	ctx, span := rc.tracer.Start(r.Context(), "webhooks.Receiver.deliver")
	defer span.End()

	hook, ok := rc.resolve(w, r.WithContext(ctx))
	if !ok {
		return
	}

	// Graph also validates new subscriptions with a POST carrying the token
	if q := r.URL.Query(); hook.Provider == types.ProviderMicrosoftTeams && q.Has("validationToken") {
		writePlain(w, q.Get("validationToken"))
		return
	}

	if _, err := io.Copy(io.Discard, io.LimitReader(r.Body, maxDeliveryBytes)); err != nil {
		rc.logger.Debugf("failed to read delivery body: %v", err)
	}

	testRun := false
	if id, bypass := testtoken.BypassFor(ctx); bypass && id == hook.ID {
		testRun = true
	}

	if !hook.IsActive && !testRun {
		rc.logger.Debugf("delivery for inactive webhook %s ignored", hook.ID)
		rc.writeNotFound(w)
		return
	}

	rc.logger.Infow("delivery accepted", "webhook", hook.ID, "provider", hook.Provider, "test", testRun)

	if err := httptypes.WriteJSON(w, http.StatusAccepted, "delivery accepted", map[string]any{"webhookId": hook.ID, "test": testRun}); err != nil {
		rc.logger.Errorf("failed to encode response: %v", err)
	}
}

func (rc *Receiver) resolve(w http.ResponseWriter, r *http.Request) (*types.Webhook, bool) {
	hook, err := rc.resolver.Resolve(r.Context(), chi.URLParam(r, "*"))
	if err == nil {
		return hook, true
	}

	if errors.Is(err, ErrNotFound) {
		rc.writeNotFound(w)
		return nil, false
	}

	rc.logger.Errorf("failed to resolve inbound webhook: %v", err)
	if err := httptypes.WriteError(w, http.StatusInternalServerError, "", nil); err != nil {
		rc.logger.Errorf("failed to encode response: %v", err)
	}
	return nil, false
}

func (rc *Receiver) writeNotFound(w http.ResponseWriter) {
	if err := httptypes.WriteError(w, http.StatusNotFound, ErrNotFound.Error(), nil); err != nil {
		rc.logger.Errorf("failed to encode response: %v", err)
	}
}

func writePlain(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, body)
}

func NewReceiver(resolver ResolverInterface, bypass *testtoken.Middleware, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Receiver {
	rc := new(Receiver)

	rc.resolver = resolver
	rc.bypass = bypass

	rc.tracer = tracer
	rc.monitor = monitor
	rc.logger = logger

	return rc
}
