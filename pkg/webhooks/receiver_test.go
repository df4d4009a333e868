// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/types"
	"github.com/canonical/webhook-service/pkg/testtoken"
)

func setupReceiver(t *testing.T) (http.Handler, *MockResolverInterface, *testtoken.MockServiceInterface) {
	ctrl := gomock.NewController(t)
	resolver := NewMockResolverInterface(ctrl)
	tokens := testtoken.NewMockServiceInterface(ctrl)

	logger := logging.NewNoopLogger()
	rc := NewReceiver(resolver, testtoken.NewMiddleware(tokens, logger), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	mux := chi.NewRouter()
	rc.RegisterEndpoints(mux)

	return mux, resolver, tokens
}

func TestReceiver_Deliver(t *testing.T) {
	tests := []struct {
		name     string
		active   bool
		token    string
		tokenFor string
		tokenErr error
		expected int
	}{
		{name: "active", active: true, expected: http.StatusAccepted},
		{name: "inactive", active: false, expected: http.StatusNotFound},
		{name: "inactive with test token", active: false, token: "tok", tokenFor: "wh-1", expected: http.StatusAccepted},
		{name: "inactive with token for another webhook", active: false, token: "tok", tokenFor: "wh-2", expected: http.StatusNotFound},
		{name: "inactive with invalid token", active: false, token: "tok", tokenErr: testtoken.ErrTokenInvalid, expected: http.StatusNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mux, resolver, tokens := setupReceiver(t)

			hook := testHook()
			hook.IsActive = test.active
			resolver.EXPECT().Resolve(gomock.Any(), "orders").Return(hook, nil)

			if test.token != "" {
				tokens.EXPECT().Verify(gomock.Any(), test.token).Return(test.tokenFor, test.tokenErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/webhook/orders", strings.NewReader(`{"event":"push"}`))
			if test.token != "" {
				req.Header.Set(testtoken.HeaderName, test.token)
			}
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != test.expected {
				t.Errorf("expected status %d, got %d", test.expected, rec.Code)
			}
		})
	}
}

func TestReceiver_UnknownPath(t *testing.T) {
	mux, resolver, _ := setupReceiver(t)

	resolver.EXPECT().Resolve(gomock.Any(), "nope").Return(nil, ErrNotFound)
	resolver.EXPECT().Resolve(gomock.Any(), "broken").Return(nil, errors.New("db gone"))

	for path, expected := range map[string]int{"nope": http.StatusNotFound, "broken": http.StatusInternalServerError} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhook/"+path, nil))

		if rec.Code != expected {
			t.Errorf("%s: expected status %d, got %d", path, expected, rec.Code)
		}
	}
}

func TestReceiver_Handshake(t *testing.T) {
	whatsapp := &types.Webhook{ID: "wh-w", Path: "wa", Provider: types.ProviderWhatsApp, IsActive: true, ProviderConfig: types.ProviderConfig{"verificationToken": "vt"}}
	teams := &types.Webhook{ID: "wh-t", Path: "teams", Provider: types.ProviderMicrosoftTeams, IsActive: true}

	tests := []struct {
		name     string
		hook     *types.Webhook
		query    string
		expected int
		body     string
	}{
		{name: "whatsapp challenge", hook: whatsapp, query: "hub.mode=subscribe&hub.verify_token=vt&hub.challenge=abc", expected: http.StatusOK, body: "abc"},
		{name: "whatsapp wrong token", hook: whatsapp, query: "hub.mode=subscribe&hub.verify_token=nope&hub.challenge=abc", expected: http.StatusForbidden},
		{name: "graph validation", hook: teams, query: "validationToken=v1", expected: http.StatusOK, body: "v1"},
		{name: "plain get", hook: teams, query: "", expected: http.StatusMethodNotAllowed},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mux, resolver, _ := setupReceiver(t)

			resolver.EXPECT().Resolve(gomock.Any(), test.hook.Path).Return(test.hook, nil)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/webhook/"+test.hook.Path+"?"+test.query, nil))

			if rec.Code != test.expected {
				t.Fatalf("expected status %d, got %d", test.expected, rec.Code)
			}

			if test.body != "" && rec.Body.String() != test.body {
				t.Errorf("expected body %q, got %q", test.body, rec.Body.String())
			}
		})
	}
}

func TestReceiver_GraphPostValidation(t *testing.T) {
	teams := &types.Webhook{ID: "wh-t", Path: "teams", Provider: types.ProviderMicrosoftTeams, IsActive: true}

	tests := []struct {
		name       string
		path       string
		hook       *types.Webhook
		resolveErr error
		expected   int
		body       string
	}{
		{name: "teams echoes token", path: "teams", hook: teams, expected: http.StatusOK, body: "v2"},
		{name: "unknown path", path: "nope", resolveErr: ErrNotFound, expected: http.StatusNotFound},
		{name: "other provider delivers", path: "orders", hook: testHook(), expected: http.StatusAccepted},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mux, resolver, _ := setupReceiver(t)

			resolver.EXPECT().Resolve(gomock.Any(), test.path).Return(test.hook, test.resolveErr)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhook/"+test.path+"?validationToken=v2", nil))

			if rec.Code != test.expected {
				t.Fatalf("expected status %d, got %d", test.expected, rec.Code)
			}

			if test.body != "" && rec.Body.String() != test.body {
				t.Errorf("expected body %q, got %q", test.body, rec.Body.String())
			}

			if test.body == "" && strings.Contains(rec.Body.String(), "v2") {
				t.Errorf("validation token echoed for %s", test.path)
			}
		})
	}
}
