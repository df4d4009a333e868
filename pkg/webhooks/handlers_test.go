// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/webhook-service/internal/http/types"
	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/types"
	"github.com/canonical/webhook-service/pkg/authentication"
	"github.com/canonical/webhook-service/pkg/providers"
)

func setupAPI(t *testing.T) (http.Handler, *MockServiceInterface) {
	ctrl := gomock.NewController(t)
	svc := NewMockServiceInterface(ctrl)

	logger := logging.NewNoopLogger()
	api := NewAPI(svc, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	mux := chi.NewRouter()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(authentication.WithSubject(r.Context(), principalID)))
		})
	})
	api.RegisterEndpoints(mux)

	return mux, svc
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any) (*httptest.ResponseRecorder, httptypes.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp httptypes.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return rec, resp
}

func TestAPI_CreateWebhook(t *testing.T) {
	mux, svc := setupAPI(t)

	svc.EXPECT().Create(gomock.Any(), principalID, &types.Webhook{
		WorkflowID:     "wf-1",
		Path:           "orders",
		Provider:       types.ProviderGitHub,
		ProviderConfig: map[string]any{"secret": "s3cr3t"},
		IsActive:       true,
	}).Return(testHook(), nil)

	rec, resp := doRequest(t, mux, http.MethodPost, "/api/v0/webhooks", map[string]any{
		"workflowId":     "wf-1",
		"path":           "orders",
		"provider":       "github",
		"providerConfig": map[string]any{"secret": "s3cr3t"},
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, "wh-1", resp.Data.(map[string]any)["id"])
}

func TestAPI_CreateWebhookValidation(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "missing provider", body: map[string]any{"workflowId": "wf-1", "path": "x"}},
		{name: "missing workflow", body: map[string]any{"path": "x", "provider": "generic"}},
		{name: "query in path", body: map[string]any{"workflowId": "wf-1", "path": "x?y=1", "provider": "generic"}},
		{name: "not json", body: "nope"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mux, _ := setupAPI(t)

			rec, _ := doRequest(t, mux, http.MethodPost, "/api/v0/webhooks", test.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAPI_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "incomplete", err: &IncompleteConfigError{Provider: "telegram", Missing: []string{"botToken"}}, expected: http.StatusBadRequest},
		{name: "unknown provider", err: fmt.Errorf("%w: fax", ErrUnknownProvider), expected: http.StatusBadRequest},
		{name: "unauthorized", err: ErrUnauthorized, expected: http.StatusUnauthorized},
		{name: "forbidden", err: ErrForbidden, expected: http.StatusForbidden},
		{name: "not found", err: ErrNotFound, expected: http.StatusNotFound},
		{name: "duplicate", err: ErrDuplicatePath, expected: http.StatusConflict},
		{name: "remote", err: fmt.Errorf("teardown: %w", providers.ErrRemoteCallFailed), expected: http.StatusBadGateway},
		{name: "other", err: errors.New("db gone"), expected: http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mux, svc := setupAPI(t)

			svc.EXPECT().Delete(gomock.Any(), principalID, "wh-1").Return(nil, test.err)

			rec, resp := doRequest(t, mux, http.MethodDelete, "/api/v0/webhooks/wh-1", nil)
			assert.Equal(t, test.expected, rec.Code)
			assert.Equal(t, test.expected, resp.Status)
		})
	}
}

func TestAPI_IncompleteConfigListsMissingFields(t *testing.T) {
	mux, svc := setupAPI(t)

	svc.EXPECT().Update(gomock.Any(), principalID, "wh-1", gomock.Any()).
		Return(nil, &IncompleteConfigError{Provider: "airtable", Missing: []string{"baseId", "tableId"}})

	rec, resp := doRequest(t, mux, http.MethodPatch, "/api/v0/webhooks/wh-1", map[string]any{"providerConfig": map[string]any{"baseId": nil}})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "airtable", data["provider"])
	assert.Equal(t, []any{"baseId", "tableId"}, data["missingFields"])
}

func TestAPI_ListWebhooks(t *testing.T) {
	mux, svc := setupAPI(t)

	svc.EXPECT().List(gomock.Any(), principalID, types.WebhookFilter{
		WorkflowID: "wf-1",
		Providers:  []types.Provider{types.ProviderMicrosoftTeams},
		Page:       2,
		Size:       10,
	}).Return([]*types.Webhook{testHook()}, nil)

	rec, resp := doRequest(t, mux, http.MethodGet, "/api/v0/webhooks?workflow_id=wf-1&provider=microsoftteams&page=2&size=10", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(2), resp.Meta.Page)
	assert.Len(t, resp.Data, 1)
}

func TestAPI_VerifyWebhook(t *testing.T) {
	tests := []struct {
		name    string
		result  *providers.VerifyResult
		message string
	}{
		{name: "passed", result: &providers.VerifyResult{Passed: true}, message: "verification passed"},
		{name: "failed", result: &providers.VerifyResult{Passed: false, Reason: "callback unreachable"}, message: "verification failed"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mux, svc := setupAPI(t)

			svc.EXPECT().Verify(gomock.Any(), principalID, "wh-1", providers.Params{"hub.mode": "subscribe"}).Return(test.result, nil)

			rec, resp := doRequest(t, mux, http.MethodPost, "/api/v0/webhooks/wh-1/test", map[string]any{"params": map[string]string{"hub.mode": "subscribe"}})

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, test.message, resp.Message)
		})
	}
}

func TestAPI_MintTestToken(t *testing.T) {
	mux, svc := setupAPI(t)

	expiresAt := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	svc.EXPECT().MintTestToken(gomock.Any(), principalID, "wh-1", time.Hour).
		Return(&TestToken{Token: "tok", WebhookID: "wh-1", ExpiresAt: expiresAt}, nil)

	rec, resp := doRequest(t, mux, http.MethodPost, "/api/v0/webhooks/wh-1/test-token", map[string]any{"ttlSeconds": 3600})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "tok", resp.Data.(map[string]any)["token"])
}

func TestAPI_MintTestTokenRejectsNegativeTTL(t *testing.T) {
	mux, _ := setupAPI(t)

	rec, _ := doRequest(t, mux, http.MethodPost, "/api/v0/webhooks/wh-1/test-token", map[string]any{"ttlSeconds": -5})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
