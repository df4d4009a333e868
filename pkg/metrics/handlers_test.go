// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/webhook-service/internal/logging"
)

func TestMetricsEndpoint(t *testing.T) {
	mux := chi.NewRouter()
	NewAPI(logging.NewNoopLogger()).RegisterEndpoints(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v0/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Error("expected default go collector metrics in output")
	}
}
