// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
)

type pinger struct {
	err error
}

func (p pinger) Ping(context.Context) error {
	return p.err
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		code     int
		expected healthpb.HealthCheckResponse_ServingStatus
	}{
		{name: "healthy", code: http.StatusOK, expected: healthpb.HealthCheckResponse_SERVING},
		{name: "database down", pingErr: errors.New("connection refused"), code: http.StatusServiceUnavailable, expected: healthpb.HealthCheckResponse_NOT_SERVING},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			logger := logging.NewNoopLogger()
			hs := health.NewServer()

			svc := NewService(pinger{err: test.pingErr}, hs, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

			mux := chi.NewRouter()
			NewAPI(svc, logger).RegisterEndpoints(mux)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

			if rec.Code != test.code {
				t.Errorf("expected status %d, got %d", test.code, rec.Code)
			}

			resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{})
			if err != nil {
				t.Fatalf("unexpected health error: %v", err)
			}

			if resp.GetStatus() != test.expected {
				t.Errorf("expected health %v, got %v", test.expected, resp.GetStatus())
			}
		})
	}
}
