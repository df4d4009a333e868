// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/types"
	"github.com/canonical/webhook-service/pkg/authentication"
	"github.com/canonical/webhook-service/pkg/renewal"
	"github.com/canonical/webhook-service/pkg/status"
	"github.com/canonical/webhook-service/pkg/testtoken"
	"github.com/canonical/webhook-service/pkg/webhooks"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func TestRouter(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := webhooks.NewMockServiceInterface(ctrl)
	scheduler := renewal.NewMockSchedulerInterface(ctrl)
	tokens := testtoken.NewMockServiceInterface(ctrl)

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	router := NewRouter(
		Config{AdminSubjects: []string{"ops"}},
		svc,
		scheduler,
		tokens,
		status.NewService(okPinger{}, nil, tracer, monitor, logger),
		authentication.NewNoopVerifier(),
		tracer,
		monitor,
		logger,
	)

	svc.EXPECT().List(gomock.Any(), "user-1", gomock.Any()).Return([]*types.Webhook{}, nil)
	svc.EXPECT().Resolve(gomock.Any(), "orders").Return(&types.Webhook{ID: "wh-1", IsActive: true}, nil)
	scheduler.EXPECT().RunOnce(gomock.Any()).Return(renewal.Summary{}, nil)

	tests := []struct {
		name     string
		method   string
		target   string
		bearer   string
		expected int
	}{
		{name: "status is public", method: http.MethodGet, target: "/api/v0/status", expected: http.StatusOK},
		{name: "metrics is public", method: http.MethodGet, target: "/api/v0/metrics", expected: http.StatusOK},
		{name: "api needs a token", method: http.MethodGet, target: "/api/v0/webhooks", expected: http.StatusUnauthorized},
		{name: "api with token", method: http.MethodGet, target: "/api/v0/webhooks", bearer: "user-1", expected: http.StatusOK},
		{name: "receiver is public", method: http.MethodPost, target: "/webhook/orders", expected: http.StatusAccepted},
		{name: "renewals for admins", method: http.MethodPost, target: "/api/v0/renewals", bearer: "ops", expected: http.StatusOK},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.target, nil)
			if test.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+test.bearer)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != test.expected {
				t.Errorf("expected status %d, got %d", test.expected, rec.Code)
			}
		})
	}
}
