// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package testtoken

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/webhook-service/internal/logging"
)

func TestMiddleware_Bypass(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		header     string
		setupMocks func(*MockServiceInterface)
		bypass     string
	}{
		{
			name:   "header token",
			target: "/webhook/p1",
			header: "good",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Verify(gomock.Any(), "good").Return("wh-1", nil)
			},
			bypass: "wh-1",
		},
		{
			name:   "query token",
			target: "/webhook/p1?test_token=good",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Verify(gomock.Any(), "good").Return("wh-1", nil)
			},
			bypass: "wh-1",
		},
		{
			name:   "header wins over query",
			target: "/webhook/p1?test_token=query",
			header: "header",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Verify(gomock.Any(), "header").Return("wh-2", nil)
			},
			bypass: "wh-2",
		},
		{
			name:   "invalid token",
			target: "/webhook/p1",
			header: "bad",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Verify(gomock.Any(), "bad").Return("", ErrTokenInvalid)
			},
		},
		{
			name:       "no token",
			target:     "/webhook/p1",
			setupMocks: func(*MockServiceInterface) {},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokens := NewMockServiceInterface(ctrl)
			test.setupMocks(tokens)

			var got string
			var ok bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, ok = BypassFor(r.Context())
				w.WriteHeader(http.StatusAccepted)
			})

			req := httptest.NewRequest(http.MethodPost, test.target, nil)
			if test.header != "" {
				req.Header.Set(HeaderName, test.header)
			}
			rr := httptest.NewRecorder()

			NewMiddleware(tokens, logging.NewNoopLogger()).Bypass(next).ServeHTTP(rr, req)

			if rr.Code != http.StatusAccepted {
				t.Errorf("expected request to reach the handler, got %d", rr.Code)
			}
			if ok != (test.bypass != "") || got != test.bypass {
				t.Errorf("expected bypass %q, got %q (%v)", test.bypass, got, ok)
			}
		})
	}
}
