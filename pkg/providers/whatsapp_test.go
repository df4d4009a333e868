// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/webhook-service/internal/types"
)

func TestWhatsApp_Verify(t *testing.T) {
	tests := []struct {
		name        string
		handler     func(w http.ResponseWriter, r *http.Request)
		config      types.ProviderConfig
		passed      bool
		diagnostics int
	}{
		{
			name: "challenge echoed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if q.Get("hub.mode") != "subscribe" || q.Get("hub.verify_token") != "tok" {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				_, _ = w.Write([]byte(q.Get("hub.challenge")))
			},
			config: types.ProviderConfig{"verificationToken": "tok"},
			passed: true,
		},
		{
			name: "wrong verify token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("hub.verify_token") != "expected" {
					w.WriteHeader(http.StatusForbidden)
					return
				}
			},
			config:      types.ProviderConfig{"verificationToken": "tok"},
			passed:      false,
			diagnostics: 2,
		},
		{
			name: "body padded with whitespace",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				_, _ = w.Write([]byte(r.URL.Query().Get("hub.challenge") + "\n"))
			},
			config:      types.ProviderConfig{"verificationToken": "tok"},
			passed:      false,
			diagnostics: 1,
		},
		{
			name: "json content type",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(r.URL.Query().Get("hub.challenge")))
			},
			config:      types.ProviderConfig{"verificationToken": "tok"},
			passed:      false,
			diagnostics: 1,
		},
		{
			name: "every check fails",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("<h1>oops</h1>"))
			},
			config:      types.ProviderConfig{"verificationToken": "tok"},
			passed:      false,
			diagnostics: 3,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /webhook/wa", test.handler)
			srv := httptest.NewServer(mux)
			defer srv.Close()

			d := newTestDispatcher(srv.URL, nil, nil)
			hook := &types.Webhook{ID: "wh-1", Path: "wa", Provider: types.ProviderWhatsApp, ProviderConfig: test.config}

			result, err := d.Verify(context.Background(), hook, nil)
			require.NoError(t, err)

			assert.Equal(t, test.passed, result.Passed)
			assert.Len(t, result.Diagnostics, test.diagnostics)
			if !test.passed {
				assert.NotEmpty(t, result.Reason)
			}
		})
	}
}

func TestWhatsApp_VerifyIncomplete(t *testing.T) {
	d := newTestDispatcher("http://127.0.0.1:1", nil, nil)
	hook := &types.Webhook{ID: "wh-1", Path: "wa", Provider: types.ProviderWhatsApp}

	result, err := d.Verify(context.Background(), hook, nil)
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.Equal(t, ReasonIncompleteConfiguration, result.Reason)
	assert.Equal(t, []string{"verificationToken"}, result.MissingFields)
}

func TestWhatsApp_VerifyUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	d := newTestDispatcher(srv.URL, nil, nil)
	hook := &types.Webhook{ID: "wh-1", Path: "wa", Provider: types.ProviderWhatsApp, ProviderConfig: types.ProviderConfig{"verificationToken": "tok"}}

	result, err := d.Verify(context.Background(), hook, nil)
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.Equal(t, "callback unreachable", result.Reason)
}
