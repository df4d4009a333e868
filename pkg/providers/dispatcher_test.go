// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/types"
	"github.com/canonical/webhook-service/pkg/profiles"
)

//go:generate mockgen -build_flags=--mod=mod -package providers -destination ./mock_interfaces.go -source=./interfaces.go

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestDispatcher(baseURL string, tokens TokenProviderInterface, recorder IDRecorderInterface) *Dispatcher {
	logger := logging.NewNoopLogger()

	return NewDispatcher(
		profiles.NewRegistry(),
		Config{
			CallbackBaseURL: baseURL,
			GraphBaseURL:    baseURL + "/v1.0",
			AirtableBaseURL: baseURL,
			TelegramBaseURL: baseURL,
			Timeout:         2 * time.Second,
			HTTPClient:      http.DefaultClient,
			Now:             func() time.Time { return testNow },
		},
		tokens,
		recorder,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)
}

func TestDispatcher_VerifyPassiveProviders(t *testing.T) {
	tests := []struct {
		name          string
		provider      types.Provider
		config        types.ProviderConfig
		passed        bool
		missing       []string
		expectHeaders []string
	}{
		{
			name:          "github signed example",
			provider:      types.ProviderGitHub,
			config:        types.ProviderConfig{"secret": "s3cr3t"},
			passed:        true,
			expectHeaders: []string{"X-Hub-Signature-256", "X-GitHub-Event"},
		},
		{
			name:          "stripe signed example",
			provider:      types.ProviderStripe,
			config:        types.ProviderConfig{"signingSecret": "whsec_x"},
			passed:        true,
			expectHeaders: []string{"Stripe-Signature"},
		},
		{
			name:          "slack signed example",
			provider:      types.ProviderSlack,
			config:        types.ProviderConfig{"signingSecret": "abc"},
			passed:        true,
			expectHeaders: []string{"X-Slack-Signature", "X-Slack-Request-Timestamp"},
		},
		{
			name:          "teams signed example",
			provider:      types.ProviderMicrosoftTeams,
			config:        types.ProviderConfig{"hmacSecret": "dGVhbXMtc2VjcmV0", "credentialId": "cred-1"},
			passed:        true,
			expectHeaders: []string{"Authorization"},
		},
		{
			name:     "slack missing signing secret",
			provider: types.ProviderSlack,
			config:   types.ProviderConfig{"signingSecret": "  "},
			passed:   false,
			missing:  []string{"signingSecret"},
		},
		{
			name:     "airtable missing table",
			provider: types.ProviderAirtable,
			config:   types.ProviderConfig{"baseId": "app1"},
			passed:   false,
			missing:  []string{"tableId"},
		},
		{
			name:     "generic needs nothing",
			provider: types.ProviderGeneric,
			passed:   true,
		},
		{
			name:     "unknown provider behaves as generic",
			provider: types.Provider("gitlab"),
			passed:   true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := newTestDispatcher("https://hooks.example.com", nil, nil)
			hook := &types.Webhook{ID: "wh-1", Path: "p1", Provider: test.provider, ProviderConfig: test.config}

			result, err := d.Verify(context.Background(), hook, nil)
			require.NoError(t, err)

			assert.Equal(t, test.passed, result.Passed)
			assert.Equal(t, test.missing, result.MissingFields)

			if !test.passed {
				assert.Equal(t, ReasonIncompleteConfiguration, result.Reason)
				assert.Nil(t, result.ExampleRequest)
				return
			}

			require.NotNil(t, result.ExampleRequest)
			assert.Equal(t, http.MethodPost, result.ExampleRequest.Method)
			assert.Equal(t, "https://hooks.example.com/webhook/p1", result.ExampleRequest.URL)
			assert.NotEmpty(t, result.ExampleRequest.Body)
			for _, h := range test.expectHeaders {
				assert.NotEmpty(t, result.ExampleRequest.Headers[h], h)
			}
		})
	}
}

func TestDispatcher_RenewNonRenewable(t *testing.T) {
	d := newTestDispatcher("https://hooks.example.com", nil, nil)

	for _, provider := range []types.Provider{types.ProviderGitHub, types.ProviderWhatsApp, types.ProviderAirtable, types.Provider("unknown")} {
		result, err := d.Renew(context.Background(), &types.WebhookWithOwner{Webhook: types.Webhook{ID: "wh", Provider: provider}})

		require.NoError(t, err)
		assert.False(t, result.Renewed, provider)
		assert.NotEmpty(t, result.Reason, provider)
	}
}

func TestDispatcher_TeardownNotRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTestDispatcher("https://hooks.example.com", NewMockTokenProviderInterface(ctrl), NewMockIDRecorderInterface(ctrl))

	for _, provider := range []types.Provider{types.ProviderGitHub, types.ProviderStripe, types.ProviderSlack, types.ProviderGeneric, types.ProviderWhatsApp} {
		result, err := d.Teardown(context.Background(), &types.WebhookWithOwner{Webhook: types.Webhook{ID: "wh", Provider: provider}})

		require.NoError(t, err)
		assert.Equal(t, TeardownNotRequired, result.Outcome, provider)
	}
}

const customProfiles = `
providers:
  github:
    requiredConfigFields: [verificationToken]
    handshake: challenge
  airtable:
    requiredConfigFields: [baseId]
    teardown: none
  microsoftteams:
    requiredConfigFields: [credentialId]
    teardown: direct
    timeLimited: true
    maxLifetime: 60m
  generic: {}
`

func TestDispatcher_StrategiesFollowProfiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry, err := profiles.Parse([]byte(customProfiles))
	require.NoError(t, err)

	challenged := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		challenged = r.URL.Query().Get("hub.verify_token") == "tok"
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(r.URL.Query().Get("hub.challenge")))
	}))
	defer srv.Close()

	logger := logging.NewNoopLogger()
	// the token provider and recorder carry no expectations, teardown must not reach them
	d := NewDispatcher(
		registry,
		Config{CallbackBaseURL: srv.URL, GraphBaseURL: srv.URL, AirtableBaseURL: srv.URL, HTTPClient: http.DefaultClient, Now: func() time.Time { return testNow }},
		NewMockTokenProviderInterface(ctrl),
		NewMockIDRecorderInterface(ctrl),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)

	verify, err := d.Verify(context.Background(), &types.Webhook{ID: "wh-gh", Path: "gh", Provider: types.ProviderGitHub, ProviderConfig: types.ProviderConfig{"verificationToken": "tok"}}, nil)
	require.NoError(t, err)
	assert.True(t, verify.Passed)
	assert.True(t, challenged, "challenge handshake should call the callback")
	assert.Equal(t, http.MethodGet, verify.ExampleRequest.Method)

	airtable, err := d.Teardown(context.Background(), &types.WebhookWithOwner{
		Webhook: types.Webhook{ID: "wh-air", Provider: types.ProviderAirtable, ProviderConfig: types.ProviderConfig{"baseId": "app1", "apiKey": "pat"}},
		OwnerID: "owner-1",
	})
	require.NoError(t, err)
	assert.Equal(t, TeardownNotRequired, airtable.Outcome)

	teams, err := d.Teardown(context.Background(), &types.WebhookWithOwner{
		Webhook: types.Webhook{ID: "wh-teams", Path: "teams-1", Provider: types.ProviderMicrosoftTeams, ProviderConfig: types.ProviderConfig{"credentialId": "cred-1"}},
		OwnerID: "owner-1",
	})
	require.NoError(t, err)
	assert.Equal(t, TeardownSkipped, teams.Outcome)
	assert.Equal(t, "no subscription id stored", teams.Reason)
}
