// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/webhook-service/internal/oauth"
	"github.com/canonical/webhook-service/internal/types"
)

func TestAirtable_Teardown(t *testing.T) {
	tests := []struct {
		name       string
		config     types.ProviderConfig
		list       string
		deleteCode int
		setupMocks func(*MockTokenProviderInterface, *MockIDRecorderInterface)
		outcome    TeardownOutcome
		recovered  string
		expectErr  bool
	}{
		{
			name:       "direct delete with api key",
			config:     types.ProviderConfig{"baseId": "app1", "tableId": "tbl1", "apiKey": "pat-1", "externalWebhookId": "ach1"},
			deleteCode: http.StatusOK,
			setupMocks: func(*MockTokenProviderInterface, *MockIDRecorderInterface) {},
			outcome:    TeardownRemoved,
		},
		{
			name:       "recovered through oauth credential",
			config:     types.ProviderConfig{"baseId": "app1", "tableId": "tbl1", "credentialId": "cred-a"},
			list:       `{"webhooks":[{"id":"achX","notificationUrl":"https://a.example.com/webhook/other"},{"id":"ach1","notificationUrl":"https://tunnel.example.dev/webhook/air-1"}]}`,
			deleteCode: http.StatusOK,
			setupMocks: func(tokens *MockTokenProviderInterface, recorder *MockIDRecorderInterface) {
				tokens.EXPECT().GetValidAccessToken(gomock.Any(), "cred-a", "owner-1", "airtable.teardown").Return("pat-1", nil)
				recorder.EXPECT().RecordExternalID(gomock.Any(), "wh-air", types.ConfigExternalWebhookID, "ach1").Return(nil)
			},
			outcome:   TeardownRemoved,
			recovered: "ach1",
		},
		{
			name:       "no match leaves remote alone",
			config:     types.ProviderConfig{"baseId": "app1", "tableId": "tbl1", "apiKey": "pat-1"},
			list:       `{"webhooks":[{"id":"achX","notificationUrl":"https://a.example.com/webhook/other"}]}`,
			setupMocks: func(*MockTokenProviderInterface, *MockIDRecorderInterface) {},
			outcome:    TeardownSkipped,
		},
		{
			name:       "no credentials",
			config:     types.ProviderConfig{"baseId": "app1", "tableId": "tbl1"},
			setupMocks: func(*MockTokenProviderInterface, *MockIDRecorderInterface) {},
			outcome:    TeardownSkipped,
		},
		{
			name:   "removed credential skips",
			config: types.ProviderConfig{"baseId": "app1", "tableId": "tbl1", "credentialId": "cred-a", "externalWebhookId": "ach1"},
			setupMocks: func(tokens *MockTokenProviderInterface, _ *MockIDRecorderInterface) {
				tokens.EXPECT().GetValidAccessToken(gomock.Any(), "cred-a", "owner-1", "airtable.teardown").Return("", fmt.Errorf("credential cred-a: %w", oauth.ErrCredentialNotFound))
			},
			outcome: TeardownSkipped,
		},
		{
			name:       "delete forbidden",
			config:     types.ProviderConfig{"baseId": "app1", "tableId": "tbl1", "apiKey": "pat-1", "externalWebhookId": "ach1"},
			deleteCode: http.StatusForbidden,
			setupMocks: func(*MockTokenProviderInterface, *MockIDRecorderInterface) {},
			expectErr:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokens := NewMockTokenProviderInterface(ctrl)
			recorder := NewMockIDRecorderInterface(ctrl)
			test.setupMocks(tokens, recorder)

			deleted := false
			mux := http.NewServeMux()
			mux.HandleFunc("GET /v0/bases/app1/webhooks", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer pat-1", r.Header.Get("Authorization"))
				_, _ = w.Write([]byte(test.list))
			})
			mux.HandleFunc("DELETE /v0/bases/app1/webhooks/ach1", func(w http.ResponseWriter, r *http.Request) {
				deleted = true
				w.WriteHeader(test.deleteCode)
			})
			srv := httptest.NewServer(mux)
			defer srv.Close()

			d := newTestDispatcher(srv.URL, tokens, recorder)
			hook := &types.WebhookWithOwner{
				Webhook: types.Webhook{ID: "wh-air", Path: "air-1", Provider: types.ProviderAirtable, ProviderConfig: test.config},
				OwnerID: "owner-1",
			}

			result, err := d.Teardown(context.Background(), hook)

			if test.expectErr {
				assert.ErrorIs(t, err, ErrRemoteCallFailed)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.outcome, result.Outcome)
			assert.Equal(t, test.recovered, result.RecoveredID)
			assert.Equal(t, test.outcome == TeardownRemoved, deleted)
		})
	}
}
