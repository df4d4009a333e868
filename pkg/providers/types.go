// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/webhook-service/internal/types"
)

// ErrRemoteCallFailed marks a provider call that failed for a reason other than a missing identifier.
var ErrRemoteCallFailed = errors.New("remote call failed")

const ReasonIncompleteConfiguration = "incomplete configuration"

// Params are the caller supplied parameters of a verification request.
type Params map[string]string

type ExampleRequest struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    string            `json:"body,omitempty"`
}

type VerifyResult struct {
	Passed         bool            `json:"passed"`
	Reason         string          `json:"reason,omitempty"`
	Diagnostics    []string        `json:"diagnostics,omitempty"`
	MissingFields  []string        `json:"missingFields,omitempty"`
	ExampleRequest *ExampleRequest `json:"exampleRequest,omitempty"`
	ProviderState  map[string]any  `json:"providerState,omitempty"`

	// ConfigUpdates are provider config keys learnt during verification that the caller should persist.
	ConfigUpdates types.ProviderConfig `json:"-"`
}

func (r *VerifyResult) fail(format string, args ...any) {
	r.Passed = false
	r.Diagnostics = append(r.Diagnostics, fmt.Sprintf(format, args...))
}

type RenewResult struct {
	Renewed       bool      `json:"renewed"`
	NewExpiration time.Time `json:"newExpiration,omitzero"`
	Reason        string    `json:"reason,omitempty"`
}

type TeardownOutcome string

const (
	TeardownRemoved     TeardownOutcome = "removed"
	TeardownSkipped     TeardownOutcome = "skipped"
	TeardownNotRequired TeardownOutcome = "not_required"
)

type TeardownResult struct {
	Outcome     TeardownOutcome `json:"outcome"`
	Reason      string          `json:"reason,omitempty"`
	RecoveredID string          `json:"recoveredId,omitempty"`
}

// decodeConfig maps the persisted free-form config onto a typed provider struct.
func decodeConfig(cfg types.ProviderConfig, out any) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode provider config: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode provider config: %w", err)
	}
	return nil
}

type WhatsAppConfig struct {
	VerificationToken string `json:"verificationToken"`
}

type TelegramConfig struct {
	BotToken    string `json:"botToken"`
	SecretToken string `json:"secretToken,omitempty"`
}

type TeamsConfig struct {
	HMACSecret             string `json:"hmacSecret"`
	CredentialID           string `json:"credentialId"`
	ExternalSubscriptionID string `json:"externalSubscriptionId,omitempty"`
	SubscriptionExpiration string `json:"subscriptionExpiration,omitempty"`
}

type AirtableConfig struct {
	BaseID            string `json:"baseId"`
	TableID           string `json:"tableId"`
	CredentialID      string `json:"credentialId,omitempty"`
	APIKey            string `json:"apiKey,omitempty"`
	MACSecretBase64   string `json:"macSecretBase64,omitempty"`
	ExternalWebhookID string `json:"externalWebhookId,omitempty"`
}

// SecretConfig covers the passive providers that only sign their deliveries.
type SecretConfig struct {
	Secret        string `json:"secret,omitempty"`
	SigningSecret string `json:"signingSecret,omitempty"`
}
