// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Provider identifies the third-party service a webhook receives events from.
type Provider string

const (
	ProviderWhatsApp       Provider = "whatsapp"
	ProviderTelegram       Provider = "telegram"
	ProviderGitHub         Provider = "github"
	ProviderStripe         Provider = "stripe"
	ProviderSlack          Provider = "slack"
	ProviderAirtable       Provider = "airtable"
	ProviderMicrosoftTeams Provider = "microsoftteams"
	ProviderGeneric        Provider = "generic"
)

// ProviderConfig is the free-form configuration persisted alongside a webhook.
type ProviderConfig map[string]any

// String returns the value under key when it is a non-empty string.
func (c ProviderConfig) String(key string) string {
	if c == nil {
		return ""
	}
	v, ok := c[key].(string)
	if !ok {
		return ""
	}
	return v
}

// Clone returns a shallow copy, nil stays nil.
func (c ProviderConfig) Clone() ProviderConfig {
	if c == nil {
		return nil
	}
	out := make(ProviderConfig, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Provider config keys with meaning outside a single adapter.
const (
	ConfigExternalSubscriptionID = "externalSubscriptionId"
	ConfigSubscriptionExpiration = "subscriptionExpiration"
	ConfigExternalWebhookID      = "externalWebhookId"
	ConfigCredentialID           = "credentialId"
)

type Webhook struct {
	ID             string         `db:"id" json:"id"`
	WorkflowID     string         `db:"workflow_id" json:"workflowId"`
	Path           string         `db:"path" json:"path"`
	Provider       Provider       `db:"provider" json:"provider"`
	ProviderConfig ProviderConfig `db:"provider_config" json:"providerConfig"`
	IsActive       bool           `db:"is_active" json:"isActive"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updatedAt"`
}

// SubscriptionExpiration parses the persisted expiration, ok is false when absent or malformed.
func (w *Webhook) SubscriptionExpiration() (time.Time, bool) {
	raw := w.ProviderConfig.String(ConfigSubscriptionExpiration)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type Workflow struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	WorkspaceID *string   `db:"workspace_id" json:"workspaceId,omitempty"`
	Name        string    `db:"name" json:"name"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// WebhookWithOwner joins a webhook with the owner of its workflow.
type WebhookWithOwner struct {
	Webhook

	OwnerID     string
	WorkspaceID *string
}

type WebhookFilter struct {
	WorkflowID string
	Providers  []Provider
	ActiveOnly bool

	Page int64
	Size int64
}

// WebhookPatch carries the mutable fields, nil means unchanged.
type WebhookPatch struct {
	Path           *string
	ProviderConfig ProviderConfig
	IsActive       *bool
}

type OAuthCredential struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	Provider     string    `db:"provider"`
	AccessToken  string    `db:"access_token"`
	RefreshToken string    `db:"refresh_token"`
	TokenType    string    `db:"token_type"`
	Expiry       time.Time `db:"expiry"`
	Scopes       []string  `db:"scopes"`
	UpdatedAt    time.Time `db:"updated_at"`
}
