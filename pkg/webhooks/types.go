// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

type CreateWebhookRequest struct {
	WorkflowID     string         `json:"workflowId" validate:"required"`
	Path           string         `json:"path" validate:"required,max=255,excludesall=?#"`
	Provider       string         `json:"provider" validate:"required"`
	ProviderConfig map[string]any `json:"providerConfig"`
	IsActive       *bool          `json:"isActive"`
}

// UpdateWebhookRequest fields left out are unchanged, a null providerConfig value removes the key.
type UpdateWebhookRequest struct {
	Path           *string        `json:"path" validate:"omitempty,min=1,max=255,excludesall=?#"`
	ProviderConfig map[string]any `json:"providerConfig"`
	IsActive       *bool          `json:"isActive"`
}

type VerifyWebhookRequest struct {
	Params map[string]string `json:"params"`
}

type MintTestTokenRequest struct {
	TTLSeconds int64 `json:"ttlSeconds" validate:"gte=0"`
}

type MissingFieldsData struct {
	Provider      string   `json:"provider"`
	MissingFields []string `json:"missingFields"`
}
