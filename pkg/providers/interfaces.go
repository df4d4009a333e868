// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"context"

	"github.com/canonical/webhook-service/internal/types"
)

// Adapter runs the provider side of a webhook's lifecycle.
type Adapter interface {
	Verify(ctx context.Context, hook *types.Webhook, params Params) (*VerifyResult, error)
	Renew(ctx context.Context, hook *types.WebhookWithOwner) (*RenewResult, error)
	Teardown(ctx context.Context, hook *types.WebhookWithOwner) (*TeardownResult, error)
}

// TokenProviderInterface resolves OAuth access tokens for stored credentials.
type TokenProviderInterface interface {
	GetValidAccessToken(ctx context.Context, credentialID, userID, purpose string) (string, error)
}

// IDRecorderInterface persists a provider identifier recovered during teardown.
type IDRecorderInterface interface {
	RecordExternalID(ctx context.Context, webhookID, key, value string) error
}
