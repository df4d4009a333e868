// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/webhook-service/internal/types"
)

type StorageInterface interface {
	GetWebhook(ctx context.Context, id string) (*types.Webhook, error)
	GetWebhookByPath(ctx context.Context, path string) (*types.Webhook, error)
	ListWebhooks(ctx context.Context, filter types.WebhookFilter) ([]*types.Webhook, error)
	ListWebhooksWithOwner(ctx context.Context, filter types.WebhookFilter) ([]*types.WebhookWithOwner, error)
	InsertWebhook(ctx context.Context, w *types.Webhook) (*types.Webhook, error)
	UpdateWebhook(ctx context.Context, id string, patch types.WebhookPatch) (*types.Webhook, error)
	DeleteWebhook(ctx context.Context, id string) error

	GetWorkflow(ctx context.Context, id string) (*types.Workflow, error)

	GetCredential(ctx context.Context, id string) (*types.OAuthCredential, error)
	UpdateCredentialToken(ctx context.Context, c *types.OAuthCredential) error
}
