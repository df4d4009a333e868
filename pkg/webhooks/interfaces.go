// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"time"

	"github.com/canonical/webhook-service/internal/types"
	"github.com/canonical/webhook-service/pkg/access"
	"github.com/canonical/webhook-service/pkg/providers"
)

// StorageInterface is the subset of internal/storage the registry needs.
type StorageInterface interface {
	GetWebhook(ctx context.Context, id string) (*types.Webhook, error)
	GetWebhookByPath(ctx context.Context, path string) (*types.Webhook, error)
	ListWebhooksWithOwner(ctx context.Context, filter types.WebhookFilter) ([]*types.WebhookWithOwner, error)
	InsertWebhook(ctx context.Context, w *types.Webhook) (*types.Webhook, error)
	UpdateWebhook(ctx context.Context, id string, patch types.WebhookPatch) (*types.Webhook, error)
	DeleteWebhook(ctx context.Context, id string) error
	GetWorkflow(ctx context.Context, id string) (*types.Workflow, error)
}

type GateInterface interface {
	CanAccess(ctx context.Context, principalID string, webhook *types.Webhook, workflow *types.Workflow, action access.Action) (bool, error)
}

// LifecycleInterface is the provider side of verification and deletion.
type LifecycleInterface interface {
	Verify(ctx context.Context, hook *types.Webhook, params providers.Params) (*providers.VerifyResult, error)
	Teardown(ctx context.Context, hook *types.WebhookWithOwner) (*providers.TeardownResult, error)
}

type TokenMinterInterface interface {
	Mint(ctx context.Context, webhookID string, ttl time.Duration) (string, time.Time, error)
}

type ResolverInterface interface {
	Resolve(ctx context.Context, path string) (*types.Webhook, error)
}

type ServiceInterface interface {
	Create(ctx context.Context, principalID string, hook *types.Webhook) (*types.Webhook, error)
	Get(ctx context.Context, principalID, id string) (*types.Webhook, error)
	List(ctx context.Context, principalID string, filter types.WebhookFilter) ([]*types.Webhook, error)
	Update(ctx context.Context, principalID, id string, patch types.WebhookPatch) (*types.Webhook, error)
	Delete(ctx context.Context, principalID, id string) (*providers.TeardownResult, error)
	Verify(ctx context.Context, principalID, id string, params providers.Params) (*providers.VerifyResult, error)
	MintTestToken(ctx context.Context, principalID, id string, ttl time.Duration) (*TestToken, error)
	Resolve(ctx context.Context, path string) (*types.Webhook, error)
}
