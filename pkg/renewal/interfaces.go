// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package renewal

import (
	"context"

	"github.com/canonical/webhook-service/internal/types"
	"github.com/canonical/webhook-service/pkg/providers"
)

// StorageInterface is the slice of webhook persistence a renewal pass touches.
type StorageInterface interface {
	ListWebhooksWithOwner(ctx context.Context, filter types.WebhookFilter) ([]*types.WebhookWithOwner, error)
	UpdateWebhook(ctx context.Context, id string, patch types.WebhookPatch) (*types.Webhook, error)
}

type RenewerInterface interface {
	Renew(ctx context.Context, hook *types.WebhookWithOwner) (*providers.RenewResult, error)
}

type SchedulerInterface interface {
	RunOnce(ctx context.Context) (Summary, error)
}
