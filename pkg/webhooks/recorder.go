// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/storage"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/types"
	"github.com/canonical/webhook-service/pkg/providers"
)

var _ providers.IDRecorderInterface = (*IDRecorder)(nil)

// IDRecorder writes provider identifiers recovered during teardown back onto the webhook.
type IDRecorder struct {
	store StorageInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (r *IDRecorder) RecordExternalID(ctx context.Context, webhookID, key, value string) error {
	ctx, span := r.tracer.Start(ctx, "webhooks.IDRecorder.RecordExternalID")
	defer span.End()

	hook, err := r.store.GetWebhook(ctx, webhookID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load webhook: %w", err)
	}

	cfg := hook.ProviderConfig.Clone()
	if cfg == nil {
		cfg = types.ProviderConfig{}
	}
	cfg[key] = value

	if _, err := r.store.UpdateWebhook(ctx, webhookID, types.WebhookPatch{ProviderConfig: cfg}); err != nil {
		return fmt.Errorf("failed to record %s: %w", key, err)
	}

	r.logger.Debugf("recorded %s=%s on webhook %s", key, value, webhookID)
	return nil
}

func NewIDRecorder(store StorageInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *IDRecorder {
	r := new(IDRecorder)

	r.store = store

	r.tracer = tracer
	r.logger = logger

	return r
}
