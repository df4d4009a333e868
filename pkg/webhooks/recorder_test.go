// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/storage"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/types"
)

func TestIDRecorder_RecordExternalID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStorageInterface(ctrl)

	expected := testHook().ProviderConfig.Clone()
	expected[types.ConfigExternalWebhookID] = "ach123"

	store.EXPECT().GetWebhook(gomock.Any(), "wh-1").Return(testHook(), nil)
	store.EXPECT().UpdateWebhook(gomock.Any(), "wh-1", types.WebhookPatch{ProviderConfig: expected}).Return(testHook(), nil)

	r := NewIDRecorder(store, tracing.NewNoopTracer(), logging.NewNoopLogger())

	if err := r.RecordExternalID(context.Background(), "wh-1", types.ConfigExternalWebhookID, "ach123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIDRecorder_MissingWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStorageInterface(ctrl)

	store.EXPECT().GetWebhook(gomock.Any(), "wh-1").Return(nil, storage.ErrNotFound)

	r := NewIDRecorder(store, tracing.NewNoopTracer(), logging.NewNoopLogger())

	if err := r.RecordExternalID(context.Background(), "wh-1", types.ConfigExternalWebhookID, "ach123"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
