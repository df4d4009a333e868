// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package testtoken

import (
	"context"
	"time"
)

type ServiceInterface interface {
	Mint(ctx context.Context, webhookID string, ttl time.Duration) (string, time.Time, error)
	Verify(ctx context.Context, token string) (string, error)
}
