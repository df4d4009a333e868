// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lock

import (
	"context"
	"time"
)

// LockerInterface grants short-lived exclusive leases across replicas.
type LockerInterface interface {
	// Acquire returns a release function when the lease was taken, ok is false when someone else holds it.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
}
