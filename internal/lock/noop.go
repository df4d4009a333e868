// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lock

import (
	"context"
	"time"
)

var _ LockerInterface = (*NoopLocker)(nil)

// NoopLocker always grants the lease, for single replica deployments.
type NoopLocker struct{}

func (NoopLocker) Acquire(context.Context, string, time.Duration) (func(context.Context) error, bool, error) {
	return func(context.Context) error { return nil }, true, nil
}

func NewNoopLocker() *NoopLocker {
	return &NoopLocker{}
}
