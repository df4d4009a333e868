// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
)

type fakeRedis struct {
	redis.Scripter

	setNXResult bool
	setNXErr    error

	setKey   string
	setValue interface{}
	setTTL   time.Duration

	released []string
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	f.setKey = key
	f.setValue = value
	f.setTTL = expiration
	return redis.NewBoolResult(f.setNXResult, f.setNXErr)
}

func (f *fakeRedis) EvalSha(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	if len(args) != 1 || args[0] != f.setValue {
		return redis.NewCmdResult(int64(0), nil)
	}
	f.released = append(f.released, keys...)
	return redis.NewCmdResult(int64(1), nil)
}

func TestRedisLocker_Acquire(t *testing.T) {
	tests := []struct {
		name        string
		client      *fakeRedis
		expectedOK  bool
		expectedErr bool
	}{
		{name: "acquired", client: &fakeRedis{setNXResult: true}, expectedOK: true},
		{name: "held elsewhere", client: &fakeRedis{setNXResult: false}, expectedOK: false},
		{name: "redis down", client: &fakeRedis{setNXErr: errors.New("dial tcp: refused")}, expectedErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			logger := logging.NewNoopLogger()
			l := newRedisLocker(test.client, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

			release, ok, err := l.Acquire(context.Background(), "renewal", 5*time.Minute)

			if test.expectedErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if ok != test.expectedOK {
				t.Fatalf("expected ok=%v, got %v", test.expectedOK, ok)
			}

			if test.client.setKey != "webhook-service:lock:renewal" {
				t.Errorf("unexpected key %s", test.client.setKey)
			}

			if test.client.setTTL != 5*time.Minute {
				t.Errorf("unexpected ttl %s", test.client.setTTL)
			}

			if !ok {
				return
			}

			if err := release(context.Background()); err != nil {
				t.Fatalf("unexpected release error: %v", err)
			}

			if len(test.client.released) != 1 || test.client.released[0] != "webhook-service:lock:renewal" {
				t.Errorf("expected lock key to be released, got %v", test.client.released)
			}
		})
	}
}

func TestNoopLocker_Acquire(t *testing.T) {
	release, ok, err := NewNoopLocker().Acquire(context.Background(), "renewal", time.Minute)
	if err != nil || !ok {
		t.Fatalf("expected noop lock to be granted, got ok=%v err=%v", ok, err)
	}

	if err := release(context.Background()); err != nil {
		t.Errorf("unexpected release error: %v", err)
	}
}
