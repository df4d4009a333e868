// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
)

const keyPrefix = "webhook-service:lock:"

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	redis.Scripter
}

var _ LockerInterface = (*RedisLocker)(nil)

type RedisLocker struct {
	client redisClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	ctx, span := l.tracer.Start(ctx, "lock.RedisLocker.Acquire")
	defer span.End()

	token := uuid.NewString()
	fullKey := keyPrefix + key

	ok, err := l.client.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		_ = l.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, 0)
		return nil, false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	_ = l.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, 1)

	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{fullKey}, token).Err(); err != nil {
			return fmt.Errorf("failed to release lock %s: %w", key, err)
		}
		return nil
	}

	return release, true, nil
}

func NewRedisLocker(client *redis.Client, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *RedisLocker {
	return newRedisLocker(client, tracer, monitor, logger)
}

func newRedisLocker(client redisClient, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *RedisLocker {
	l := new(RedisLocker)

	l.client = client

	l.tracer = tracer
	l.monitor = monitor
	l.logger = logger

	return l
}
