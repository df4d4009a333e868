// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package renewal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/canonical/webhook-service/internal/lock"
	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/types"
	"github.com/canonical/webhook-service/pkg/profiles"
)

const (
	DefaultWindow   = 48 * time.Hour
	DefaultInterval = time.Hour
	DefaultLockTTL  = 10 * time.Minute

	lockKey = "renewal"
)

// ErrPassInProgress is returned when another replica holds the renewal lock.
var ErrPassInProgress = errors.New("renewal pass already in progress")

// Summary is accumulated per pass, Total counts every active renewable webhook listed.
type Summary struct {
	Checked int `json:"checked"`
	Renewed int `json:"renewed"`
	Failed  int `json:"failed"`
	Total   int `json:"total"`
}

type Config struct {
	Window   time.Duration
	Interval time.Duration
	LockTTL  time.Duration
	// RateLimit caps outbound renew calls per second, zero disables pacing.
	RateLimit float64
	Now       func() time.Time
}

var _ SchedulerInterface = (*Scheduler)(nil)

// Scheduler extends time limited provider subscriptions before they lapse.
type Scheduler struct {
	store    StorageInterface
	renewer  RenewerInterface
	registry *profiles.Registry
	locker   lock.LockerInterface
	limiter  *rate.Limiter

	window   time.Duration
	interval time.Duration
	lockTTL  time.Duration
	now      func() time.Time

	stopCh chan struct{}
	wg     sync.WaitGroup
	once   sync.Once

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RunOnce renews every active subscription expiring within the window, one at a time.
// A failed item is counted and logged, it never ends the pass.
func (s *Scheduler) RunOnce(ctx context.Context) (Summary, error) {
	ctx, span := s.tracer.Start(ctx, "renewal.Scheduler.RunOnce")
	defer span.End()

	var summary Summary

	release, ok, err := s.locker.Acquire(ctx, lockKey, s.lockTTL)
	if err != nil {
		return summary, fmt.Errorf("failed to acquire renewal lock: %w", err)
	}

	if !ok {
		return summary, ErrPassInProgress
	}

	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warnf("failed to release renewal lock: %v", err)
		}
	}()

	hooks, err := s.store.ListWebhooksWithOwner(ctx, types.WebhookFilter{
		Providers:  s.registry.Renewable(),
		ActiveOnly: true,
	})
	if err != nil {
		return summary, fmt.Errorf("failed to list renewable webhooks: %w", err)
	}

	summary.Total = len(hooks)
	deadline := s.now().Add(s.window)

	for _, hook := range hooks {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		current, known := hook.SubscriptionExpiration()
		if known && current.After(deadline) {
			continue
		}

		summary.Checked++

		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				summary.Failed++
				return summary, err
			}
		}

		if s.renewOne(ctx, hook, current, known) {
			summary.Renewed++
		} else {
			summary.Failed++
		}
	}

	s.logger.Infow(
		"renewal pass finished",
		"checked", summary.Checked,
		"renewed", summary.Renewed,
		"failed", summary.Failed,
		"total", summary.Total,
	)

	return summary, nil
}

func (s *Scheduler) renewOne(ctx context.Context, hook *types.WebhookWithOwner, current time.Time, known bool) bool {
	result, err := s.renewer.Renew(ctx, hook)
	if err != nil {
		s.logger.Warnw("renewal failed", "webhook", hook.ID, "provider", hook.Provider, "error", err)
		return false
	}

	if !result.Renewed {
		s.logger.Warnw("renewal failed", "webhook", hook.ID, "provider", hook.Provider, "reason", result.Reason)
		return false
	}

	expiration := result.NewExpiration
	if known && expiration.Before(current) {
		s.logger.Warnw("provider shortened subscription, keeping stored expiration", "webhook", hook.ID, "provider", hook.Provider, "returned", expiration)
		expiration = current
	}

	cfg := hook.ProviderConfig.Clone()
	if cfg == nil {
		cfg = types.ProviderConfig{}
	}
	cfg[types.ConfigSubscriptionExpiration] = expiration.UTC().Format(time.RFC3339)

	if _, err := s.store.UpdateWebhook(ctx, hook.ID, types.WebhookPatch{ProviderConfig: cfg}); err != nil {
		s.logger.Errorw("failed to persist renewed expiration", "webhook", hook.ID, "provider", hook.Provider, "error", err)
		return false
	}

	s.logger.Debugf("renewed webhook %s until %s", hook.ID, expiration.Format(time.RFC3339))
	return true
}

// Start runs a pass immediately and then on every interval until Stop or ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Infof("starting renewal scheduler, interval %s", s.interval)

	s.wg.Add(1)
	go s.tickLoop(ctx)
}

func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	s.logger.Info("renewal scheduler stopped")
}

func (s *Scheduler) tickLoop(ctx context.Context) {
	defer s.wg.Done()

	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if _, err := s.RunOnce(ctx); err != nil {
		if errors.Is(err, ErrPassInProgress) {
			s.logger.Debug("renewal pass skipped, lock held elsewhere")
			return
		}
		s.logger.Errorf("renewal pass failed: %v", err)
	}
}

func NewScheduler(
	store StorageInterface,
	renewer RenewerInterface,
	registry *profiles.Registry,
	locker lock.LockerInterface,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Scheduler {
	s := new(Scheduler)

	s.store = store
	s.renewer = renewer
	s.registry = registry
	s.locker = locker

	s.window = cfg.Window
	if s.window <= 0 {
		s.window = DefaultWindow
	}

	s.interval = cfg.Interval
	if s.interval <= 0 {
		s.interval = DefaultInterval
	}

	s.lockTTL = cfg.LockTTL
	if s.lockTTL <= 0 {
		s.lockTTL = DefaultLockTTL
	}

	s.now = cfg.Now
	if s.now == nil {
		s.now = time.Now
	}

	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	if s.locker == nil {
		s.locker = lock.NewNoopLocker()
	}

	s.stopCh = make(chan struct{})

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
