// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"

	"github.com/canonical/webhook-service/internal/authorization"
	"github.com/canonical/webhook-service/internal/config"
	"github.com/canonical/webhook-service/internal/db"
	"github.com/canonical/webhook-service/internal/lock"
	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/oauth"
	"github.com/canonical/webhook-service/internal/openfga"
	"github.com/canonical/webhook-service/internal/storage"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/pkg/access"
	"github.com/canonical/webhook-service/pkg/profiles"
	"github.com/canonical/webhook-service/pkg/providers"
	"github.com/canonical/webhook-service/pkg/renewal"
	"github.com/canonical/webhook-service/pkg/testtoken"
	"github.com/canonical/webhook-service/pkg/webhooks"
)

// components is the object graph shared by serve and the one-shot commands.
type components struct {
	dbClient  *db.DBClient
	store     *storage.Storage
	registry  *profiles.Registry
	tokens    *testtoken.Service
	webhooks  *webhooks.Service
	scheduler *renewal.Scheduler

	closers []func()
}

func (c *components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func buildComponents(ctx context.Context, specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*components, error) {
	c := new(components)

	dbClient, err := db.NewDBClient(
		ctx,
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}
	c.dbClient = dbClient
	c.closers = append(c.closers, dbClient.Close)

	c.store = storage.NewStorage(dbClient, tracer, monitor, logger)
	c.registry = profiles.NewRegistry()

	authorizer, err := newAuthorizer(ctx, specs, tracer, monitor, logger)
	if err != nil {
		c.Close()
		return nil, err
	}

	httpClient := providers.NewHTTPClient()

	oauthConfigs := make(map[string]*oauth2.Config)
	if specs.MicrosoftClientID != "" {
		oauthConfigs[oauth.ProviderMicrosoft] = oauth.MicrosoftConfig(specs.MicrosoftClientID, specs.MicrosoftClientSecret, specs.MicrosoftTenant)
	}
	if specs.AirtableClientID != "" {
		oauthConfigs[oauth.ProviderAirtable] = oauth.AirtableConfig(specs.AirtableClientID, specs.AirtableClientSecret)
	}
	tokenProvider := oauth.NewTokenProvider(c.store, oauthConfigs, httpClient, tracer, monitor, logger)

	dispatcher := providers.NewDispatcher(
		c.registry,
		providers.Config{
			CallbackBaseURL: specs.WebhookBaseURL,
			GraphBaseURL:    specs.GraphBaseURL,
			AirtableBaseURL: specs.AirtableBaseURL,
			TelegramBaseURL: specs.TelegramBaseURL,
			Timeout:         specs.HTTPTimeout,
			HTTPClient:      httpClient,
		},
		tokenProvider,
		webhooks.NewIDRecorder(c.store, tracer, logger),
		tracer,
		monitor,
		logger,
	)

	c.tokens = testtoken.NewService([]byte(specs.TestTokenSecret), time.Now, tracer, monitor, logger)

	c.webhooks = webhooks.NewService(
		c.store,
		access.NewGate(authorizer, tracer, monitor, logger),
		dispatcher,
		c.tokens,
		c.registry,
		tracer,
		monitor,
		logger,
	)

	var locker lock.LockerInterface = lock.NewNoopLocker()
	if specs.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     specs.RedisAddr,
			Password: specs.RedisPassword,
			DB:       specs.RedisDB,
		})
		c.closers = append(c.closers, func() {
			if err := rdb.Close(); err != nil {
				logger.Errorf("failed to close redis client: %v", err)
			}
		})
		locker = lock.NewRedisLocker(rdb, tracer, monitor, logger)
		logger.Infof("renewal lock backed by redis at %s", specs.RedisAddr)
	}

	c.scheduler = renewal.NewScheduler(
		c.store,
		dispatcher,
		c.registry,
		locker,
		renewal.Config{
			Window:    specs.RenewalWindow,
			Interval:  specs.RenewalInterval,
			LockTTL:   specs.RenewalLockTTL,
			RateLimit: specs.RenewalRateLimit,
		},
		tracer,
		monitor,
		logger,
	)

	return c, nil
}

func newAuthorizer(ctx context.Context, specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*authorization.Authorizer, error) {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer")
		return authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger), nil
	}

	ofga := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		),
	)

	authorizer := authorization.NewAuthorizer(ofga, tracer, monitor, logger)
	if err := authorizer.ValidateModel(ctx); err != nil {
		return nil, fmt.Errorf("invalid authorization model: %w", err)
	}

	logger.Info("Authorization is enabled")
	return authorizer, nil
}
