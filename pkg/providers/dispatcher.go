// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/types"
	"github.com/canonical/webhook-service/pkg/profiles"
)

const (
	DefaultGraphBaseURL    = "https://graph.microsoft.com/v1.0"
	DefaultAirtableBaseURL = "https://api.airtable.com"
	DefaultTelegramBaseURL = "https://api.telegram.org"
)

type Config struct {
	CallbackBaseURL string
	GraphBaseURL    string
	AirtableBaseURL string
	TelegramBaseURL string

	Timeout    time.Duration
	HTTPClient *http.Client
	Now        func() time.Time
}

var _ Adapter = (*Dispatcher)(nil)

// Dispatcher routes each lifecycle call to the adapter of the webhook's provider.
type Dispatcher struct {
	registry *profiles.Registry
	adapters map[types.Provider]Adapter

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// For returns the adapter for provider, unknown providers are handled as generic.
func (d *Dispatcher) For(provider types.Provider) Adapter {
	if a, ok := d.adapters[provider]; ok {
		return a
	}
	return d.adapters[types.ProviderGeneric]
}

func (d *Dispatcher) Verify(ctx context.Context, hook *types.Webhook, params Params) (*VerifyResult, error) {
	ctx, span := d.tracer.Start(ctx, "providers.Dispatcher.Verify")
	defer span.End()

	if params == nil {
		params = Params{}
	}

	return d.For(hook.Provider).Verify(ctx, hook, params)
}

// Renew only reaches the adapter for time limited providers.
func (d *Dispatcher) Renew(ctx context.Context, hook *types.WebhookWithOwner) (*RenewResult, error) {
	ctx, span := d.tracer.Start(ctx, "providers.Dispatcher.Renew")
	defer span.End()

	profile, _ := d.registry.Lookup(hook.Provider)
	if !profile.TimeLimited {
		return &RenewResult{Reason: "provider is not renewable"}, nil
	}

	result, err := d.For(hook.Provider).Renew(ctx, hook)

	outcome := "renewed"
	if err != nil || !result.Renewed {
		outcome = "failed"
	}
	d.count(d.monitor.IncRenewalOutcome, hook.Provider, outcome)

	return result, err
}

// Teardown returns an error wrapping ErrRemoteCallFailed when the remote resource may still exist.
func (d *Dispatcher) Teardown(ctx context.Context, hook *types.WebhookWithOwner) (*TeardownResult, error) {
	ctx, span := d.tracer.Start(ctx, "providers.Dispatcher.Teardown")
	defer span.End()

	result, err := d.For(hook.Provider).Teardown(ctx, hook)
	if err != nil {
		if ctx.Err() != nil && !errors.Is(err, ErrRemoteCallFailed) {
			err = errors.Join(ErrRemoteCallFailed, err)
		}
		d.count(d.monitor.IncTeardownOutcome, hook.Provider, "failed")
		return nil, err
	}

	d.count(d.monitor.IncTeardownOutcome, hook.Provider, string(result.Outcome))

	if result.Outcome == TeardownSkipped {
		d.logger.Warnf("teardown of webhook %s (%s) skipped: %s", hook.ID, hook.Provider, result.Reason)
	}

	return result, nil
}

func (d *Dispatcher) count(inc func(map[string]string) error, provider types.Provider, outcome string) {
	if err := inc(map[string]string{"provider": string(provider), "outcome": outcome}); err != nil {
		d.logger.Debugf("failed to record %s outcome: %v", outcome, err)
	}
}

func NewDispatcher(
	registry *profiles.Registry,
	cfg Config,
	tokens TokenProviderInterface,
	recorder IDRecorderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Dispatcher {
	d := new(Dispatcher)

	d.registry = registry

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.GraphBaseURL == "" {
		cfg.GraphBaseURL = DefaultGraphBaseURL
	}
	if cfg.AirtableBaseURL == "" {
		cfg.AirtableBaseURL = DefaultAirtableBaseURL
	}
	if cfg.TelegramBaseURL == "" {
		cfg.TelegramBaseURL = DefaultTelegramBaseURL
	}

	r := newRemote(cfg.HTTPClient, cfg.Timeout, logger)

	d.adapters = make(map[types.Provider]Adapter)
	for _, provider := range registry.Providers() {
		profile, _ := registry.Lookup(provider)
		d.adapters[provider] = assemble(profile, cfg, tokens, recorder, r, logger)
	}

	return d
}

type verifier interface {
	Verify(context.Context, *types.Webhook, Params) (*VerifyResult, error)
}

type renewer interface {
	Renew(context.Context, *types.WebhookWithOwner) (*RenewResult, error)
}

type tearer interface {
	Teardown(context.Context, *types.WebhookWithOwner) (*TeardownResult, error)
}

// profileAdapter combines the handshake, renewal and teardown strategies a profile names.
type profileAdapter struct {
	verifier
	renewer
	tearer

	collectSubscription bool
}

func (a *profileAdapter) Verify(ctx context.Context, hook *types.Webhook, params Params) (*VerifyResult, error) {
	result, err := a.verifier.Verify(ctx, hook, params)
	if err != nil || !result.Passed || !a.collectSubscription {
		return result, err
	}

	return collectSubscription(result, params), nil
}

// collectSubscription copies the subscription a handshake reported into the result's config updates.
func collectSubscription(result *VerifyResult, params Params) *VerifyResult {
	id := params[types.ConfigExternalSubscriptionID]
	if id == "" {
		return result
	}

	updates := types.ProviderConfig{types.ConfigExternalSubscriptionID: id}

	if raw := params[types.ConfigSubscriptionExpiration]; raw != "" {
		expiration, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			result.Diagnostics = append(result.Diagnostics, fmt.Sprintf("ignoring malformed subscription expiration %q", raw))
		} else {
			updates[types.ConfigSubscriptionExpiration] = expiration.UTC().Format(time.RFC3339)
		}
	}

	result.ConfigUpdates = updates
	return result
}

// subscriptionAPI is a provider side resource that can be renewed and deleted.
type subscriptionAPI interface {
	renewer
	tearer
}

func assemble(
	profile profiles.Profile,
	cfg Config,
	tokens TokenProviderInterface,
	recorder IDRecorderInterface,
	r *remote,
	logger logging.LoggerInterface,
) Adapter {
	base := newPassiveAdapter(profile.Provider, profile, cfg.CallbackBaseURL, cfg.Now)
	a := &profileAdapter{verifier: base, renewer: base, tearer: base, collectSubscription: profile.TimeLimited}

	switch profile.Handshake {
	case profiles.HandshakeChallenge:
		a.verifier = newWhatsAppAdapter(base, r, logger)
	case profiles.HandshakeSyntheticUpdate:
		a.verifier = newTelegramAdapter(base, cfg.TelegramBaseURL, r, logger)
	}

	recoverIDs := profile.Teardown == profiles.TeardownListAndMatch

	var api subscriptionAPI
	switch profile.Provider {
	case types.ProviderMicrosoftTeams:
		api = newTeamsAdapter(base, cfg.GraphBaseURL, tokens, recorder, recoverIDs, r, logger)
	case types.ProviderAirtable:
		api = newAirtableAdapter(base, cfg.AirtableBaseURL, tokens, recorder, recoverIDs, r, logger)
	}

	if profile.TimeLimited && api != nil {
		a.renewer = api
	}

	switch profile.Teardown {
	case profiles.TeardownBotToken:
		a.tearer = newTelegramAdapter(base, cfg.TelegramBaseURL, r, logger)
	case profiles.TeardownDirect, profiles.TeardownListAndMatch:
		if api == nil {
			logger.Errorf("provider %s has no subscription API, teardown %s falls back to none", profile.Provider, profile.Teardown)
			break
		}
		a.tearer = api
	}

	return a
}
