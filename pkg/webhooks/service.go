// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/storage"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/types"
	"github.com/canonical/webhook-service/pkg/access"
	"github.com/canonical/webhook-service/pkg/profiles"
	"github.com/canonical/webhook-service/pkg/providers"
)

type TestToken struct {
	Token     string    `json:"token"`
	WebhookID string    `json:"webhookId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

var _ ServiceInterface = (*Service)(nil)

// Service orchestrates webhook CRUD around authorization and the provider lifecycle.
// Nothing here talks to a provider on create or update.
type Service struct {
	store     StorageInterface
	gate      GateInterface
	lifecycle LifecycleInterface
	tokens    TokenMinterInterface
	registry  *profiles.Registry

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Create(ctx context.Context, principalID string, hook *types.Webhook) (*types.Webhook, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.Create")
	defer span.End()

	if principalID == "" {
		return nil, ErrUnauthorized
	}

	path := normalizePath(hook.Path)
	if path == "" {
		return nil, fmt.Errorf("%w: path is required", ErrInvalidInput)
	}

	if !s.registry.Known(hook.Provider) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, hook.Provider)
	}

	if err := s.validateConfig(hook.Provider, hook.ProviderConfig); err != nil {
		return nil, err
	}

	workflow, err := s.workflow(ctx, hook.WorkflowID)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, principalID, nil, workflow, access.ActionModify); err != nil {
		return nil, err
	}

	cfg := hook.ProviderConfig.Clone()
	if cfg == nil {
		cfg = types.ProviderConfig{}
	}

	created, err := s.store.InsertWebhook(ctx, &types.Webhook{
		WorkflowID:     workflow.ID,
		Path:           path,
		Provider:       hook.Provider,
		ProviderConfig: cfg,
		IsActive:       hook.IsActive,
	})
	if err != nil {
		return nil, mapWriteError(err)
	}

	s.logger.Infof("webhook %s created for workflow %s (%s)", created.ID, created.WorkflowID, created.Provider)
	return created, nil
}

func (s *Service) Get(ctx context.Context, principalID, id string) (*types.Webhook, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.Get")
	defer span.End()

	hook, _, err := s.load(ctx, principalID, id, access.ActionRead)
	if err != nil {
		return nil, err
	}

	return hook, nil
}

// List returns the webhooks matching filter that the principal may read.
func (s *Service) List(ctx context.Context, principalID string, filter types.WebhookFilter) ([]*types.Webhook, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.List")
	defer span.End()

	if principalID == "" {
		return nil, ErrUnauthorized
	}

	rows, err := s.store.ListWebhooksWithOwner(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhooks: %w", err)
	}

	// every webhook of a workflow shares its access decision
	decisions := make(map[string]bool)
	hooks := make([]*types.Webhook, 0, len(rows))

	for _, row := range rows {
		allowed, seen := decisions[row.WorkflowID]
		if !seen {
			workflow := &types.Workflow{ID: row.WorkflowID, UserID: row.OwnerID, WorkspaceID: row.WorkspaceID}

			allowed, err = s.gate.CanAccess(ctx, principalID, nil, workflow, access.ActionRead)
			if err != nil {
				return nil, fmt.Errorf("failed to check access: %w", err)
			}
			decisions[row.WorkflowID] = allowed
		}

		if allowed {
			hook := row.Webhook
			hooks = append(hooks, &hook)
		}
	}

	return hooks, nil
}

// Update merges patch into the stored webhook, a nil config value removes the key.
func (s *Service) Update(ctx context.Context, principalID, id string, patch types.WebhookPatch) (*types.Webhook, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.Update")
	defer span.End()

	hook, _, err := s.load(ctx, principalID, id, access.ActionModify)
	if err != nil {
		return nil, err
	}

	next := types.WebhookPatch{IsActive: patch.IsActive}

	if patch.Path != nil {
		path := normalizePath(*patch.Path)
		if path == "" {
			return nil, fmt.Errorf("%w: path must not be empty", ErrInvalidInput)
		}
		next.Path = &path
	}

	if patch.ProviderConfig != nil {
		merged := hook.ProviderConfig.Clone()
		if merged == nil {
			merged = types.ProviderConfig{}
		}
		for k, v := range patch.ProviderConfig {
			if v == nil {
				delete(merged, k)
				continue
			}
			merged[k] = v
		}

		if err := s.validateConfig(hook.Provider, merged); err != nil {
			return nil, err
		}
		next.ProviderConfig = merged
	}

	updated, err := s.store.UpdateWebhook(ctx, id, next)
	if err != nil {
		return nil, mapWriteError(err)
	}

	return updated, nil
}

// Delete tears down the provider side first, the local record survives a fatal teardown.
func (s *Service) Delete(ctx context.Context, principalID, id string) (*providers.TeardownResult, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.Delete")
	defer span.End()

	hook, workflow, err := s.load(ctx, principalID, id, access.ActionDelete)
	if err != nil {
		return nil, err
	}

	result, err := s.lifecycle.Teardown(ctx, &types.WebhookWithOwner{
		Webhook:     *hook,
		OwnerID:     workflow.UserID,
		WorkspaceID: workflow.WorkspaceID,
	})
	if err != nil {
		s.logger.Errorw("teardown failed, keeping webhook", "webhook", id, "provider", hook.Provider, "error", err)
		return nil, fmt.Errorf("failed to tear down webhook %s: %w", id, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("delete of webhook %s interrupted after teardown: %w", id, err)
	}

	if err := s.store.DeleteWebhook(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete webhook: %w", err)
	}

	s.logger.Infof("webhook %s deleted, teardown %s", id, result.Outcome)
	return result, nil
}

// Verify runs the provider handshake, a failed handshake is a result and not an error.
func (s *Service) Verify(ctx context.Context, principalID, id string, params providers.Params) (*providers.VerifyResult, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.Verify")
	defer span.End()

	hook, workflow, err := s.load(ctx, principalID, id, access.ActionRead)
	if err != nil {
		return nil, err
	}

	result, err := s.lifecycle.Verify(ctx, hook, params)
	if err != nil {
		return nil, fmt.Errorf("failed to verify webhook: %w", err)
	}

	if !result.Passed || len(result.ConfigUpdates) == 0 {
		return result, nil
	}

	// subscription state is only written for principals allowed to modify the webhook
	switch err := s.authorize(ctx, principalID, hook, workflow, access.ActionModify); {
	case errors.Is(err, ErrForbidden):
		s.logger.Infof("webhook %s verified by %s without modify access, subscription state not stored", id, principalID)
		return result, nil
	case err != nil:
		return nil, err
	}

	cfg := hook.ProviderConfig.Clone()
	if cfg == nil {
		cfg = types.ProviderConfig{}
	}
	for k, v := range result.ConfigUpdates {
		cfg[k] = v
	}

	if _, err := s.store.UpdateWebhook(ctx, id, types.WebhookPatch{ProviderConfig: cfg}); err != nil {
		return nil, fmt.Errorf("failed to persist subscription state: %w", err)
	}

	s.logger.Infof("webhook %s subscription state updated from verification", id)

	return result, nil
}

// MintTestToken needs the same rights as editing the webhook.
func (s *Service) MintTestToken(ctx context.Context, principalID, id string, ttl time.Duration) (*TestToken, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.MintTestToken")
	defer span.End()

	if _, _, err := s.load(ctx, principalID, id, access.ActionModify); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Mint(ctx, id, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to mint test token: %w", err)
	}

	s.logger.Security().TestTokenMinted(principalID, id)

	return &TestToken{Token: token, WebhookID: id, ExpiresAt: expiresAt}, nil
}

// Resolve finds the webhook an inbound delivery is addressed to.
func (s *Service) Resolve(ctx context.Context, path string) (*types.Webhook, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.Resolve")
	defer span.End()

	hook, err := s.store.GetWebhookByPath(ctx, normalizePath(path))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve webhook path: %w", err)
	}

	return hook, nil
}

func (s *Service) load(ctx context.Context, principalID, id string, action access.Action) (*types.Webhook, *types.Workflow, error) {
	if principalID == "" {
		return nil, nil, ErrUnauthorized
	}

	hook, err := s.store.GetWebhook(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to load webhook: %w", err)
	}

	workflow, err := s.workflow(ctx, hook.WorkflowID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.authorize(ctx, principalID, hook, workflow, action); err != nil {
		return nil, nil, err
	}

	return hook, workflow, nil
}

func (s *Service) workflow(ctx context.Context, id string) (*types.Workflow, error) {
	workflow, err := s.store.GetWorkflow(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("workflow %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load workflow: %w", err)
	}
	return workflow, nil
}

func (s *Service) authorize(ctx context.Context, principalID string, hook *types.Webhook, workflow *types.Workflow, action access.Action) error {
	allowed, err := s.gate.CanAccess(ctx, principalID, hook, workflow, action)
	if err != nil {
		return fmt.Errorf("failed to check access: %w", err)
	}

	if !allowed {
		return ErrForbidden
	}

	return nil
}

func (s *Service) validateConfig(provider types.Provider, cfg types.ProviderConfig) error {
	profile, _ := s.registry.Lookup(provider)

	if missing := profile.MissingFields(cfg); len(missing) > 0 {
		return &IncompleteConfigError{Provider: string(provider), Missing: missing}
	}

	return nil
}

func mapWriteError(err error) error {
	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		return ErrDuplicatePath
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return fmt.Errorf("workflow: %w", ErrNotFound)
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("failed to persist webhook: %w", err)
	}
}

func normalizePath(path string) string {
	return strings.Trim(strings.TrimSpace(path), "/")
}

func NewService(
	store StorageInterface,
	gate GateInterface,
	lifecycle LifecycleInterface,
	tokens TokenMinterInterface,
	registry *profiles.Registry,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.store = store
	s.gate = gate
	s.lifecycle = lifecycle
	s.tokens = tokens
	s.registry = registry

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
