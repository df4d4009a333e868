// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/webhook-service/internal/db"
	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var webhookColumns = []string{
	"w.id", "w.workflow_id", "w.path", "w.provider", "w.provider_config", "w.is_active", "w.created_at", "w.updated_at",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWebhook(row rowScanner, extra ...any) (*types.Webhook, error) {
	var (
		w        types.Webhook
		provider string
		rawCfg   []byte
	)

	dest := append([]any{&w.ID, &w.WorkflowID, &w.Path, &provider, &rawCfg, &w.IsActive, &w.CreatedAt, &w.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	w.Provider = types.Provider(provider)
	w.ProviderConfig = types.ProviderConfig{}
	if len(rawCfg) > 0 {
		if err := json.Unmarshal(rawCfg, &w.ProviderConfig); err != nil {
			return nil, fmt.Errorf("failed to decode provider config of webhook %s: %w", w.ID, err)
		}
	}

	return &w, nil
}

func encodeConfig(cfg types.ProviderConfig) (string, error) {
	if cfg == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode provider config: %w", err)
	}
	return string(raw), nil
}

func (s *Storage) GetWebhook(ctx context.Context, id string) (*types.Webhook, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWebhook")
	defer span.End()

	return s.getWebhookBy(ctx, sq.Eq{"w.id": id})
}

func (s *Storage) GetWebhookByPath(ctx context.Context, path string) (*types.Webhook, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWebhookByPath")
	defer span.End()

	return s.getWebhookBy(ctx, sq.Eq{"w.path": path})
}

func (s *Storage) getWebhookBy(ctx context.Context, pred sq.Eq) (*types.Webhook, error) {
	row := s.db.Statement(ctx).
		Select(webhookColumns...).
		From("webhooks w").
		Where(pred).
		QueryRowContext(ctx)

	w, err := scanWebhook(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get webhook: %w", err)
	}

	return w, nil
}

func applyFilter(query sq.SelectBuilder, filter types.WebhookFilter) sq.SelectBuilder {
	if filter.WorkflowID != "" {
		query = query.Where(sq.Eq{"w.workflow_id": filter.WorkflowID})
	}

	if len(filter.Providers) > 0 {
		providers := make([]string, 0, len(filter.Providers))
		for _, p := range filter.Providers {
			providers = append(providers, string(p))
		}
		query = query.Where(sq.Eq{"w.provider": providers})
	}

	if filter.ActiveOnly {
		query = query.Where(sq.Eq{"w.is_active": true})
	}

	if filter.Size > 0 {
		limit, offset := db.Page(filter.Page, filter.Size)
		query = query.Limit(limit).Offset(offset)
	}

	return query.OrderBy("w.created_at ASC", "w.id ASC")
}

func (s *Storage) ListWebhooks(ctx context.Context, filter types.WebhookFilter) ([]*types.Webhook, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWebhooks")
	defer span.End()

	query := applyFilter(
		s.db.Statement(ctx).Select(webhookColumns...).From("webhooks w"),
		filter,
	)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhooks: %w", err)
	}
	defer rows.Close()

	webhooks := make([]*types.Webhook, 0)
	for rows.Next() {
		w, err := scanWebhook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan webhook: %w", err)
		}
		webhooks = append(webhooks, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating webhook rows: %w", err)
	}

	return webhooks, nil
}

func (s *Storage) ListWebhooksWithOwner(ctx context.Context, filter types.WebhookFilter) ([]*types.WebhookWithOwner, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWebhooksWithOwner")
	defer span.End()

	columns := append(append([]string{}, webhookColumns...), "wf.user_id", "wf.workspace_id")
	query := applyFilter(
		s.db.Statement(ctx).
			Select(columns...).
			From("webhooks w").
			Join("workflows wf ON wf.id = w.workflow_id"),
		filter,
	)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhooks with owner: %w", err)
	}
	defer rows.Close()

	webhooks := make([]*types.WebhookWithOwner, 0)
	for rows.Next() {
		var (
			ownerID     string
			workspaceID sql.NullString
		)
		w, err := scanWebhook(rows, &ownerID, &workspaceID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan webhook: %w", err)
		}

		item := &types.WebhookWithOwner{Webhook: *w, OwnerID: ownerID}
		if workspaceID.Valid {
			item.WorkspaceID = &workspaceID.String
		}
		webhooks = append(webhooks, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating webhook rows: %w", err)
	}

	return webhooks, nil
}

func (s *Storage) InsertWebhook(ctx context.Context, w *types.Webhook) (*types.Webhook, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertWebhook")
	defer span.End()

	id := w.ID
	if id == "" {
		uid, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate webhook ID: %w", err)
		}
		id = uid.String()
	}

	cfg, err := encodeConfig(w.ProviderConfig)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("webhooks").
		Columns("id", "workflow_id", "path", "provider", "provider_config", "is_active").
		Values(id, w.WorkflowID, w.Path, string(w.Provider), cfg, w.IsActive).
		Suffix("RETURNING id, workflow_id, path, provider, provider_config, is_active, created_at, updated_at").
		QueryRowContext(ctx)

	created, err := scanWebhook(row)
	if err != nil {
		return nil, constraintError(err, fmt.Sprintf("failed to insert webhook %q", w.Path))
	}

	return created, nil
}

func (s *Storage) UpdateWebhook(ctx context.Context, id string, patch types.WebhookPatch) (*types.Webhook, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateWebhook")
	defer span.End()

	query := s.db.Statement(ctx).
		Update("webhooks").
		Set("updated_at", sq.Expr("NOW()"))

	if patch.Path != nil {
		query = query.Set("path", *patch.Path)
	}

	if patch.ProviderConfig != nil {
		cfg, err := encodeConfig(patch.ProviderConfig)
		if err != nil {
			return nil, err
		}
		query = query.Set("provider_config", cfg)
	}

	if patch.IsActive != nil {
		query = query.Set("is_active", *patch.IsActive)
	}

	row := query.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, workflow_id, path, provider, provider_config, is_active, created_at, updated_at").
		QueryRowContext(ctx)

	updated, err := scanWebhook(row)
	if err != nil {
		return nil, constraintError(err, fmt.Sprintf("failed to update webhook %s", id))
	}

	return updated, nil
}

func (s *Storage) DeleteWebhook(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteWebhook")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Delete("webhooks").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
