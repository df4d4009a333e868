// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/webhook-service/internal/types"
)

func (s *Storage) GetWorkflow(ctx context.Context, id string) (*types.Workflow, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkflow")
	defer span.End()

	var (
		wf          types.Workflow
		workspaceID sql.NullString
	)

	err := s.db.Statement(ctx).
		Select("id", "user_id", "workspace_id", "name", "created_at").
		From("workflows").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&wf.ID, &wf.UserID, &workspaceID, &wf.Name, &wf.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}

	if workspaceID.Valid && workspaceID.String != "" {
		wf.WorkspaceID = &workspaceID.String
	}

	return &wf, nil
}
