// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/webhook-service/internal/types"
)

func (s *Storage) GetCredential(ctx context.Context, id string) (*types.OAuthCredential, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCredential")
	defer span.End()

	var (
		c      types.OAuthCredential
		expiry sql.NullTime
		scopes string
	)

	err := s.db.Statement(ctx).
		Select("id", "user_id", "provider", "access_token", "refresh_token", "token_type", "expiry", "scopes", "updated_at").
		From("oauth_credentials").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.UserID, &c.Provider, &c.AccessToken, &c.RefreshToken, &c.TokenType, &expiry, &scopes, &c.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	if expiry.Valid {
		c.Expiry = expiry.Time
	}
	c.Scopes = strings.Fields(scopes)

	return &c, nil
}

// UpdateCredentialToken stores a rotated token pair, the refresh token is kept when the new one is empty.
func (s *Storage) UpdateCredentialToken(ctx context.Context, c *types.OAuthCredential) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCredentialToken")
	defer span.End()

	query := s.db.Statement(ctx).
		Update("oauth_credentials").
		Set("access_token", c.AccessToken).
		Set("token_type", c.TokenType).
		Set("expiry", c.Expiry).
		Set("updated_at", sq.Expr("NOW()"))

	if c.RefreshToken != "" {
		query = query.Set("refresh_token", c.RefreshToken)
	}

	result, err := query.Where(sq.Eq{"id": c.ID}).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update credential token: %w", err)
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
