// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// SQLSTATE class 23 codes
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// constraintError maps missing rows and postgres constraint codes onto the
// package sentinels, keeping msg as context.
func constraintError(err error, msg string) error {
	if isNoRows(err) {
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", msg, err)
	}

	switch pgErr.Code {
	case uniqueViolation:
		return fmt.Errorf("%s: %s: %w", msg, pgErr.ConstraintName, ErrDuplicateKey)
	case foreignKeyViolation:
		return fmt.Errorf("%s: %s: %w", msg, pgErr.ConstraintName, ErrForeignKeyViolation)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
