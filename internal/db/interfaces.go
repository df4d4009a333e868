// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

// DBClientInterface hands out squirrel builders bound to the pool.
type DBClientInterface interface {
	Statement(context.Context) sq.StatementBuilderType
	Ping(context.Context) error
	Close()
}
