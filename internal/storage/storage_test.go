// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/canonical/webhook-service/internal/db"
	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/types"
)

var _ db.DBClientInterface = (*sqlmockClient)(nil)

// sqlmockClient runs every statement on the sqlmock connection.
type sqlmockClient struct {
	conn *sql.DB
}

func (c *sqlmockClient) Statement(context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(c.conn)
}

func (c *sqlmockClient) Ping(ctx context.Context) error {
	return c.conn.PingContext(ctx)
}

func (c *sqlmockClient) Close() {}

var errConnReset = errors.New("connection reset")

var webhookRowColumns = []string{"id", "workflow_id", "path", "provider", "provider_config", "is_active", "created_at", "updated_at"}

func newTestStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	logger := logging.NewNoopLogger()
	s := NewStorage(&sqlmockClient{conn: conn}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	return s, mock
}

func TestStorage_GetWebhook(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		setup       func(sqlmock.Sqlmock)
		expectedErr error
		check       func(*testing.T, *types.Webhook)
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(webhookRowColumns).
					AddRow("wh-1", "wf-1", "teams-hook", "microsoftteams", []byte(`{"hmacSecret":"s","credentialId":"cred-1"}`), true, now, now)
				mock.ExpectQuery(`SELECT .* FROM webhooks w WHERE w.id = \$1`).WithArgs("wh-1").WillReturnRows(rows)
			},
			check: func(t *testing.T, w *types.Webhook) {
				if w.Provider != types.ProviderMicrosoftTeams {
					t.Errorf("expected provider microsoftteams, got %s", w.Provider)
				}
				if w.ProviderConfig.String("credentialId") != "cred-1" {
					t.Errorf("expected credentialId cred-1, got %v", w.ProviderConfig["credentialId"])
				}
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM webhooks w WHERE w.id = \$1`).WithArgs("wh-1").WillReturnRows(sqlmock.NewRows(webhookRowColumns))
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM webhooks w`).WillReturnError(errConnReset)
			},
			expectedErr: errConnReset,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			test.setup(mock)

			w, err := s.GetWebhook(context.Background(), "wh-1")

			if test.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v, got %v", test.expectedErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				test.check(t, w)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_InsertWebhook(t *testing.T) {
	now := time.Now().UTC()
	hook := &types.Webhook{
		WorkflowID:     "wf-1",
		Path:           "gh-hook",
		Provider:       types.ProviderGitHub,
		ProviderConfig: types.ProviderConfig{"secret": "s3cr3t"},
		IsActive:       true,
	}

	tests := []struct {
		name        string
		setup       func(sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(webhookRowColumns).
					AddRow("wh-new", "wf-1", "gh-hook", "github", []byte(`{"secret":"s3cr3t"}`), true, now, now)
				mock.ExpectQuery(`INSERT INTO webhooks \(id,workflow_id,path,provider,provider_config,is_active\) VALUES`).
					WithArgs(sqlmock.AnyArg(), "wf-1", "gh-hook", "github", `{"secret":"s3cr3t"}`, true).
					WillReturnRows(rows)
			},
		},
		{
			name: "duplicate path",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO webhooks`).WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: ErrDuplicateKey,
		},
		{
			name: "unknown workflow",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO webhooks`).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			expectedErr: ErrForeignKeyViolation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			test.setup(mock)

			created, err := s.InsertWebhook(context.Background(), hook)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v, got %v", test.expectedErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if created.ID != "wh-new" {
					t.Errorf("expected id wh-new, got %s", created.ID)
				}
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_UpdateWebhook(t *testing.T) {
	now := time.Now().UTC()
	active := false

	tests := []struct {
		name        string
		patch       types.WebhookPatch
		setup       func(sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name:  "provider config",
			patch: types.WebhookPatch{ProviderConfig: types.ProviderConfig{"subscriptionExpiration": "2026-03-04T10:30:00Z"}},
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(webhookRowColumns).
					AddRow("wh-1", "wf-1", "p", "microsoftteams", []byte(`{"subscriptionExpiration":"2026-03-04T10:30:00Z"}`), true, now, now)
				mock.ExpectQuery(`UPDATE webhooks SET updated_at = NOW\(\), provider_config = \$1 WHERE id = \$2 RETURNING`).
					WithArgs(`{"subscriptionExpiration":"2026-03-04T10:30:00Z"}`, "wh-1").
					WillReturnRows(rows)
			},
		},
		{
			name:  "deactivate",
			patch: types.WebhookPatch{IsActive: &active},
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(webhookRowColumns).
					AddRow("wh-1", "wf-1", "p", "generic", []byte(`{}`), false, now, now)
				mock.ExpectQuery(`UPDATE webhooks SET updated_at = NOW\(\), is_active = \$1 WHERE id = \$2`).
					WithArgs(false, "wh-1").
					WillReturnRows(rows)
			},
		},
		{
			name:  "missing row",
			patch: types.WebhookPatch{IsActive: &active},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE webhooks`).WillReturnRows(sqlmock.NewRows(webhookRowColumns))
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			test.setup(mock)

			_, err := s.UpdateWebhook(context.Background(), "wh-1", test.patch)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v, got %v", test.expectedErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_DeleteWebhook(t *testing.T) {
	tests := []struct {
		name        string
		affected    int64
		expectedErr error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, expectedErr: ErrNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			mock.ExpectExec(`DELETE FROM webhooks WHERE id = \$1`).
				WithArgs("wh-1").
				WillReturnResult(sqlmock.NewResult(0, test.affected))

			err := s.DeleteWebhook(context.Background(), "wh-1")

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v, got %v", test.expectedErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_ListWebhooksWithOwner(t *testing.T) {
	now := time.Now().UTC()
	s, mock := newTestStorage(t)

	columns := append(append([]string{}, webhookRowColumns...), "user_id", "workspace_id")
	rows := sqlmock.NewRows(columns).
		AddRow("wh-1", "wf-1", "a", "microsoftteams", []byte(`{}`), true, now, now, "user-1", nil).
		AddRow("wh-2", "wf-2", "b", "microsoftteams", []byte(`{}`), true, now, now, "user-2", "ws-1")

	mock.ExpectQuery(`SELECT .* FROM webhooks w JOIN workflows wf ON wf.id = w.workflow_id WHERE w.provider IN \(\$1\) AND w.is_active = \$2`).
		WithArgs("microsoftteams", true).
		WillReturnRows(rows)

	hooks, err := s.ListWebhooksWithOwner(context.Background(), types.WebhookFilter{
		Providers:  []types.Provider{types.ProviderMicrosoftTeams},
		ActiveOnly: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(hooks) != 2 {
		t.Fatalf("expected 2 webhooks, got %d", len(hooks))
	}

	if hooks[0].OwnerID != "user-1" || hooks[0].WorkspaceID != nil {
		t.Errorf("unexpected owner data for first row: %+v", hooks[0])
	}

	if hooks[1].WorkspaceID == nil || *hooks[1].WorkspaceID != "ws-1" {
		t.Errorf("expected workspace ws-1 on second row")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_GetWorkflow(t *testing.T) {
	now := time.Now().UTC()
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT id, user_id, workspace_id, name, created_at FROM workflows WHERE id = \$1`).
		WithArgs("wf-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "workspace_id", "name", "created_at"}).
			AddRow("wf-1", "user-1", "ws-9", "flow", now))

	wf, err := s.GetWorkflow(context.Background(), "wf-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if wf.UserID != "user-1" {
		t.Errorf("expected owner user-1, got %s", wf.UserID)
	}

	if wf.WorkspaceID == nil || *wf.WorkspaceID != "ws-9" {
		t.Errorf("expected workspace ws-9, got %v", wf.WorkspaceID)
	}
}

func TestStorage_UpdateCredentialToken(t *testing.T) {
	expiry := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	s, mock := newTestStorage(t)

	mock.ExpectExec(`UPDATE oauth_credentials SET access_token = \$1, token_type = \$2, expiry = \$3, updated_at = NOW\(\), refresh_token = \$4 WHERE id = \$5`).
		WithArgs("at-2", "Bearer", expiry, "rt-2", "cred-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.UpdateCredentialToken(context.Background(), &types.OAuthCredential{
		ID:           "cred-1",
		AccessToken:  "at-2",
		RefreshToken: "rt-2",
		TokenType:    "Bearer",
		Expiry:       expiry,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
