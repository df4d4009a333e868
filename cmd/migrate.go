// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/webhook-service/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long:  `Apply, roll back or inspect the webhook schema migrations, the DSN falls back to the DSN environment variable`,
	Args:  migrateArgs,
	Run: func(cmd *cobra.Command, args []string) {
		command, version := "up", int64(-1)
		if len(args) > 0 {
			command = args[0]
		}
		if len(args) > 1 {
			version, _ = strconv.ParseInt(args[1], 10, 64)
		}

		dsn, _ := cmd.Flags().GetString("dsn")
		if dsn == "" {
			dsn = os.Getenv("DSN")
		}
		format, _ := cmd.Flags().GetString("format")

		if err := migrate(cmd.Context(), cmd.OutOrStdout(), dsn, command, format, version); err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}
	},
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	if !slices.Contains([]string{"up", "down", "status", "check"}, args[0]) {
		return fmt.Errorf("invalid migrate command %q", args[0])
	}

	if len(args) == 2 {
		if args[0] != "down" {
			return fmt.Errorf("only down accepts a target version, got %q", args)
		}
		if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
			return fmt.Errorf("invalid version number %q", args[1])
		}
	}

	return nil
}

func migrate(ctx context.Context, out io.Writer, dsn, command, format string, version int64) error {
	if dsn == "" {
		return errors.New("a DSN is required, use --dsn or the DSN environment variable")
	}

	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("invalid DSN: %w", err)
	}

	db := stdlib.OpenDB(*cfg)
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	var opts []goose.ProviderOption
	if format == "json" {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		return reportApplied(out, format, results, err)
	case "down":
		if version < 0 {
			result, err := provider.Down(ctx)
			if err != nil {
				return err
			}
			return reportApplied(out, format, []*goose.MigrationResult{result}, nil)
		}
		results, err := provider.DownTo(ctx, version)
		return reportApplied(out, format, results, err)
	case "status":
		return reportStatus(ctx, out, format, provider)
	default:
		return reportPending(ctx, out, format, provider)
	}
}

func reportApplied(out io.Writer, format string, results []*goose.MigrationResult, err error) error {
	if err != nil {
		return err
	}

	if results == nil {
		results = []*goose.MigrationResult{}
	}

	if format == "json" {
		return json.NewEncoder(out).Encode(map[string]any{"applied": results})
	}

	for _, r := range results {
		fmt.Fprintf(out, "%-8s %s (%s)\n", r.Direction, r.Source.Path, r.Duration)
	}
	return nil
}

func reportStatus(ctx context.Context, out io.Writer, format string, provider *goose.Provider) error {
	statuses, err := provider.Status(ctx)
	if err != nil {
		return err
	}

	if format == "json" {
		return json.NewEncoder(out).Encode(statuses)
	}

	fmt.Fprintln(out, "    Applied At                  Migration")
	fmt.Fprintln(out, "    =======================================")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(out, "    %-24s -- %s\n", appliedAt, s.Source.Path)
	}
	return nil
}

// reportPending fails when migrations are outstanding so it can gate deployments.
func reportPending(ctx context.Context, out io.Writer, format string, provider *goose.Provider) error {
	pending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, versionErr := provider.GetDBVersion(ctx)

	state := "ok"
	switch {
	case pending:
		state = "pending"
	case versionErr != nil:
		state = "unknown"
	}

	if format == "json" {
		return json.NewEncoder(out).Encode(map[string]any{"status": state, "version": current})
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	fmt.Fprintf(out, "Database is up to date (version %d)\n", current)
	return nil
}
