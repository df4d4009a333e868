// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/webhook-service/internal/config"
	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
)

var renewCmd = &cobra.Command{
	Use:   "renew",
	Short: "Run a single renewal pass",
	Long:  `Renew every time limited provider subscription expiring within the window and print the summary as JSON`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := renew(cmd); err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(renewCmd)
}

func renew(cmd *cobra.Command) error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %w", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor(serviceName, logger)

	app, err := buildComponents(cmd.Context(), specs, tracer, monitor, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	summary, err := app.scheduler.RunOnce(cmd.Context())
	if err != nil {
		return fmt.Errorf("renewal pass failed: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
