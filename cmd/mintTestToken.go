// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/pkg/testtoken"
)

// tokenSpec only needs the signing secret, no database is touched.
type tokenSpec struct {
	TestTokenSecret string `envconfig:"test_token_secret" required:"true"`
}

var mintTestTokenCmd = &cobra.Command{
	Use:   "mint-test-token",
	Short: "Mint a test token for a webhook",
	Long:  `Mint a signed token that lets deliveries reach the webhook while it is inactive, the secret is read from TEST_TOKEN_SECRET`,
	Run: func(cmd *cobra.Command, args []string) {
		webhookID, _ := cmd.Flags().GetString("webhook-id")
		ttl, _ := cmd.Flags().GetDuration("ttl")
		format, _ := cmd.Flags().GetString("format")

		if err := mintTestToken(cmd, webhookID, ttl, format); err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}
	},
}

func init() {
	mintTestTokenCmd.Flags().String("webhook-id", "", "Webhook the token is valid for")
	mintTestTokenCmd.Flags().Duration("ttl", testtoken.DefaultTTL, "Token lifetime, clamped between 1m and 720h")
	mintTestTokenCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")
	_ = mintTestTokenCmd.MarkFlagRequired("webhook-id")

	rootCmd.AddCommand(mintTestTokenCmd)
}

func mintTestToken(cmd *cobra.Command, webhookID string, ttl time.Duration, format string) error {
	specs := new(tokenSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %w", err)
	}

	logger := logging.NewNoopLogger()
	tokens := testtoken.NewService([]byte(specs.TestTokenSecret), time.Now, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(serviceName, logger), logger)

	token, expiresAt, err := tokens.Mint(cmd.Context(), webhookID, ttl)
	if err != nil {
		return err
	}

	if format == "json" {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"token":     token,
			"webhookId": webhookID,
			"expiresAt": expiresAt,
		})
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
