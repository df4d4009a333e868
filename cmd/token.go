// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an API access token using the client credentials flow",
	Run: func(cmd *cobra.Command, args []string) {
		clientID, _ := cmd.Flags().GetString("client-id")
		clientSecret, _ := cmd.Flags().GetString("client-secret")
		tokenURL, _ := cmd.Flags().GetString("token-url")
		issuerURL, _ := cmd.Flags().GetString("issuer-url")
		scopes, _ := cmd.Flags().GetStringSlice("scopes")
		format, _ := cmd.Flags().GetString("format")

		if err := clientToken(cmd, clientID, clientSecret, tokenURL, issuerURL, scopes, format); err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().String("client-id", "", "Client ID")
	tokenCmd.Flags().String("client-secret", "", "Client Secret")
	tokenCmd.Flags().String("token-url", "", "Token URL")
	tokenCmd.Flags().String("issuer-url", "", "Issuer URL (for OIDC discovery)")
	tokenCmd.Flags().StringSlice("scopes", []string{}, "Scopes (comma-separated)")
	tokenCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	_ = tokenCmd.MarkFlagRequired("client-id")
	_ = tokenCmd.MarkFlagRequired("client-secret")
}

func clientToken(cmd *cobra.Command, clientID, clientSecret, tokenURL, issuerURL string, scopes []string, format string) error {
	ctx := cmd.Context()

	if tokenURL == "" {
		discovered, err := discoverTokenURL(ctx, issuerURL)
		if err != nil {
			return err
		}
		tokenURL = discovered
	}

	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		Scopes:       scopes,
	}

	token, err := cfg.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to get token: %w", err)
	}

	if format == "json" {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"access_token": token.AccessToken,
			"token_type":   token.TokenType,
			"expiry":       token.Expiry,
		})
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
	return err
}

func discoverTokenURL(ctx context.Context, issuerURL string) (string, error) {
	if issuerURL == "" {
		return "", errors.New("either --token-url or --issuer-url must be provided")
	}

	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return "", fmt.Errorf("failed to discover issuer %s: %w", issuerURL, err)
	}

	return provider.Endpoint().TokenURL, nil
}
