// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package oauth

import (
	"context"

	"github.com/canonical/webhook-service/internal/types"
)

// CredentialStoreInterface is the subset of storage the token provider needs.
type CredentialStoreInterface interface {
	GetCredential(ctx context.Context, id string) (*types.OAuthCredential, error)
	UpdateCredentialToken(ctx context.Context, c *types.OAuthCredential) error
}

type TokenProviderInterface interface {
	GetValidAccessToken(ctx context.Context, credentialID, userID, purpose string) (string, error)
}
