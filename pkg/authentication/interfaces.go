// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type TokenVerifierInterface interface {
	// VerifyToken returns the subject of a valid and authorized bearer token.
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}
