// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/webhook-service/internal/authorization"
	"github.com/canonical/webhook-service/internal/types"
)

// RoleResolverInterface looks up the role a user holds on a resource.
type RoleResolverInterface interface {
	RoleOf(ctx context.Context, userID, resourceType, resourceID string) (authorization.Role, error)
}

type GateInterface interface {
	CanAccess(ctx context.Context, principalID string, webhook *types.Webhook, workflow *types.Workflow, action Action) (bool, error)
}
