// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"

	"github.com/canonical/webhook-service/internal/openfga"
)

type AuthorizerInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ValidateModel(context.Context) error

	// RoleOf returns the strongest role the user holds on the resource, RoleNone when none.
	RoleOf(ctx context.Context, userID, resourceType, resourceID string) (Role, error)
	AssignWorkspaceRole(ctx context.Context, workspaceID, userID string, role Role) error
}

type AuthzClientInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
}
