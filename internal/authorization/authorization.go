// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/openfga"
	"github.com/canonical/webhook-service/internal/tracing"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user string, relation string, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	v0AuthzModel := NewAuthorizationModelProvider("v0")
	model := *v0AuthzModel.GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) RoleOf(ctx context.Context, userID, resourceType, resourceID string) (Role, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RoleOf")
	defer span.End()

	if userID == "" || resourceID == "" {
		return RoleNone, nil
	}

	object := ObjectTuple(resourceType, resourceID)
	for _, rr := range roleRelations {
		allowed, err := a.Check(ctx, UserTuple(userID), rr.relation, object)
		if err != nil {
			a.logger.Errorf("failed to check %s relation on %s: %v", rr.relation, object, err)
			return RoleNone, fmt.Errorf("failed to resolve role on %s: %w", object, err)
		}
		if allowed {
			return rr.role, nil
		}
	}

	return RoleNone, nil
}

func (a *Authorizer) AssignWorkspaceRole(ctx context.Context, workspaceID, userID string, role Role) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignWorkspaceRole")
	defer span.End()

	relation, ok := relationForRole(role)
	if !ok {
		return fmt.Errorf("unknown role %q", role)
	}

	return a.client.WriteTuple(ctx, UserTuple(userID), relation, WorkspaceTuple(workspaceID))
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
