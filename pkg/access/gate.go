// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"fmt"

	"github.com/canonical/webhook-service/internal/authorization"
	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/types"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionModify Action = "modify"
	ActionDelete Action = "delete"
)

var _ GateInterface = (*Gate)(nil)

// Gate decides whether a principal may act on a webhook through its owning workflow.
type Gate struct {
	roles RoleResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CanAccess grants everything to the workflow owner, otherwise falls back to the workspace role.
// A role lookup error denies and is returned to the caller.
func (g *Gate) CanAccess(ctx context.Context, principalID string, webhook *types.Webhook, workflow *types.Workflow, action Action) (bool, error) {
	ctx, span := g.tracer.Start(ctx, "access.Gate.CanAccess")
	defer span.End()

	if principalID == "" || workflow == nil {
		return false, nil
	}

	if workflow.UserID == principalID {
		return true, nil
	}

	if workflow.WorkspaceID == nil || *workflow.WorkspaceID == "" {
		g.deny(principalID, webhook, workflow, action)
		return false, nil
	}

	role, err := g.roles.RoleOf(ctx, principalID, authorization.WORKSPACE_TYPE, *workflow.WorkspaceID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve workspace role: %w", err)
	}

	if allows(role, action) {
		return true, nil
	}

	g.deny(principalID, webhook, workflow, action)
	return false, nil
}

func (g *Gate) deny(principalID string, webhook *types.Webhook, workflow *types.Workflow, action Action) {
	if webhook != nil {
		g.logger.Security().AuthzFailureWebhookAccess(principalID, webhook.ID, string(action))
		return
	}
	g.logger.Security().AuthzFailure(principalID, "workflow:"+workflow.ID)
}

func allows(role authorization.Role, action Action) bool {
	switch action {
	case ActionRead:
		return role != authorization.RoleNone
	case ActionModify, ActionDelete:
		return role == authorization.RoleWrite || role == authorization.RoleAdmin
	default:
		return false
	}
}

func NewGate(roles RoleResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Gate {
	g := new(Gate)

	g.roles = roles

	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}
