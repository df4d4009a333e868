// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/webhook-service/internal/authorization"
	"github.com/canonical/webhook-service/internal/logging"
	"github.com/canonical/webhook-service/internal/monitoring"
	"github.com/canonical/webhook-service/internal/tracing"
	"github.com/canonical/webhook-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_interfaces.go -source=./interfaces.go

func newTestGate(ctrl *gomock.Controller) (*Gate, *MockRoleResolverInterface) {
	roles := NewMockRoleResolverInterface(ctrl)
	logger := logging.NewNoopLogger()
	return NewGate(roles, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), roles
}

func TestGate_CanAccess(t *testing.T) {
	workspace := "ws-1"
	hook := &types.Webhook{ID: "wh-1", WorkflowID: "wf-1"}
	personal := &types.Workflow{ID: "wf-1", UserID: "owner"}
	shared := &types.Workflow{ID: "wf-1", UserID: "owner", WorkspaceID: &workspace}

	tests := []struct {
		name       string
		principal  string
		workflow   *types.Workflow
		action     Action
		role       *authorization.Role
		roleErr    error
		expected   bool
		expectsErr bool
	}{
		{name: "owner reads", principal: "owner", workflow: personal, action: ActionRead, expected: true},
		{name: "owner deletes", principal: "owner", workflow: shared, action: ActionDelete, expected: true},
		{name: "stranger on personal workflow", principal: "other", workflow: personal, action: ActionRead, expected: false},
		{name: "empty principal", principal: "", workflow: personal, action: ActionRead, expected: false},
		{name: "reader reads", principal: "other", workflow: shared, action: ActionRead, role: rolePtr(authorization.RoleRead), expected: true},
		{name: "reader cannot modify", principal: "other", workflow: shared, action: ActionModify, role: rolePtr(authorization.RoleRead), expected: false},
		{name: "reader cannot delete", principal: "other", workflow: shared, action: ActionDelete, role: rolePtr(authorization.RoleRead), expected: false},
		{name: "writer modifies", principal: "other", workflow: shared, action: ActionModify, role: rolePtr(authorization.RoleWrite), expected: true},
		{name: "admin deletes", principal: "other", workflow: shared, action: ActionDelete, role: rolePtr(authorization.RoleAdmin), expected: true},
		{name: "no role", principal: "other", workflow: shared, action: ActionRead, role: rolePtr(authorization.RoleNone), expected: false},
		{name: "role lookup fails", principal: "other", workflow: shared, action: ActionRead, roleErr: errors.New("openfga down"), expected: false, expectsErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			g, roles := newTestGate(ctrl)

			if test.role != nil || test.roleErr != nil {
				role := authorization.RoleNone
				if test.role != nil {
					role = *test.role
				}
				roles.EXPECT().RoleOf(gomock.Any(), test.principal, authorization.WORKSPACE_TYPE, workspace).Return(role, test.roleErr)
			}

			allowed, err := g.CanAccess(context.Background(), test.principal, hook, test.workflow, test.action)

			if test.expectsErr && err == nil {
				t.Error("expected error but got none")
			} else if !test.expectsErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if allowed != test.expected {
				t.Errorf("expected allowed=%v, got %v", test.expected, allowed)
			}
		})
	}
}

func TestGate_Monotonic(t *testing.T) {
	workspace := "ws-1"
	shared := &types.Workflow{ID: "wf-1", UserID: "owner", WorkspaceID: &workspace}
	hook := &types.Webhook{ID: "wh-1"}

	for _, role := range []authorization.Role{authorization.RoleNone, authorization.RoleRead, authorization.RoleWrite, authorization.RoleAdmin} {
		t.Run(string(role), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			g, roles := newTestGate(ctrl)
			roles.EXPECT().RoleOf(gomock.Any(), "other", authorization.WORKSPACE_TYPE, workspace).Return(role, nil).AnyTimes()

			read, _ := g.CanAccess(context.Background(), "other", hook, shared, ActionRead)
			modify, _ := g.CanAccess(context.Background(), "other", hook, shared, ActionModify)
			del, _ := g.CanAccess(context.Background(), "other", hook, shared, ActionDelete)

			if !read && (modify || del) {
				t.Errorf("role %q grants modify/delete without read", role)
			}

			if modify != del {
				t.Errorf("role %q: modify=%v but delete=%v", role, modify, del)
			}
		})
	}
}

func rolePtr(r authorization.Role) *authorization.Role {
	return &r
}
