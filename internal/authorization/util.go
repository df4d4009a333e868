// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

// Role is a workspace-level permission role.
type Role string

const (
	RoleNone  Role = ""
	RoleRead  Role = "read"
	RoleWrite Role = "write"
	RoleAdmin Role = "admin"
)

const (
	ADMIN_RELATION  = "admin"
	WRITER_RELATION = "writer"
	READER_RELATION = "reader"

	WORKSPACE_TYPE = "workspace"
)

// roleRelations is ordered strongest first.
var roleRelations = []struct {
	relation string
	role     Role
}{
	{ADMIN_RELATION, RoleAdmin},
	{WRITER_RELATION, RoleWrite},
	{READER_RELATION, RoleRead},
}

func relationForRole(r Role) (string, bool) {
	for _, rr := range roleRelations {
		if rr.role == r {
			return rr.relation, true
		}
	}
	return "", false
}

func UserTuple(userId string) string {
	return "user:" + userId
}

func ObjectTuple(objectType, objectId string) string {
	return objectType + ":" + objectId
}

func WorkspaceTuple(workspaceId string) string {
	return ObjectTuple(WORKSPACE_TYPE, workspaceId)
}
