package types

// ProjectRole is the derived role of a user within a project. It is never
// persisted; it is recomputed from project membership on every check.
type ProjectRole string

const (
	RoleProjectOwner ProjectRole = "ProjectOwner"
	RoleTeamLeader   ProjectRole = "TeamLeader"
	RoleStakeholder  ProjectRole = "Stakeholder"
	RoleMember       ProjectRole = "Member"
	RoleViewer       ProjectRole = "Viewer"
)

// AllProjectRoles returns all roles in precedence order, highest first
func AllProjectRoles() []ProjectRole {
	return []ProjectRole{
		RoleProjectOwner,
		RoleTeamLeader,
		RoleStakeholder,
		RoleMember,
		RoleViewer,
	}
}

// CanManageRisks reports whether the role may create, modify or respond to
// risks. Only project owners and team leaders may mutate the register.
func (r ProjectRole) CanManageRisks() bool {
	return r == RoleProjectOwner || r == RoleTeamLeader
}

// String returns the string representation of the project role
func (r ProjectRole) String() string {
	return string(r)
}
