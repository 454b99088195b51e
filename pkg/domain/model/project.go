package model

import (
	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

// Team is a project team with a single leader
type Team struct {
	ID       types.TeamID
	Name     string
	LeaderID types.UserID
}

// Stakeholder is a user registered as a project stakeholder
type Stakeholder struct {
	UserID types.UserID
}

// Member is a user registered as a plain project member
type Member struct {
	UserID types.UserID
}

// Project is the membership snapshot the role resolver derives roles from.
// The engine does not own projects; this mirrors the externally supplied
// ownership, team, stakeholder and membership records.
type Project struct {
	ID           types.ProjectID
	Name         string
	OwnerID      types.UserID
	Teams        []Team
	Stakeholders []Stakeholder
	Members      []Member
}

// Clone returns a deep copy of the project
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Teams = append([]Team(nil), p.Teams...)
	clone.Stakeholders = append([]Stakeholder(nil), p.Stakeholders...)
	clone.Members = append([]Member(nil), p.Members...)
	return &clone
}

// ResolveRole derives exactly one role for the user within the project.
// Precedence is fixed, first match wins: owner, then any team's leader,
// then stakeholder, then member. The function is total: a nil project or
// empty user ID degrades to RoleViewer rather than failing.
func ResolveRole(project *Project, userID types.UserID) types.ProjectRole {
	if project == nil || userID == "" {
		return types.RoleViewer
	}

	if project.OwnerID == userID {
		return types.RoleProjectOwner
	}

	for _, team := range project.Teams {
		if team.LeaderID == userID {
			return types.RoleTeamLeader
		}
	}

	for _, s := range project.Stakeholders {
		if s.UserID == userID {
			return types.RoleStakeholder
		}
	}

	for _, m := range project.Members {
		if m.UserID == userID {
			return types.RoleMember
		}
	}

	return types.RoleViewer
}
