package types

import "github.com/google/uuid"

// ProjectID identifies the project that owns a risk register.
type ProjectID string

// String returns the string representation of ProjectID
func (p ProjectID) String() string {
	return string(p)
}

// UserID identifies a user as supplied by the external auth layer.
type UserID string

// String returns the string representation of UserID
func (u UserID) String() string {
	return string(u)
}

// TeamID identifies a team within a project.
type TeamID string

// String returns the string representation of TeamID
func (t TeamID) String() string {
	return string(t)
}

// RiskID is a UUID-based identifier for Risk
type RiskID string

// NewRiskID generates a new UUID v4 RiskID
func NewRiskID() RiskID {
	return RiskID(uuid.New().String())
}

// String returns the string representation of RiskID
func (r RiskID) String() string {
	return string(r)
}

// AnalysisID is a UUID-based identifier for RiskAnalysis
type AnalysisID string

// NewAnalysisID generates a new UUID v4 AnalysisID
func NewAnalysisID() AnalysisID {
	return AnalysisID(uuid.New().String())
}

// String returns the string representation of AnalysisID
func (a AnalysisID) String() string {
	return string(a)
}

// PlanID is a UUID-based identifier for RiskResponsePlan
type PlanID string

// NewPlanID generates a new UUID v4 PlanID
func NewPlanID() PlanID {
	return PlanID(uuid.New().String())
}

// String returns the string representation of PlanID
func (p PlanID) String() string {
	return string(p)
}
