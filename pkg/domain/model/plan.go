package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

// RiskResponsePlan is a planned mitigation or response for a risk. Plans
// are created and updated independently of the risk record itself and
// survive a soft delete of the owning risk as historical record.
type RiskResponsePlan struct {
	ID             types.PlanID
	RiskID         types.RiskID
	ProjectID      types.ProjectID
	Strategy       types.ResponseStrategy
	Description    string
	PlannedActions string
	Status         types.PlanStatus
	CreatedBy      types.UserID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks the closed shape of a response plan record
func (p *RiskResponsePlan) Validate() error {
	if p.RiskID == "" {
		return goerr.New("plan risk ID is required")
	}
	if p.ProjectID == "" {
		return goerr.New("plan project ID is required")
	}
	if !p.Strategy.IsValid() {
		return goerr.New("invalid response strategy", goerr.V("strategy", p.Strategy))
	}
	if !p.Status.IsValid() {
		return goerr.New("invalid plan status", goerr.V("status", p.Status))
	}
	return nil
}

// Clone returns a deep copy of the plan
func (p *RiskResponsePlan) Clone() *RiskResponsePlan {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

// PlanPatch carries a partial update to a response plan. Nil fields are
// untouched.
type PlanPatch struct {
	Strategy       *types.ResponseStrategy
	Description    *string
	PlannedActions *string
	Status         *types.PlanStatus
}
