package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

// Risk is a single identified project risk. Severity is derived from
// Probability and Impact via ComputeSeverity and is never set directly by a
// caller; Revision is a version token incremented by every repository
// update and used for compare-and-swap writes.
type Risk struct {
	ID           types.RiskID
	ProjectID    types.ProjectID
	Name         string
	Description  string
	Category     types.RiskCategory
	Probability  float64
	Impact       int
	Severity     float64
	Status       types.RiskStatus
	IdentifiedAt time.Time
	OwnerID      types.UserID
	Deleted      bool
	Revision     int64
	UpdatedAt    time.Time
}

// Validate checks the closed shape of a risk record. It does not verify the
// severity derivation; that is owned by ComputeSeverity.
func (r *Risk) Validate() error {
	if r.ProjectID == "" {
		return goerr.New("risk project ID is required")
	}
	if r.Name == "" {
		return goerr.New("risk name is required")
	}
	if !r.Category.IsValid() {
		return goerr.New("invalid risk category", goerr.V("category", r.Category))
	}
	if !r.Status.IsValid() {
		return goerr.New("invalid risk status", goerr.V("status", r.Status))
	}
	if r.Probability <= 0 || r.Probability > 1 {
		return goerr.Wrap(ErrInvalidProbability, "invalid probability", goerr.V("probability", r.Probability))
	}
	if r.Impact < 1 || r.Impact > 10 {
		return goerr.Wrap(ErrInvalidImpact, "invalid impact", goerr.V("impact", r.Impact))
	}
	return nil
}

// Clone returns a deep copy of the risk
func (r *Risk) Clone() *Risk {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

// RiskPatch carries a partial update to a risk. Nil fields are untouched.
type RiskPatch struct {
	Name        *string
	Description *string
	Category    *types.RiskCategory
	Probability *float64
	Impact      *int
	Status      *types.RiskStatus
	OwnerID     *types.UserID
}

// TouchesScore reports whether applying the patch changes the inputs of the
// severity derivation, requiring severity to be recomputed in the same write.
func (p *RiskPatch) TouchesScore() bool {
	return p.Probability != nil || p.Impact != nil
}
