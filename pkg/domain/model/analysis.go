package model

import (
	"time"

	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

// Analysis types for the scoring ledger. AnalysisType is free-form beyond
// these two; the initial entry is always AnalysisTypeInitial.
const (
	AnalysisTypeInitial      = "Initial"
	AnalysisTypeReassessment = "Reassessment"
)

// RiskAnalysis is an append-only record of a scoring event for a risk. It
// freezes the matrix score and expected value at analysis time; later
// changes to the risk never rewrite a ledger entry.
type RiskAnalysis struct {
	ID            types.AnalysisID
	RiskID        types.RiskID
	ProjectID     types.ProjectID
	AnalysisType  string
	MatrixScore   string
	ExpectedValue float64
	CreatedBy     types.UserID
	CreatedAt     time.Time
}

// NewRiskAnalysis builds a ledger entry snapshotting the risk's current
// probability and impact. MatrixScore uses the same cell key as the matrix
// classifier so an analysis can be located on the grid it was scored in.
func NewRiskAnalysis(risk *Risk, analysisType string, createdBy types.UserID) *RiskAnalysis {
	return &RiskAnalysis{
		ID:            types.NewAnalysisID(),
		RiskID:        risk.ID,
		ProjectID:     risk.ProjectID,
		AnalysisType:  analysisType,
		MatrixScore:   MatrixKey(ProbabilityDecile(risk.Probability), risk.Impact),
		ExpectedValue: risk.Probability * float64(risk.Impact),
		CreatedBy:     createdBy,
	}
}
