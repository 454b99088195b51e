package interfaces

import (
	"context"

	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

type AnalysisRepository interface {
	// Create appends an analysis record to the ledger
	Create(ctx context.Context, analysis *model.RiskAnalysis) (*model.RiskAnalysis, error)

	// Get retrieves an analysis by ID
	Get(ctx context.Context, id types.AnalysisID) (*model.RiskAnalysis, error)

	// ListByRisk retrieves all analyses of a risk in creation order,
	// including those of soft-deleted risks
	ListByRisk(ctx context.Context, riskID types.RiskID) ([]*model.RiskAnalysis, error)
}
