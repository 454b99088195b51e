package interfaces

import (
	"context"

	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

type PlanRepository interface {
	// Create persists a new response plan, assigning its ID and timestamps
	Create(ctx context.Context, plan *model.RiskResponsePlan) (*model.RiskResponsePlan, error)

	// Get retrieves a response plan by ID
	Get(ctx context.Context, id types.PlanID) (*model.RiskResponsePlan, error)

	// ListByRisk retrieves all response plans of a risk in creation order,
	// including those of soft-deleted risks
	ListByRisk(ctx context.Context, riskID types.RiskID) ([]*model.RiskResponsePlan, error)

	// Update replaces an existing response plan
	Update(ctx context.Context, plan *model.RiskResponsePlan) (*model.RiskResponsePlan, error)
}
