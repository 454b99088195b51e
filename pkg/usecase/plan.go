package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskops-lab/riskregister/pkg/domain/interfaces"
	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

type PlanUseCase struct {
	repo interfaces.Repository
}

func NewPlanUseCase(repo interfaces.Repository) *PlanUseCase {
	return &PlanUseCase{
		repo: repo,
	}
}

// CreatePlanInput carries the caller-supplied fields of a new response plan
type CreatePlanInput struct {
	Strategy       types.ResponseStrategy
	Description    string
	PlannedActions string
	Status         types.PlanStatus
}

// CreatePlan attaches a new response plan to an existing risk
func (uc *PlanUseCase) CreatePlan(ctx context.Context, projectID types.ProjectID, actor types.UserID, riskID types.RiskID, input CreatePlanInput) (*model.RiskResponsePlan, error) {
	if err := authorizeMutation(ctx, uc.repo, projectID, actor); err != nil {
		return nil, err
	}

	// The risk must exist and not be deleted to accept new plans
	if _, err := uc.repo.Risk().Get(ctx, projectID, riskID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrNotFound, "risk not found",
				goerr.V(ProjectIDKey, projectID), goerr.V(RiskIDKey, riskID))
		}
		return nil, goerr.Wrap(err, "failed to get risk", goerr.V(RiskIDKey, riskID))
	}

	plan := &model.RiskResponsePlan{
		RiskID:         riskID,
		ProjectID:      projectID,
		Strategy:       input.Strategy,
		Description:    input.Description,
		PlannedActions: input.PlannedActions,
		Status:         input.Status.Normalize(),
		CreatedBy:      actor,
	}
	if err := plan.Validate(); err != nil {
		return nil, goerr.Wrap(ErrValidation, "invalid plan",
			goerr.V("cause", err), goerr.V(RiskIDKey, riskID))
	}

	created, err := uc.repo.Plan().Create(ctx, plan)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create plan", goerr.V(RiskIDKey, riskID))
	}

	return created, nil
}

// GetPlan retrieves a response plan scoped to a project
func (uc *PlanUseCase) GetPlan(ctx context.Context, projectID types.ProjectID, id types.PlanID) (*model.RiskResponsePlan, error) {
	plan, err := uc.repo.Plan().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrNotFound, "plan not found", goerr.V(PlanIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get plan", goerr.V(PlanIDKey, id))
	}
	if plan.ProjectID != projectID {
		return nil, goerr.Wrap(ErrNotFound, "plan not found",
			goerr.V(ProjectIDKey, projectID), goerr.V(PlanIDKey, id))
	}
	return plan, nil
}

// ListPlans retrieves a risk's response plans in creation order. Plans stay
// readable after the risk is soft-deleted.
func (uc *PlanUseCase) ListPlans(ctx context.Context, riskID types.RiskID) ([]*model.RiskResponsePlan, error) {
	plans, err := uc.repo.Plan().ListByRisk(ctx, riskID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list plans", goerr.V(RiskIDKey, riskID))
	}
	return plans, nil
}

// UpdatePlan applies a partial update to a response plan
func (uc *PlanUseCase) UpdatePlan(ctx context.Context, projectID types.ProjectID, actor types.UserID, id types.PlanID, patch *model.PlanPatch) (*model.RiskResponsePlan, error) {
	if err := authorizeMutation(ctx, uc.repo, projectID, actor); err != nil {
		return nil, err
	}

	plan, err := uc.GetPlan(ctx, projectID, id)
	if err != nil {
		return nil, err
	}

	if patch.Strategy != nil {
		plan.Strategy = *patch.Strategy
	}
	if patch.Description != nil {
		plan.Description = *patch.Description
	}
	if patch.PlannedActions != nil {
		plan.PlannedActions = *patch.PlannedActions
	}
	if patch.Status != nil {
		plan.Status = *patch.Status
	}

	if err := plan.Validate(); err != nil {
		return nil, goerr.Wrap(ErrValidation, "invalid plan",
			goerr.V("cause", err), goerr.V(PlanIDKey, id))
	}

	updated, err := uc.repo.Plan().Update(ctx, plan)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrNotFound, "plan not found", goerr.V(PlanIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to update plan", goerr.V(PlanIDKey, id))
	}

	return updated, nil
}
