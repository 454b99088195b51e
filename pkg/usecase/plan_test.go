package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
	"github.com/taskops-lab/riskregister/pkg/repository/memory"
	"github.com/taskops-lab/riskregister/pkg/usecase"
)

func TestPlanUseCase_CreatePlan(t *testing.T) {
	t.Run("creates plan with defaulted status", func(t *testing.T) {
		repo := memory.New()
		setupProject(t, repo)
		uc := usecase.New(repo)
		ctx := context.Background()

		risk, err := uc.Risk.CreateRisk(ctx, testProjectID, types.UserID("owner"), validInput())
		gt.NoError(t, err).Required()

		created, err := uc.Plan.CreatePlan(ctx, testProjectID, types.UserID("leader"), risk.ID, usecase.CreatePlanInput{
			Strategy:       types.StrategyMitigate,
			Description:    "add circuit breaker",
			PlannedActions: "wrap vendor calls, add retry budget",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.Status).Equal(types.PlanStatusPlanned)
		gt.Value(t, created.CreatedBy).Equal(types.UserID("leader"))
		gt.Value(t, created.RiskID).Equal(risk.ID)
		gt.Value(t, created.ProjectID).Equal(testProjectID)
	})

	t.Run("rejects plan for missing risk", func(t *testing.T) {
		repo := memory.New()
		setupProject(t, repo)
		uc := usecase.New(repo)

		_, err := uc.Plan.CreatePlan(context.Background(), testProjectID, types.UserID("owner"), types.NewRiskID(), usecase.CreatePlanInput{
			Strategy: types.StrategyAccept,
		})
		gt.B(t, errors.Is(err, usecase.ErrNotFound)).True()
	})

	t.Run("rejects unknown strategy", func(t *testing.T) {
		repo := memory.New()
		setupProject(t, repo)
		uc := usecase.New(repo)
		ctx := context.Background()

		risk, err := uc.Risk.CreateRisk(ctx, testProjectID, types.UserID("owner"), validInput())
		gt.NoError(t, err).Required()

		_, err = uc.Plan.CreatePlan(ctx, testProjectID, types.UserID("owner"), risk.ID, usecase.CreatePlanInput{
			Strategy: types.ResponseStrategy("Ignore"),
		})
		gt.B(t, errors.Is(err, usecase.ErrValidation)).True()
	})

	t.Run("member may not create plans", func(t *testing.T) {
		repo := memory.New()
		setupProject(t, repo)
		uc := usecase.New(repo)
		ctx := context.Background()

		risk, err := uc.Risk.CreateRisk(ctx, testProjectID, types.UserID("owner"), validInput())
		gt.NoError(t, err).Required()

		_, err = uc.Plan.CreatePlan(ctx, testProjectID, types.UserID("member"), risk.ID, usecase.CreatePlanInput{
			Strategy: types.StrategyMitigate,
		})
		gt.B(t, errors.Is(err, usecase.ErrPermissionDenied)).True()
	})
}

func TestPlanUseCase_UpdatePlan(t *testing.T) {
	t.Run("advances plan status", func(t *testing.T) {
		repo := memory.New()
		setupProject(t, repo)
		uc := usecase.New(repo)
		ctx := context.Background()

		risk, err := uc.Risk.CreateRisk(ctx, testProjectID, types.UserID("owner"), validInput())
		gt.NoError(t, err).Required()

		plan, err := uc.Plan.CreatePlan(ctx, testProjectID, types.UserID("owner"), risk.ID, usecase.CreatePlanInput{
			Strategy: types.StrategyMitigate,
		})
		gt.NoError(t, err).Required()

		status := types.PlanStatusInProgress
		updated, err := uc.Plan.UpdatePlan(ctx, testProjectID, types.UserID("owner"), plan.ID, &model.PlanPatch{
			Status: &status,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.PlanStatusInProgress)
		gt.Value(t, updated.Strategy).Equal(types.StrategyMitigate)
	})

	t.Run("plan of another project is not found", func(t *testing.T) {
		repo := memory.New()
		setupProject(t, repo)
		uc := usecase.New(repo)
		ctx := context.Background()

		// Second project owned by the same user
		other := types.ProjectID("proj-2")
		gt.NoError(t, repo.Project().Put(ctx, &model.Project{
			ID:      other,
			Name:    "Other",
			OwnerID: types.UserID("owner"),
		}))

		risk, err := uc.Risk.CreateRisk(ctx, testProjectID, types.UserID("owner"), validInput())
		gt.NoError(t, err).Required()

		plan, err := uc.Plan.CreatePlan(ctx, testProjectID, types.UserID("owner"), risk.ID, usecase.CreatePlanInput{
			Strategy: types.StrategyAvoid,
		})
		gt.NoError(t, err).Required()

		description := "cross-project access"
		_, err = uc.Plan.UpdatePlan(ctx, other, types.UserID("owner"), plan.ID, &model.PlanPatch{
			Description: &description,
		})
		gt.B(t, errors.Is(err, usecase.ErrNotFound)).True()
	})
}
