package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
	"github.com/taskops-lab/riskregister/pkg/repository/memory"
	"github.com/taskops-lab/riskregister/pkg/usecase"
)

func TestViewUseCase_ListRiskView(t *testing.T) {
	repo := memory.New()
	setupProject(t, repo)
	uc := usecase.New(repo)
	ctx := context.Background()

	inputs := []usecase.CreateRiskInput{
		{Name: "low risk", Category: types.CategoryCost, Probability: 0.25, Impact: 2, OwnerID: "member"},
		{Name: "critical risk", Category: types.CategoryTechnical, Probability: 1.0, Impact: 9, OwnerID: "member"},
		{Name: "medium risk", Category: types.CategoryTechnical, Probability: 0.5, Impact: 7, OwnerID: "member"},
	}
	for _, input := range inputs {
		_, err := uc.Risk.CreateRisk(ctx, testProjectID, types.UserID("owner"), input)
		gt.NoError(t, err).Required()
	}

	t.Run("default view is severity descending", func(t *testing.T) {
		view, err := uc.View.ListRiskView(ctx, testProjectID, "", "", nil)
		gt.NoError(t, err).Required()
		gt.Array(t, view).Length(3)
		gt.Value(t, view[0].Name).Equal("critical risk")
		gt.Value(t, view[2].Name).Equal("low risk")
	})

	t.Run("category filter narrows the view", func(t *testing.T) {
		view, err := uc.View.ListRiskView(ctx, testProjectID, "", "", &model.RiskFilter{
			Category: types.CategoryTechnical,
		})
		gt.NoError(t, err).Required()
		gt.Array(t, view).Length(2)
	})
}

func TestViewUseCase_Matrix(t *testing.T) {
	repo := memory.New()
	setupProject(t, repo)
	uc := usecase.New(repo)
	ctx := context.Background()

	input := validInput()
	input.Probability = 0.5
	input.Impact = 6
	created, err := uc.Risk.CreateRisk(ctx, testProjectID, types.UserID("owner"), input)
	gt.NoError(t, err).Required()

	grid, err := uc.View.Matrix(ctx, testProjectID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(grid)).Equal(100)

	cell := grid.Cell(5, 6)
	gt.Array(t, cell).Length(1)
	gt.Value(t, cell[0].ID).Equal(created.ID)
}

func TestViewUseCase_ResolveRole(t *testing.T) {
	repo := memory.New()
	setupProject(t, repo)
	uc := usecase.New(repo)
	ctx := context.Background()

	role, err := uc.View.ResolveRole(ctx, testProjectID, types.UserID("leader"))
	gt.NoError(t, err).Required()
	gt.Value(t, role).Equal(types.RoleTeamLeader)

	// Unknown project degrades to viewer instead of failing
	role, err = uc.View.ResolveRole(ctx, types.ProjectID("missing"), types.UserID("owner"))
	gt.NoError(t, err).Required()
	gt.Value(t, role).Equal(types.RoleViewer)
}
