package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskops-lab/riskregister/pkg/domain/interfaces"
	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

// ViewUseCase builds read-only projections of a project's risk register
type ViewUseCase struct {
	repo interfaces.Repository
}

func NewViewUseCase(repo interfaces.Repository) *ViewUseCase {
	return &ViewUseCase{
		repo: repo,
	}
}

// ListRiskView retrieves a filtered, sorted projection of a project's risks
func (uc *ViewUseCase) ListRiskView(ctx context.Context, projectID types.ProjectID, key types.SortKey, order types.SortOrder, filter *model.RiskFilter) ([]*model.Risk, error) {
	risks, err := uc.repo.Risk().List(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks", goerr.V(ProjectIDKey, projectID))
	}

	return model.ProjectView(risks, key, order, filter), nil
}

// Matrix buckets a project's risks into the full 10x10 probability and
// impact grid
func (uc *ViewUseCase) Matrix(ctx context.Context, projectID types.ProjectID) (model.MatrixGrid, error) {
	risks, err := uc.repo.Risk().List(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks", goerr.V(ProjectIDKey, projectID))
	}

	return model.ClassifyMatrix(risks), nil
}

// ResolveRole reports the role a user holds within a project. An unknown
// project degrades to viewer rather than failing.
func (uc *ViewUseCase) ResolveRole(ctx context.Context, projectID types.ProjectID, userID types.UserID) (types.ProjectRole, error) {
	project, err := uc.repo.Project().Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return types.RoleViewer, nil
		}
		return "", goerr.Wrap(err, "failed to get project", goerr.V(ProjectIDKey, projectID))
	}

	return model.ResolveRole(project, userID), nil
}
