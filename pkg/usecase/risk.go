package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskops-lab/riskregister/pkg/domain/interfaces"
	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

type RiskUseCase struct {
	repo interfaces.Repository
}

func NewRiskUseCase(repo interfaces.Repository) *RiskUseCase {
	return &RiskUseCase{
		repo: repo,
	}
}

// CreateRiskInput carries the caller-supplied fields of a new risk
type CreateRiskInput struct {
	Name         string
	Description  string
	Category     types.RiskCategory
	Probability  float64
	Impact       int
	Status       types.RiskStatus
	IdentifiedAt time.Time
	OwnerID      types.UserID
}

// RiskDetail is a risk with its full analysis ledger and response plans
type RiskDetail struct {
	Risk     *model.Risk
	Analyses []*model.RiskAnalysis
	Plans    []*model.RiskResponsePlan
}

// authorizeMutation resolves the actor's role within the project and checks
// it may change the register. A missing project degrades to viewer, which is
// always denied.
func authorizeMutation(ctx context.Context, repo interfaces.Repository, projectID types.ProjectID, actor types.UserID) error {
	project, err := repo.Project().Get(ctx, projectID)
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return goerr.Wrap(err, "failed to get project", goerr.V(ProjectIDKey, projectID))
	}

	role := model.ResolveRole(project, actor)
	if !role.CanManageRisks() {
		return goerr.Wrap(ErrPermissionDenied, "role may not modify the risk register",
			goerr.V(ProjectIDKey, projectID),
			goerr.V("actor", actor),
			goerr.V("role", role))
	}
	return nil
}

// CreateRisk validates and persists a new risk, then appends the initial
// analysis to its ledger. If the analysis write fails the risk is rolled
// back; a rollback failure surfaces as ErrPartialFailure because the risk
// then exists without its initial analysis.
func (uc *RiskUseCase) CreateRisk(ctx context.Context, projectID types.ProjectID, actor types.UserID, input CreateRiskInput) (*model.Risk, error) {
	if err := authorizeMutation(ctx, uc.repo, projectID, actor); err != nil {
		return nil, err
	}

	severity, err := model.ComputeSeverity(input.Probability, input.Impact)
	if err != nil {
		return nil, goerr.Wrap(ErrValidation, "invalid risk score",
			goerr.V("cause", err), goerr.V(ProjectIDKey, projectID))
	}

	// A risk without an explicit owner belongs to whoever registered it
	if input.OwnerID == "" {
		input.OwnerID = actor
	}

	risk := &model.Risk{
		ProjectID:    projectID,
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		Probability:  input.Probability,
		Impact:       input.Impact,
		Severity:     severity.Score,
		Status:       input.Status.Normalize(),
		IdentifiedAt: input.IdentifiedAt,
		OwnerID:      input.OwnerID,
	}
	if err := risk.Validate(); err != nil {
		return nil, goerr.Wrap(ErrValidation, "invalid risk",
			goerr.V("cause", err), goerr.V(ProjectIDKey, projectID))
	}

	created, err := uc.repo.Risk().Create(ctx, risk)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create risk", goerr.V(ProjectIDKey, projectID))
	}

	analysis := model.NewRiskAnalysis(created, model.AnalysisTypeInitial, actor)
	if _, err := uc.repo.Analysis().Create(ctx, analysis); err != nil {
		// Rollback: remove the risk so the register never holds a risk
		// without its initial analysis
		if delErr := uc.repo.Risk().SoftDelete(ctx, projectID, created.ID); delErr != nil {
			return nil, goerr.Wrap(ErrPartialFailure, "risk created but initial analysis failed, and rollback failed",
				goerr.V("cause", err),
				goerr.V("rollback_error", delErr),
				goerr.V(RiskIDKey, created.ID))
		}
		return nil, goerr.Wrap(err, "failed to create initial analysis, risk rolled back",
			goerr.V(RiskIDKey, created.ID))
	}

	return created, nil
}

// GetRisk retrieves a single non-deleted risk
func (uc *RiskUseCase) GetRisk(ctx context.Context, projectID types.ProjectID, id types.RiskID) (*model.Risk, error) {
	risk, err := uc.repo.Risk().Get(ctx, projectID, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrNotFound, "risk not found",
				goerr.V(ProjectIDKey, projectID), goerr.V(RiskIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get risk", goerr.V(RiskIDKey, id))
	}
	return risk, nil
}

// ListRisks retrieves all non-deleted risks of a project in creation order
func (uc *RiskUseCase) ListRisks(ctx context.Context, projectID types.ProjectID) ([]*model.Risk, error) {
	risks, err := uc.repo.Risk().List(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks", goerr.V(ProjectIDKey, projectID))
	}
	return risks, nil
}

// GetRiskDetail retrieves a risk with its analysis ledger and response
// plans. The children are fetched concurrently.
func (uc *RiskUseCase) GetRiskDetail(ctx context.Context, projectID types.ProjectID, id types.RiskID) (*RiskDetail, error) {
	risk, err := uc.GetRisk(ctx, projectID, id)
	if err != nil {
		return nil, err
	}

	detail := &RiskDetail{Risk: risk}
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		analyses, err := uc.repo.Analysis().ListByRisk(ctx, id)
		if err != nil {
			return goerr.Wrap(err, "failed to list analyses", goerr.V(RiskIDKey, id))
		}
		detail.Analyses = analyses
		return nil
	})
	eg.Go(func() error {
		plans, err := uc.repo.Plan().ListByRisk(ctx, id)
		if err != nil {
			return goerr.Wrap(err, "failed to list plans", goerr.V(RiskIDKey, id))
		}
		detail.Plans = plans
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

// UpdateRisk applies a partial update under a compare-and-swap on revision.
// A patch touching probability or impact recomputes severity in the same
// write; a status change must follow the lifecycle graph.
func (uc *RiskUseCase) UpdateRisk(ctx context.Context, projectID types.ProjectID, actor types.UserID, id types.RiskID, revision int64, patch *model.RiskPatch) (*model.Risk, error) {
	if err := authorizeMutation(ctx, uc.repo, projectID, actor); err != nil {
		return nil, err
	}

	risk, err := uc.GetRisk(ctx, projectID, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		risk.Name = *patch.Name
	}
	if patch.Description != nil {
		risk.Description = *patch.Description
	}
	if patch.Category != nil {
		risk.Category = *patch.Category
	}
	if patch.Probability != nil {
		risk.Probability = *patch.Probability
	}
	if patch.Impact != nil {
		risk.Impact = *patch.Impact
	}
	if patch.OwnerID != nil {
		risk.OwnerID = *patch.OwnerID
	}
	if patch.Status != nil {
		next := *patch.Status
		if !risk.Status.CanTransitionTo(next) {
			return nil, goerr.Wrap(ErrInvalidTransition, "status transition not allowed",
				goerr.V(RiskIDKey, id),
				goerr.V("from", risk.Status),
				goerr.V("to", next))
		}
		risk.Status = next
	}

	if patch.TouchesScore() {
		severity, err := model.ComputeSeverity(risk.Probability, risk.Impact)
		if err != nil {
			return nil, goerr.Wrap(ErrValidation, "invalid risk score",
				goerr.V("cause", err), goerr.V(RiskIDKey, id))
		}
		risk.Severity = severity.Score
	}

	if err := risk.Validate(); err != nil {
		return nil, goerr.Wrap(ErrValidation, "invalid risk",
			goerr.V("cause", err), goerr.V(RiskIDKey, id))
	}

	risk.Revision = revision
	updated, err := uc.repo.Risk().Update(ctx, risk)
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrRevisionMismatch):
			return nil, goerr.Wrap(ErrConflict, "risk was updated concurrently", goerr.V(RiskIDKey, id))
		case errors.Is(err, interfaces.ErrNotFound):
			return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V(RiskIDKey, id))
		default:
			return nil, goerr.Wrap(err, "failed to update risk", goerr.V(RiskIDKey, id))
		}
	}

	return updated, nil
}

// RecordReassessment appends an analysis entry freezing the risk's current
// probability and impact into the ledger. An empty analysisType defaults to
// a reassessment.
func (uc *RiskUseCase) RecordReassessment(ctx context.Context, projectID types.ProjectID, actor types.UserID, id types.RiskID, analysisType string) (*model.RiskAnalysis, error) {
	if err := authorizeMutation(ctx, uc.repo, projectID, actor); err != nil {
		return nil, err
	}
	if analysisType == "" {
		analysisType = model.AnalysisTypeReassessment
	}

	risk, err := uc.GetRisk(ctx, projectID, id)
	if err != nil {
		return nil, err
	}

	analysis := model.NewRiskAnalysis(risk, analysisType, actor)
	created, err := uc.repo.Analysis().Create(ctx, analysis)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create reassessment", goerr.V(RiskIDKey, id))
	}

	return created, nil
}

// ListAnalyses retrieves a risk's analysis ledger in creation order. The
// ledger stays readable after the risk is soft-deleted.
func (uc *RiskUseCase) ListAnalyses(ctx context.Context, riskID types.RiskID) ([]*model.RiskAnalysis, error) {
	analyses, err := uc.repo.Analysis().ListByRisk(ctx, riskID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list analyses", goerr.V(RiskIDKey, riskID))
	}
	return analyses, nil
}

// DeleteRisk soft-deletes a risk. Its analyses and response plans remain
// retrievable as historical record.
func (uc *RiskUseCase) DeleteRisk(ctx context.Context, projectID types.ProjectID, actor types.UserID, id types.RiskID) error {
	if err := authorizeMutation(ctx, uc.repo, projectID, actor); err != nil {
		return err
	}

	if err := uc.repo.Risk().SoftDelete(ctx, projectID, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrNotFound, "risk not found",
				goerr.V(ProjectIDKey, projectID), goerr.V(RiskIDKey, id))
		}
		return goerr.Wrap(err, "failed to delete risk", goerr.V(RiskIDKey, id))
	}

	return nil
}
