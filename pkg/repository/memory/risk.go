package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskops-lab/riskregister/pkg/domain/interfaces"
	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

type riskRepository struct {
	mu    sync.RWMutex
	risks map[types.RiskID]*model.Risk
	// order keeps per-project creation order for List
	order map[types.ProjectID][]types.RiskID
}

func newRiskRepository() *riskRepository {
	return &riskRepository{
		risks: make(map[types.RiskID]*model.Risk),
		order: make(map[types.ProjectID][]types.RiskID),
	}
}

func (r *riskRepository) Create(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := risk.Clone()
	created.ID = types.NewRiskID()
	if created.IdentifiedAt.IsZero() {
		created.IdentifiedAt = now
	}
	created.UpdatedAt = now
	created.Revision = 1
	created.Deleted = false

	r.risks[created.ID] = created
	r.order[created.ProjectID] = append(r.order[created.ProjectID], created.ID)
	return created.Clone(), nil
}

func (r *riskRepository) Get(ctx context.Context, projectID types.ProjectID, id types.RiskID) (*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risk, exists := r.risks[id]
	if !exists || risk.ProjectID != projectID || risk.Deleted {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "risk not found",
			goerr.V("projectID", projectID), goerr.V("id", id))
	}

	return risk.Clone(), nil
}

func (r *riskRepository) List(ctx context.Context, projectID types.ProjectID) ([]*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.order[projectID]
	risks := make([]*model.Risk, 0, len(ids))
	for _, id := range ids {
		risk, exists := r.risks[id]
		if !exists || risk.Deleted {
			continue
		}
		risks = append(risks, risk.Clone())
	}

	return risks, nil
}

func (r *riskRepository) Update(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.risks[risk.ID]
	if !exists || existing.ProjectID != risk.ProjectID || existing.Deleted {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "risk not found",
			goerr.V("projectID", risk.ProjectID), goerr.V("id", risk.ID))
	}

	if existing.Revision != risk.Revision {
		return nil, goerr.Wrap(interfaces.ErrRevisionMismatch, "risk was updated concurrently",
			goerr.V("id", risk.ID),
			goerr.V("expected", risk.Revision),
			goerr.V("actual", existing.Revision))
	}

	updated := risk.Clone()
	updated.IdentifiedAt = existing.IdentifiedAt
	updated.Revision = existing.Revision + 1
	updated.UpdatedAt = time.Now().UTC()

	r.risks[updated.ID] = updated
	return updated.Clone(), nil
}

func (r *riskRepository) SoftDelete(ctx context.Context, projectID types.ProjectID, id types.RiskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.risks[id]
	if !exists || existing.ProjectID != projectID || existing.Deleted {
		return goerr.Wrap(interfaces.ErrNotFound, "risk not found",
			goerr.V("projectID", projectID), goerr.V("id", id))
	}

	existing.Deleted = true
	existing.Revision++
	existing.UpdatedAt = time.Now().UTC()
	return nil
}
