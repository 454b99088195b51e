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

type planRepository struct {
	mu     sync.RWMutex
	plans  map[types.PlanID]*model.RiskResponsePlan
	byRisk map[types.RiskID][]types.PlanID
}

func newPlanRepository() *planRepository {
	return &planRepository{
		plans:  make(map[types.PlanID]*model.RiskResponsePlan),
		byRisk: make(map[types.RiskID][]types.PlanID),
	}
}

func (r *planRepository) Create(ctx context.Context, plan *model.RiskResponsePlan) (*model.RiskResponsePlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := plan.Clone()
	created.ID = types.NewPlanID()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.plans[created.ID] = created
	r.byRisk[created.RiskID] = append(r.byRisk[created.RiskID], created.ID)
	return created.Clone(), nil
}

func (r *planRepository) Get(ctx context.Context, id types.PlanID) (*model.RiskResponsePlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, exists := r.plans[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "plan not found", goerr.V("id", id))
	}

	return plan.Clone(), nil
}

func (r *planRepository) ListByRisk(ctx context.Context, riskID types.RiskID) ([]*model.RiskResponsePlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byRisk[riskID]
	plans := make([]*model.RiskResponsePlan, 0, len(ids))
	for _, id := range ids {
		if plan, exists := r.plans[id]; exists {
			plans = append(plans, plan.Clone())
		}
	}

	return plans, nil
}

func (r *planRepository) Update(ctx context.Context, plan *model.RiskResponsePlan) (*model.RiskResponsePlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.plans[plan.ID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "plan not found", goerr.V("id", plan.ID))
	}

	updated := plan.Clone()
	updated.RiskID = existing.RiskID
	updated.ProjectID = existing.ProjectID
	updated.CreatedBy = existing.CreatedBy
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.plans[updated.ID] = updated
	return updated.Clone(), nil
}
