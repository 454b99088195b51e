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

type analysisRepository struct {
	mu       sync.RWMutex
	analyses map[types.AnalysisID]*model.RiskAnalysis
	byRisk   map[types.RiskID][]types.AnalysisID
}

func newAnalysisRepository() *analysisRepository {
	return &analysisRepository{
		analyses: make(map[types.AnalysisID]*model.RiskAnalysis),
		byRisk:   make(map[types.RiskID][]types.AnalysisID),
	}
}

func (r *analysisRepository) Create(ctx context.Context, analysis *model.RiskAnalysis) (*model.RiskAnalysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *analysis
	if created.ID == "" {
		created.ID = types.NewAnalysisID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.analyses[created.ID] = &created
	r.byRisk[created.RiskID] = append(r.byRisk[created.RiskID], created.ID)

	clone := created
	return &clone, nil
}

func (r *analysisRepository) Get(ctx context.Context, id types.AnalysisID) (*model.RiskAnalysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	analysis, exists := r.analyses[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "analysis not found", goerr.V("id", id))
	}

	clone := *analysis
	return &clone, nil
}

func (r *analysisRepository) ListByRisk(ctx context.Context, riskID types.RiskID) ([]*model.RiskAnalysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byRisk[riskID]
	analyses := make([]*model.RiskAnalysis, 0, len(ids))
	for _, id := range ids {
		if analysis, exists := r.analyses[id]; exists {
			clone := *analysis
			analyses = append(analyses, &clone)
		}
	}

	return analyses, nil
}
