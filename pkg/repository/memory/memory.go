package memory

import (
	"github.com/taskops-lab/riskregister/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	project  *projectRepository
	risk     *riskRepository
	analysis *analysisRepository
	plan     *planRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		project:  newProjectRepository(),
		risk:     newRiskRepository(),
		analysis: newAnalysisRepository(),
		plan:     newPlanRepository(),
	}
}

func (m *Memory) Project() interfaces.ProjectRepository {
	return m.project
}

func (m *Memory) Risk() interfaces.RiskRepository {
	return m.risk
}

func (m *Memory) Analysis() interfaces.AnalysisRepository {
	return m.analysis
}

func (m *Memory) Plan() interfaces.PlanRepository {
	return m.plan
}

func (m *Memory) Close() error {
	return nil
}
