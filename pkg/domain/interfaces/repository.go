package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Project() ProjectRepository
	Risk() RiskRepository
	Analysis() AnalysisRepository
	Plan() PlanRepository

	Close() error
}
