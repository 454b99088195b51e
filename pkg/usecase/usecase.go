package usecase

import (
	"github.com/taskops-lab/riskregister/pkg/domain/interfaces"
)

type UseCases struct {
	repo interfaces.Repository
	Risk *RiskUseCase
	Plan *PlanUseCase
	View *ViewUseCase
}

func New(repo interfaces.Repository) *UseCases {
	return &UseCases{
		repo: repo,
		Risk: NewRiskUseCase(repo),
		Plan: NewPlanUseCase(repo),
		View: NewViewUseCase(repo),
	}
}
