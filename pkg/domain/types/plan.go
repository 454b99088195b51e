package types

import "fmt"

// ResponseStrategy represents the planned treatment of a risk
type ResponseStrategy string

const (
	StrategyAvoid    ResponseStrategy = "Avoid"
	StrategyMitigate ResponseStrategy = "Mitigate"
	StrategyTransfer ResponseStrategy = "Transfer"
	StrategyAccept   ResponseStrategy = "Accept"
)

// AllResponseStrategies returns all valid response strategies
func AllResponseStrategies() []ResponseStrategy {
	return []ResponseStrategy{
		StrategyAvoid,
		StrategyMitigate,
		StrategyTransfer,
		StrategyAccept,
	}
}

// IsValid checks if the response strategy is valid
func (s ResponseStrategy) IsValid() bool {
	switch s {
	case StrategyAvoid, StrategyMitigate, StrategyTransfer, StrategyAccept:
		return true
	default:
		return false
	}
}

// String returns the string representation of the response strategy
func (s ResponseStrategy) String() string {
	return string(s)
}

// ParseResponseStrategy parses a string into a ResponseStrategy
func ParseResponseStrategy(s string) (ResponseStrategy, error) {
	strategy := ResponseStrategy(s)
	if !strategy.IsValid() {
		return "", fmt.Errorf("invalid response strategy: %s", s)
	}
	return strategy, nil
}

// PlanStatus represents the progress of a response plan
type PlanStatus string

const (
	PlanStatusPlanned    PlanStatus = "Planned"
	PlanStatusInProgress PlanStatus = "InProgress"
	PlanStatusCompleted  PlanStatus = "Completed"
)

// IsValid checks if the plan status is valid
func (s PlanStatus) IsValid() bool {
	switch s {
	case PlanStatusPlanned, PlanStatusInProgress, PlanStatusCompleted:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as PlanStatusPlanned
func (s PlanStatus) Normalize() PlanStatus {
	if s == "" {
		return PlanStatusPlanned
	}
	return s
}

// String returns the string representation of the plan status
func (s PlanStatus) String() string {
	return string(s)
}
