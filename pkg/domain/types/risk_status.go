package types

import "fmt"

// RiskStatus represents the lifecycle status of a risk
type RiskStatus string

const (
	RiskStatusOpen       RiskStatus = "Open"
	RiskStatusMitigating RiskStatus = "Mitigating"
	RiskStatusClosed     RiskStatus = "Closed"
	RiskStatusAccepted   RiskStatus = "Accepted"
)

// AllRiskStatuses returns all valid risk statuses
func AllRiskStatuses() []RiskStatus {
	return []RiskStatus{
		RiskStatusOpen,
		RiskStatusMitigating,
		RiskStatusClosed,
		RiskStatusAccepted,
	}
}

// IsValid checks if the risk status is valid
func (s RiskStatus) IsValid() bool {
	switch s {
	case RiskStatusOpen,
		RiskStatusMitigating,
		RiskStatusClosed,
		RiskStatusAccepted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further status transition is permitted.
// Terminal risks may still be soft-deleted.
func (s RiskStatus) IsTerminal() bool {
	return s == RiskStatusClosed || s == RiskStatusAccepted
}

// CanTransitionTo reports whether the transition s -> next is allowed.
// The graph is Open -> Mitigating -> Closed with a side transition from
// Open or Mitigating to Accepted. Re-stating the current status is allowed.
func (s RiskStatus) CanTransitionTo(next RiskStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case RiskStatusOpen:
		return next == RiskStatusMitigating || next == RiskStatusAccepted
	case RiskStatusMitigating:
		return next == RiskStatusClosed || next == RiskStatusAccepted
	default:
		return false
	}
}

// Normalize returns the status, treating empty as RiskStatusOpen
func (s RiskStatus) Normalize() RiskStatus {
	if s == "" {
		return RiskStatusOpen
	}
	return s
}

// String returns the string representation of the risk status
func (s RiskStatus) String() string {
	return string(s)
}

// ParseRiskStatus parses a string into a RiskStatus
func ParseRiskStatus(s string) (RiskStatus, error) {
	status := RiskStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid risk status: %s", s)
	}
	return status, nil
}
