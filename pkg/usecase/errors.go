package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Input and state errors
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("record was updated concurrently")

	// Not found errors
	ErrNotFound = errors.New("record not found")

	// Access control errors
	ErrPermissionDenied = errors.New("permission denied")

	// Partial failure during multi-write operations
	ErrPartialFailure = errors.New("operation partially completed")
)

// Context keys for error values
const (
	ProjectIDKey = "project_id"
	RiskIDKey    = "risk_id"
	PlanIDKey    = "plan_id"
)
