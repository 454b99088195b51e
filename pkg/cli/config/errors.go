package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrFixtureNotFound   = goerr.New("fixture file not found")
	ErrInvalidFixture    = goerr.New("invalid fixture")
	ErrDuplicateProject  = goerr.New("duplicate project ID")
	ErrUnknownProjectRef = goerr.New("risk references unknown project")
)

// Context keys for error values
const (
	FixturePathKey = "fixture_path"
	ProjectIDKey   = "project_id"
	RiskNameKey    = "risk_name"
)
