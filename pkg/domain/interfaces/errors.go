package interfaces

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared by all repository backends. Callers distinguish a
// missing record from a persistence failure with errors.Is.
var (
	ErrNotFound         = goerr.New("record not found")
	ErrRevisionMismatch = goerr.New("revision mismatch")
)
