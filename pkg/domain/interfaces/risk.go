package interfaces

import (
	"context"

	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

type RiskRepository interface {
	// Create persists a new risk, assigning its ID, timestamps and initial
	// revision. The input is not modified; the stored record is returned.
	Create(ctx context.Context, risk *model.Risk) (*model.Risk, error)

	// Get retrieves a risk by ID within a project. Soft-deleted risks are
	// not returned; a miss yields ErrNotFound.
	Get(ctx context.Context, projectID types.ProjectID, id types.RiskID) (*model.Risk, error)

	// List retrieves all non-deleted risks of a project in creation order
	List(ctx context.Context, projectID types.ProjectID) ([]*model.Risk, error)

	// Update replaces an existing risk. The write succeeds only when the
	// stored revision matches risk.Revision; on success the stored revision
	// is incremented. A stale token yields ErrRevisionMismatch.
	Update(ctx context.Context, risk *model.Risk) (*model.Risk, error)

	// SoftDelete marks a risk deleted without removing its analyses or
	// response plans
	SoftDelete(ctx context.Context, projectID types.ProjectID, id types.RiskID) error
}
