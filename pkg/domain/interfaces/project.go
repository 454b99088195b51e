package interfaces

import (
	"context"

	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

type ProjectRepository interface {
	// Put stores or replaces a project membership snapshot
	Put(ctx context.Context, project *model.Project) error

	// Get retrieves a project by ID. A miss yields ErrNotFound.
	Get(ctx context.Context, id types.ProjectID) (*model.Project, error)
}
