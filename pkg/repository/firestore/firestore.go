package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskops-lab/riskregister/pkg/domain/interfaces"
)

type Firestore struct {
	client      *firestore.Client
	projectRepo *projectRepository
	risk        *riskRepository
	analysis    *analysisRepository
	plan        *planRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, mainly for tests sharing
// a Firestore project
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.projectRepo.collectionPrefix = prefix
		f.risk.collectionPrefix = prefix
		f.analysis.collectionPrefix = prefix
		f.plan.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:      client,
		projectRepo: newProjectRepository(client),
		risk:        newRiskRepository(client),
		analysis:    newAnalysisRepository(client),
		plan:        newPlanRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Project() interfaces.ProjectRepository {
	return f.projectRepo
}

func (f *Firestore) Risk() interfaces.RiskRepository {
	return f.risk
}

func (f *Firestore) Analysis() interfaces.AnalysisRepository {
	return f.analysis
}

func (f *Firestore) Plan() interfaces.PlanRepository {
	return f.plan
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
