package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskops-lab/riskregister/pkg/domain/interfaces"
	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type analysisDocument struct {
	ID            string    `firestore:"id"`
	RiskID        string    `firestore:"risk_id"`
	ProjectID     string    `firestore:"project_id"`
	AnalysisType  string    `firestore:"analysis_type"`
	MatrixScore   string    `firestore:"matrix_score"`
	ExpectedValue float64   `firestore:"expected_value"`
	CreatedBy     string    `firestore:"created_by"`
	CreatedAt     time.Time `firestore:"created_at"`
}

func toAnalysisDocument(a *model.RiskAnalysis) *analysisDocument {
	return &analysisDocument{
		ID:            a.ID.String(),
		RiskID:        a.RiskID.String(),
		ProjectID:     a.ProjectID.String(),
		AnalysisType:  a.AnalysisType,
		MatrixScore:   a.MatrixScore,
		ExpectedValue: a.ExpectedValue,
		CreatedBy:     a.CreatedBy.String(),
		CreatedAt:     a.CreatedAt,
	}
}

func (d *analysisDocument) toModel() *model.RiskAnalysis {
	return &model.RiskAnalysis{
		ID:            types.AnalysisID(d.ID),
		RiskID:        types.RiskID(d.RiskID),
		ProjectID:     types.ProjectID(d.ProjectID),
		AnalysisType:  d.AnalysisType,
		MatrixScore:   d.MatrixScore,
		ExpectedValue: d.ExpectedValue,
		CreatedBy:     types.UserID(d.CreatedBy),
		CreatedAt:     d.CreatedAt,
	}
}

type analysisRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAnalysisRepository(client *firestore.Client) *analysisRepository {
	return &analysisRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *analysisRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_risk_analyses"
	}
	return "risk_analyses"
}

func (r *analysisRepository) Create(ctx context.Context, analysis *model.RiskAnalysis) (*model.RiskAnalysis, error) {
	doc := toAnalysisDocument(analysis)
	if doc.ID == "" {
		doc.ID = types.NewAnalysisID().String()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Create(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create analysis", goerr.V("id", doc.ID))
	}

	return doc.toModel(), nil
}

func (r *analysisRepository) Get(ctx context.Context, id types.AnalysisID) (*model.RiskAnalysis, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "analysis not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get analysis", goerr.V("id", id))
	}

	var analysisDoc analysisDocument
	if err := doc.DataTo(&analysisDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal analysis", goerr.V("id", id))
	}

	return analysisDoc.toModel(), nil
}

func (r *analysisRepository) ListByRisk(ctx context.Context, riskID types.RiskID) ([]*model.RiskAnalysis, error) {
	iter := r.client.Collection(r.collection()).
		Where("risk_id", "==", riskID.String()).
		OrderBy("created_at", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	analyses := []*model.RiskAnalysis{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate analyses", goerr.V("riskID", riskID))
		}

		var analysisDoc analysisDocument
		if err := doc.DataTo(&analysisDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal analysis")
		}

		analyses = append(analyses, analysisDoc.toModel())
	}

	return analyses, nil
}
