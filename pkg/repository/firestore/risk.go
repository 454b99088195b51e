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

type riskDocument struct {
	ID           string    `firestore:"id"`
	ProjectID    string    `firestore:"project_id"`
	Name         string    `firestore:"name"`
	Description  string    `firestore:"description"`
	Category     string    `firestore:"category"`
	Probability  float64   `firestore:"probability"`
	Impact       int       `firestore:"impact"`
	Severity     float64   `firestore:"severity"`
	Status       string    `firestore:"status"`
	IdentifiedAt time.Time `firestore:"identified_at"`
	OwnerID      string    `firestore:"owner_id"`
	Deleted      bool      `firestore:"deleted"`
	Revision     int64     `firestore:"revision"`
	UpdatedAt    time.Time `firestore:"updated_at"`
}

func toRiskDocument(risk *model.Risk) *riskDocument {
	return &riskDocument{
		ID:           risk.ID.String(),
		ProjectID:    risk.ProjectID.String(),
		Name:         risk.Name,
		Description:  risk.Description,
		Category:     risk.Category.String(),
		Probability:  risk.Probability,
		Impact:       risk.Impact,
		Severity:     risk.Severity,
		Status:       risk.Status.String(),
		IdentifiedAt: risk.IdentifiedAt,
		OwnerID:      risk.OwnerID.String(),
		Deleted:      risk.Deleted,
		Revision:     risk.Revision,
		UpdatedAt:    risk.UpdatedAt,
	}
}

func (d *riskDocument) toModel() *model.Risk {
	return &model.Risk{
		ID:           types.RiskID(d.ID),
		ProjectID:    types.ProjectID(d.ProjectID),
		Name:         d.Name,
		Description:  d.Description,
		Category:     types.RiskCategory(d.Category),
		Probability:  d.Probability,
		Impact:       d.Impact,
		Severity:     d.Severity,
		Status:       types.RiskStatus(d.Status),
		IdentifiedAt: d.IdentifiedAt,
		OwnerID:      types.UserID(d.OwnerID),
		Deleted:      d.Deleted,
		Revision:     d.Revision,
		UpdatedAt:    d.UpdatedAt,
	}
}

type riskRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRiskRepository(client *firestore.Client) *riskRepository {
	return &riskRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *riskRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_risks"
	}
	return "risks"
}

func (r *riskRepository) Create(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	now := time.Now().UTC()
	doc := toRiskDocument(risk)
	doc.ID = types.NewRiskID().String()
	if doc.IdentifiedAt.IsZero() {
		doc.IdentifiedAt = now
	}
	doc.UpdatedAt = now
	doc.Revision = 1
	doc.Deleted = false

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Create(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create risk", goerr.V("id", doc.ID))
	}

	return doc.toModel(), nil
}

func (r *riskRepository) Get(ctx context.Context, projectID types.ProjectID, id types.RiskID) (*model.Risk, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "risk not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get risk", goerr.V("id", id))
	}

	var riskDoc riskDocument
	if err := doc.DataTo(&riskDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal risk", goerr.V("id", id))
	}

	if riskDoc.ProjectID != projectID.String() || riskDoc.Deleted {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "risk not found",
			goerr.V("projectID", projectID), goerr.V("id", id))
	}

	return riskDoc.toModel(), nil
}

func (r *riskRepository) List(ctx context.Context, projectID types.ProjectID) ([]*model.Risk, error) {
	iter := r.client.Collection(r.collection()).
		Where("project_id", "==", projectID.String()).
		Where("deleted", "==", false).
		OrderBy("identified_at", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	risks := []*model.Risk{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate risks", goerr.V("projectID", projectID))
		}

		var riskDoc riskDocument
		if err := doc.DataTo(&riskDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal risk")
		}

		risks = append(risks, riskDoc.toModel())
	}

	return risks, nil
}

func (r *riskRepository) Update(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	docRef := r.client.Collection(r.collection()).Doc(risk.ID.String())

	var updated *riskDocument
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(interfaces.ErrNotFound, "risk not found", goerr.V("id", risk.ID))
			}
			return goerr.Wrap(err, "failed to get risk", goerr.V("id", risk.ID))
		}

		var existing riskDocument
		if err := doc.DataTo(&existing); err != nil {
			return goerr.Wrap(err, "failed to unmarshal risk", goerr.V("id", risk.ID))
		}

		if existing.ProjectID != risk.ProjectID.String() || existing.Deleted {
			return goerr.Wrap(interfaces.ErrNotFound, "risk not found",
				goerr.V("projectID", risk.ProjectID), goerr.V("id", risk.ID))
		}

		if existing.Revision != risk.Revision {
			return goerr.Wrap(interfaces.ErrRevisionMismatch, "risk was updated concurrently",
				goerr.V("id", risk.ID),
				goerr.V("expected", risk.Revision),
				goerr.V("actual", existing.Revision))
		}

		updated = toRiskDocument(risk)
		updated.IdentifiedAt = existing.IdentifiedAt
		updated.Revision = existing.Revision + 1
		updated.UpdatedAt = time.Now().UTC()

		return tx.Set(docRef, updated)
	})
	if err != nil {
		return nil, err
	}

	return updated.toModel(), nil
}

func (r *riskRepository) SoftDelete(ctx context.Context, projectID types.ProjectID, id types.RiskID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(interfaces.ErrNotFound, "risk not found", goerr.V("id", id))
			}
			return goerr.Wrap(err, "failed to get risk", goerr.V("id", id))
		}

		var existing riskDocument
		if err := doc.DataTo(&existing); err != nil {
			return goerr.Wrap(err, "failed to unmarshal risk", goerr.V("id", id))
		}

		if existing.ProjectID != projectID.String() || existing.Deleted {
			return goerr.Wrap(interfaces.ErrNotFound, "risk not found",
				goerr.V("projectID", projectID), goerr.V("id", id))
		}

		return tx.Update(docRef, []firestore.Update{
			{Path: "deleted", Value: true},
			{Path: "revision", Value: existing.Revision + 1},
			{Path: "updated_at", Value: time.Now().UTC()},
		})
	})
}
