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

type planDocument struct {
	ID             string    `firestore:"id"`
	RiskID         string    `firestore:"risk_id"`
	ProjectID      string    `firestore:"project_id"`
	Strategy       string    `firestore:"strategy"`
	Description    string    `firestore:"description"`
	PlannedActions string    `firestore:"planned_actions"`
	Status         string    `firestore:"status"`
	CreatedBy      string    `firestore:"created_by"`
	CreatedAt      time.Time `firestore:"created_at"`
	UpdatedAt      time.Time `firestore:"updated_at"`
}

func toPlanDocument(p *model.RiskResponsePlan) *planDocument {
	return &planDocument{
		ID:             p.ID.String(),
		RiskID:         p.RiskID.String(),
		ProjectID:      p.ProjectID.String(),
		Strategy:       p.Strategy.String(),
		Description:    p.Description,
		PlannedActions: p.PlannedActions,
		Status:         p.Status.String(),
		CreatedBy:      p.CreatedBy.String(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (d *planDocument) toModel() *model.RiskResponsePlan {
	return &model.RiskResponsePlan{
		ID:             types.PlanID(d.ID),
		RiskID:         types.RiskID(d.RiskID),
		ProjectID:      types.ProjectID(d.ProjectID),
		Strategy:       types.ResponseStrategy(d.Strategy),
		Description:    d.Description,
		PlannedActions: d.PlannedActions,
		Status:         types.PlanStatus(d.Status),
		CreatedBy:      types.UserID(d.CreatedBy),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

type planRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newPlanRepository(client *firestore.Client) *planRepository {
	return &planRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *planRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_response_plans"
	}
	return "response_plans"
}

func (r *planRepository) Create(ctx context.Context, plan *model.RiskResponsePlan) (*model.RiskResponsePlan, error) {
	now := time.Now().UTC()
	doc := toPlanDocument(plan)
	doc.ID = types.NewPlanID().String()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Create(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create plan", goerr.V("id", doc.ID))
	}

	return doc.toModel(), nil
}

func (r *planRepository) Get(ctx context.Context, id types.PlanID) (*model.RiskResponsePlan, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "plan not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get plan", goerr.V("id", id))
	}

	var planDoc planDocument
	if err := doc.DataTo(&planDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal plan", goerr.V("id", id))
	}

	return planDoc.toModel(), nil
}

func (r *planRepository) ListByRisk(ctx context.Context, riskID types.RiskID) ([]*model.RiskResponsePlan, error) {
	iter := r.client.Collection(r.collection()).
		Where("risk_id", "==", riskID.String()).
		OrderBy("created_at", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	plans := []*model.RiskResponsePlan{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate plans", goerr.V("riskID", riskID))
		}

		var planDoc planDocument
		if err := doc.DataTo(&planDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal plan")
		}

		plans = append(plans, planDoc.toModel())
	}

	return plans, nil
}

func (r *planRepository) Update(ctx context.Context, plan *model.RiskResponsePlan) (*model.RiskResponsePlan, error) {
	docRef := r.client.Collection(r.collection()).Doc(plan.ID.String())

	var updated *planDocument
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(interfaces.ErrNotFound, "plan not found", goerr.V("id", plan.ID))
			}
			return goerr.Wrap(err, "failed to get plan", goerr.V("id", plan.ID))
		}

		var existing planDocument
		if err := doc.DataTo(&existing); err != nil {
			return goerr.Wrap(err, "failed to unmarshal plan", goerr.V("id", plan.ID))
		}

		updated = toPlanDocument(plan)
		updated.RiskID = existing.RiskID
		updated.ProjectID = existing.ProjectID
		updated.CreatedBy = existing.CreatedBy
		updated.CreatedAt = existing.CreatedAt
		updated.UpdatedAt = time.Now().UTC()

		return tx.Set(docRef, updated)
	})
	if err != nil {
		return nil, err
	}

	return updated.toModel(), nil
}
