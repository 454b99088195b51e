package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskops-lab/riskregister/pkg/domain/interfaces"
	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type teamDocument struct {
	ID       string `firestore:"id"`
	Name     string `firestore:"name"`
	LeaderID string `firestore:"leader_id"`
}

type projectDocument struct {
	ID           string         `firestore:"id"`
	Name         string         `firestore:"name"`
	OwnerID      string         `firestore:"owner_id"`
	Teams        []teamDocument `firestore:"teams"`
	Stakeholders []string       `firestore:"stakeholders"`
	Members      []string       `firestore:"members"`
}

func toProjectDocument(p *model.Project) *projectDocument {
	doc := &projectDocument{
		ID:           p.ID.String(),
		Name:         p.Name,
		OwnerID:      p.OwnerID.String(),
		Teams:        make([]teamDocument, 0, len(p.Teams)),
		Stakeholders: make([]string, 0, len(p.Stakeholders)),
		Members:      make([]string, 0, len(p.Members)),
	}
	for _, t := range p.Teams {
		doc.Teams = append(doc.Teams, teamDocument{
			ID:       t.ID.String(),
			Name:     t.Name,
			LeaderID: t.LeaderID.String(),
		})
	}
	for _, s := range p.Stakeholders {
		doc.Stakeholders = append(doc.Stakeholders, s.UserID.String())
	}
	for _, m := range p.Members {
		doc.Members = append(doc.Members, m.UserID.String())
	}
	return doc
}

func (d *projectDocument) toModel() *model.Project {
	project := &model.Project{
		ID:      types.ProjectID(d.ID),
		Name:    d.Name,
		OwnerID: types.UserID(d.OwnerID),
	}
	for _, t := range d.Teams {
		project.Teams = append(project.Teams, model.Team{
			ID:       types.TeamID(t.ID),
			Name:     t.Name,
			LeaderID: types.UserID(t.LeaderID),
		})
	}
	for _, s := range d.Stakeholders {
		project.Stakeholders = append(project.Stakeholders, model.Stakeholder{UserID: types.UserID(s)})
	}
	for _, m := range d.Members {
		project.Members = append(project.Members, model.Member{UserID: types.UserID(m)})
	}
	return project
}

type projectRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newProjectRepository(client *firestore.Client) *projectRepository {
	return &projectRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *projectRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_projects"
	}
	return "projects"
}

func (r *projectRepository) Put(ctx context.Context, project *model.Project) error {
	docRef := r.client.Collection(r.collection()).Doc(project.ID.String())
	if _, err := docRef.Set(ctx, toProjectDocument(project)); err != nil {
		return goerr.Wrap(err, "failed to put project", goerr.V("id", project.ID))
	}
	return nil
}

func (r *projectRepository) Get(ctx context.Context, id types.ProjectID) (*model.Project, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "project not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get project", goerr.V("id", id))
	}

	var projectDoc projectDocument
	if err := doc.DataTo(&projectDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal project", goerr.V("id", id))
	}

	return projectDoc.toModel(), nil
}
