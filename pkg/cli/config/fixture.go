package config

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
	"github.com/taskops-lab/riskregister/pkg/usecase"
)

// Fixture is a TOML-defined set of projects and risks loaded into the
// repository at startup, mainly for the in-memory backend in development
type Fixture struct {
	Projects []FixtureProject `toml:"project"`
	Risks    []FixtureRisk    `toml:"risk"`
}

// FixtureProject describes a project membership snapshot
type FixtureProject struct {
	ID           string        `toml:"id"`
	Name         string        `toml:"name"`
	OwnerID      string        `toml:"owner"`
	Teams        []FixtureTeam `toml:"teams"`
	Stakeholders []string      `toml:"stakeholders"`
	Members      []string      `toml:"members"`
}

// FixtureTeam describes a team within a fixture project
type FixtureTeam struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	LeaderID string `toml:"leader"`
}

// FixtureRisk describes a risk to seed into a fixture project
type FixtureRisk struct {
	ProjectID   string  `toml:"project"`
	Name        string  `toml:"name"`
	Description string  `toml:"description"`
	Category    string  `toml:"category"`
	Probability float64 `toml:"probability"`
	Impact      int     `toml:"impact"`
	Status      string  `toml:"status"`
	OwnerID     string  `toml:"owner"`
}

// Validate checks the fixture's internal consistency
func (f *Fixture) Validate() error {
	projectIDs := make(map[string]bool)
	for _, p := range f.Projects {
		if p.ID == "" {
			return goerr.Wrap(ErrInvalidFixture, "project ID is required")
		}
		if p.OwnerID == "" {
			return goerr.Wrap(ErrInvalidFixture, "project owner is required", goerr.V(ProjectIDKey, p.ID))
		}
		if projectIDs[p.ID] {
			return goerr.Wrap(ErrDuplicateProject, "fixture declares the project twice", goerr.V(ProjectIDKey, p.ID))
		}
		projectIDs[p.ID] = true
	}

	for _, r := range f.Risks {
		if !projectIDs[r.ProjectID] {
			return goerr.Wrap(ErrUnknownProjectRef, "fixture risk has no matching project",
				goerr.V(ProjectIDKey, r.ProjectID), goerr.V(RiskNameKey, r.Name))
		}
		if !types.RiskCategory(r.Category).IsValid() {
			return goerr.Wrap(ErrInvalidFixture, "invalid risk category",
				goerr.V(RiskNameKey, r.Name), goerr.V("category", r.Category))
		}
	}

	return nil
}

// LoadFixture loads and validates a fixture from a TOML file
func LoadFixture(path string) (*Fixture, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrFixtureNotFound, "fixture file not found", goerr.V(FixturePathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read fixture file", goerr.V(FixturePathKey, path))
	}

	var fixture Fixture
	if err := toml.Unmarshal(data, &fixture); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML fixture", goerr.V(FixturePathKey, path))
	}

	if err := fixture.Validate(); err != nil {
		return nil, goerr.Wrap(err, "fixture validation failed", goerr.V(FixturePathKey, path))
	}

	return &fixture, nil
}

// Apply seeds the fixture into the repository through the use case layer so
// seeded risks get their initial analyses like any other creation
func (f *Fixture) Apply(ctx context.Context, uc *usecase.UseCases, repo projectPutter) error {
	for _, p := range f.Projects {
		project := &model.Project{
			ID:      types.ProjectID(p.ID),
			Name:    p.Name,
			OwnerID: types.UserID(p.OwnerID),
		}
		for _, t := range p.Teams {
			project.Teams = append(project.Teams, model.Team{
				ID:       types.TeamID(t.ID),
				Name:     t.Name,
				LeaderID: types.UserID(t.LeaderID),
			})
		}
		for _, s := range p.Stakeholders {
			project.Stakeholders = append(project.Stakeholders, model.Stakeholder{UserID: types.UserID(s)})
		}
		for _, m := range p.Members {
			project.Members = append(project.Members, model.Member{UserID: types.UserID(m)})
		}

		if err := repo.Put(ctx, project); err != nil {
			return goerr.Wrap(err, "failed to seed project", goerr.V(ProjectIDKey, p.ID))
		}
	}

	for _, r := range f.Risks {
		input := usecase.CreateRiskInput{
			Name:        r.Name,
			Description: r.Description,
			Category:    types.RiskCategory(r.Category),
			Probability: r.Probability,
			Impact:      r.Impact,
			Status:      types.RiskStatus(r.Status),
			OwnerID:     types.UserID(r.OwnerID),
		}
		// Seed as the project owner so the permission gate passes
		var owner types.UserID
		for _, p := range f.Projects {
			if p.ID == r.ProjectID {
				owner = types.UserID(p.OwnerID)
				break
			}
		}
		if _, err := uc.Risk.CreateRisk(ctx, types.ProjectID(r.ProjectID), owner, input); err != nil {
			return goerr.Wrap(err, "failed to seed risk",
				goerr.V(ProjectIDKey, r.ProjectID), goerr.V(RiskNameKey, r.Name))
		}
	}

	return nil
}

type projectPutter interface {
	Put(ctx context.Context, project *model.Project) error
}
