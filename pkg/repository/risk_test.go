package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/taskops-lab/riskregister/pkg/domain/interfaces"
	"github.com/taskops-lab/riskregister/pkg/domain/model"
	"github.com/taskops-lab/riskregister/pkg/domain/types"
	"github.com/taskops-lab/riskregister/pkg/repository/firestore"
	"github.com/taskops-lab/riskregister/pkg/repository/memory"
)

const testProjectID = types.ProjectID("proj-test")

func newTestRisk(name string) *model.Risk {
	return &model.Risk{
		ProjectID:   testProjectID,
		Name:        name,
		Description: "test risk",
		Category:    types.CategoryTechnical,
		Probability: 0.5,
		Impact:      6,
		Severity:    3.0,
		Status:      types.RiskStatusOpen,
		OwnerID:     types.UserID("owner"),
	}
}

func runRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID, timestamps and initial revision", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, newTestRisk("unpatched dependency"))
		if err != nil {
			t.Fatalf("failed to create risk: %v", err)
		}

		if created.ID == "" {
			t.Error("expected non-empty ID")
		}
		if created.Revision != 1 {
			t.Errorf("expected revision=1, got %d", created.Revision)
		}
		if created.IdentifiedAt.IsZero() {
			t.Error("expected non-zero IdentifiedAt")
		}
		if created.UpdatedAt.IsZero() {
			t.Error("expected non-zero UpdatedAt")
		}
		if created.Deleted {
			t.Error("expected new risk to not be deleted")
		}
	})

	t.Run("Get retrieves existing risk", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, newTestRisk("flaky deploy pipeline"))
		if err != nil {
			t.Fatalf("failed to create risk: %v", err)
		}

		retrieved, err := repo.Risk().Get(ctx, testProjectID, created.ID)
		if err != nil {
			t.Fatalf("failed to get risk: %v", err)
		}

		if retrieved.ID != created.ID {
			t.Errorf("expected ID=%s, got %s", created.ID, retrieved.ID)
		}
		if retrieved.Name != "flaky deploy pipeline" {
			t.Errorf("unexpected name: %s", retrieved.Name)
		}
	})

	t.Run("Get misses risks of other projects", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, newTestRisk("scoped risk"))
		if err != nil {
			t.Fatalf("failed to create risk: %v", err)
		}

		_, err = repo.Risk().Get(ctx, types.ProjectID("other-project"), created.ID)
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("List returns risks in creation order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		names := []string{"first", "second", "third"}
		for _, name := range names {
			if _, err := repo.Risk().Create(ctx, newTestRisk(name)); err != nil {
				t.Fatalf("failed to create risk %s: %v", name, err)
			}
		}

		risks, err := repo.Risk().List(ctx, testProjectID)
		if err != nil {
			t.Fatalf("failed to list risks: %v", err)
		}

		if len(risks) != len(names) {
			t.Fatalf("expected %d risks, got %d", len(names), len(risks))
		}
		for i, name := range names {
			if risks[i].Name != name {
				t.Errorf("expected risks[%d].Name=%s, got %s", i, name, risks[i].Name)
			}
		}
	})

	t.Run("Update succeeds with matching revision and bumps it", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, newTestRisk("slow rollout"))
		if err != nil {
			t.Fatalf("failed to create risk: %v", err)
		}

		created.Description = "updated description"
		updated, err := repo.Risk().Update(ctx, created)
		if err != nil {
			t.Fatalf("failed to update risk: %v", err)
		}

		if updated.Revision != created.Revision+1 {
			t.Errorf("expected revision=%d, got %d", created.Revision+1, updated.Revision)
		}
		if updated.Description != "updated description" {
			t.Errorf("unexpected description: %s", updated.Description)
		}
	})

	t.Run("Update rejects stale revision", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, newTestRisk("contended risk"))
		if err != nil {
			t.Fatalf("failed to create risk: %v", err)
		}

		first := created.Clone()
		first.Description = "first writer"
		if _, err := repo.Risk().Update(ctx, first); err != nil {
			t.Fatalf("first update failed: %v", err)
		}

		second := created.Clone()
		second.Description = "second writer with stale revision"
		_, err = repo.Risk().Update(ctx, second)
		if !errors.Is(err, interfaces.ErrRevisionMismatch) {
			t.Errorf("expected ErrRevisionMismatch, got %v", err)
		}
	})

	t.Run("SoftDelete hides risk from Get and List", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, newTestRisk("retired risk"))
		if err != nil {
			t.Fatalf("failed to create risk: %v", err)
		}

		if err := repo.Risk().SoftDelete(ctx, testProjectID, created.ID); err != nil {
			t.Fatalf("failed to soft delete risk: %v", err)
		}

		if _, err := repo.Risk().Get(ctx, testProjectID, created.ID); !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound after soft delete, got %v", err)
		}

		risks, err := repo.Risk().List(ctx, testProjectID)
		if err != nil {
			t.Fatalf("failed to list risks: %v", err)
		}
		for _, risk := range risks {
			if risk.ID == created.ID {
				t.Error("soft-deleted risk still listed")
			}
		}

		// Deleting twice is a miss
		if err := repo.Risk().SoftDelete(ctx, testProjectID, created.ID); !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound on second delete, got %v", err)
		}
	})

	t.Run("Analyses and plans survive a soft delete", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, newTestRisk("risk with history"))
		if err != nil {
			t.Fatalf("failed to create risk: %v", err)
		}

		analysis := model.NewRiskAnalysis(created, model.AnalysisTypeInitial, types.UserID("owner"))
		if _, err := repo.Analysis().Create(ctx, analysis); err != nil {
			t.Fatalf("failed to create analysis: %v", err)
		}

		plan := &model.RiskResponsePlan{
			RiskID:    created.ID,
			ProjectID: testProjectID,
			Strategy:  types.StrategyMitigate,
			Status:    types.PlanStatusPlanned,
			CreatedBy: types.UserID("owner"),
		}
		if _, err := repo.Plan().Create(ctx, plan); err != nil {
			t.Fatalf("failed to create plan: %v", err)
		}

		if err := repo.Risk().SoftDelete(ctx, testProjectID, created.ID); err != nil {
			t.Fatalf("failed to soft delete risk: %v", err)
		}

		analyses, err := repo.Analysis().ListByRisk(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to list analyses: %v", err)
		}
		if len(analyses) != 1 {
			t.Errorf("expected 1 analysis after soft delete, got %d", len(analyses))
		}

		plans, err := repo.Plan().ListByRisk(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to list plans: %v", err)
		}
		if len(plans) != 1 {
			t.Errorf("expected 1 plan after soft delete, got %d", len(plans))
		}
	})

	t.Run("Analyses are listed in creation order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, newTestRisk("reassessed risk"))
		if err != nil {
			t.Fatalf("failed to create risk: %v", err)
		}

		first := model.NewRiskAnalysis(created, model.AnalysisTypeInitial, types.UserID("owner"))
		if _, err := repo.Analysis().Create(ctx, first); err != nil {
			t.Fatalf("failed to create initial analysis: %v", err)
		}
		// Firestore orders by created_at, so the entries must not share a timestamp
		second := model.NewRiskAnalysis(created, model.AnalysisTypeReassessment, types.UserID("owner"))
		second.CreatedAt = time.Now().UTC().Add(time.Second)
		if _, err := repo.Analysis().Create(ctx, second); err != nil {
			t.Fatalf("failed to create reassessment: %v", err)
		}

		analyses, err := repo.Analysis().ListByRisk(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to list analyses: %v", err)
		}
		if len(analyses) != 2 {
			t.Fatalf("expected 2 analyses, got %d", len(analyses))
		}
		if analyses[0].AnalysisType != model.AnalysisTypeInitial {
			t.Errorf("expected first entry to be initial, got %s", analyses[0].AnalysisType)
		}
		if analyses[1].AnalysisType != model.AnalysisTypeReassessment {
			t.Errorf("expected second entry to be reassessment, got %s", analyses[1].AnalysisType)
		}
	})

	t.Run("Plan update keeps identity fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, newTestRisk("planned risk"))
		if err != nil {
			t.Fatalf("failed to create risk: %v", err)
		}

		plan, err := repo.Plan().Create(ctx, &model.RiskResponsePlan{
			RiskID:    created.ID,
			ProjectID: testProjectID,
			Strategy:  types.StrategyAvoid,
			Status:    types.PlanStatusPlanned,
			CreatedBy: types.UserID("owner"),
		})
		if err != nil {
			t.Fatalf("failed to create plan: %v", err)
		}

		plan.Strategy = types.StrategyMitigate
		plan.Status = types.PlanStatusInProgress
		updated, err := repo.Plan().Update(ctx, plan)
		if err != nil {
			t.Fatalf("failed to update plan: %v", err)
		}

		if updated.Strategy != types.StrategyMitigate {
			t.Errorf("unexpected strategy: %s", updated.Strategy)
		}
		if updated.RiskID != created.ID {
			t.Errorf("plan lost its risk ID: %s", updated.RiskID)
		}
		if updated.CreatedBy != types.UserID("owner") {
			t.Errorf("plan lost its creator: %s", updated.CreatedBy)
		}
	})

	t.Run("Project put and get round-trips membership", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		project := &model.Project{
			ID:      testProjectID,
			Name:    "Test Project",
			OwnerID: types.UserID("owner"),
			Teams: []model.Team{
				{ID: types.TeamID("t1"), Name: "Core", LeaderID: types.UserID("leader")},
			},
			Stakeholders: []model.Stakeholder{{UserID: types.UserID("stakeholder")}},
			Members:      []model.Member{{UserID: types.UserID("member")}},
		}
		if err := repo.Project().Put(ctx, project); err != nil {
			t.Fatalf("failed to put project: %v", err)
		}

		retrieved, err := repo.Project().Get(ctx, testProjectID)
		if err != nil {
			t.Fatalf("failed to get project: %v", err)
		}
		if retrieved.OwnerID != project.OwnerID {
			t.Errorf("unexpected owner: %s", retrieved.OwnerID)
		}
		if len(retrieved.Teams) != 1 || retrieved.Teams[0].LeaderID != types.UserID("leader") {
			t.Errorf("unexpected teams: %+v", retrieved.Teams)
		}

		if _, err := repo.Project().Get(ctx, types.ProjectID("missing")); !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound for missing project, got %v", err)
		}
	})
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	if err != nil {
		t.Fatalf("failed to create firestore repository: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close firestore repository: %v", err)
		}
	})
	return repo
}

func TestMemoryRepository(t *testing.T) {
	runRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreRepository(t *testing.T) {
	runRepositoryTest(t, newFirestoreRepository)
}
