package portfolio

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/haemonga/portfolio/internal/domain/blocks"
	"github.com/haemonga/portfolio/internal/domain/catalog"
	"github.com/haemonga/portfolio/internal/domain/models"
	"github.com/haemonga/portfolio/internal/testutil"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(testutil.TempStore(t), zap.NewNop())
	s.Hydrate(testutil.TestContext(t))
	return s
}

func TestHydrateSeedsOnFirstRun(t *testing.T) {
	s := newTestStore(t)

	if got, want := s.Projects(), models.SeedProjects(); !reflect.DeepEqual(got, want) {
		t.Errorf("fresh store projects = %#v, want seed", got)
	}
	if got, want := s.Profile(), models.DefaultProfile(); !reflect.DeepEqual(got, want) {
		t.Errorf("fresh store profile = %#v, want default", got)
	}
}

func TestHydrateLoadsPersistedContent(t *testing.T) {
	local := testutil.TempStore(t)
	ctx := testutil.TestContext(t)

	s := New(local, zap.NewNop())
	s.Hydrate(ctx)
	s.SaveProject(ctx, models.Project{ID: "p9", Title: "Persisted Work"})
	name := "Persisted Owner"
	s.SaveProfile(ctx, catalog.ProfilePatch{Name: &name})

	// A second repository over the same local store sees the saves,
	// not the seeds.
	reloaded := New(local, zap.NewNop())
	reloaded.Hydrate(ctx)

	if _, ok := reloaded.ProjectByID("p9"); !ok {
		t.Error("persisted project lost across hydrate")
	}
	if got := reloaded.Profile().Name; got != "Persisted Owner" {
		t.Errorf("profile name = %q", got)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := newTestStore(t)

	list := s.Projects()
	list[0].Title = "mutated"
	list[0].Blocks[0].ID = "mutated"

	if got := s.Projects()[0]; got.Title == "mutated" || got.Blocks[0].ID == "mutated" {
		t.Error("accessor returned aliased project data")
	}

	profile := s.Profile()
	profile.Strengths[0] = "mutated"
	if s.Profile().Strengths[0] == "mutated" {
		t.Error("accessor returned aliased profile data")
	}
}

func TestSaveProjectRepairsSlugAndPersists(t *testing.T) {
	s := newTestStore(t)
	ctx := testutil.TestContext(t)

	saved := s.SaveProject(ctx, models.Project{ID: "p2", Title: "Echo & Flow!!"})
	if saved.Slug != "echo-flow" {
		t.Errorf("slug = %q, want echo-flow", saved.Slug)
	}

	got, ok := s.ProjectBySlug("echo-flow")
	if !ok || got.ID != "p2" {
		t.Errorf("ProjectBySlug after save: ok=%v project=%#v", ok, got)
	}
}

func TestDeleteProject(t *testing.T) {
	s := newTestStore(t)
	ctx := testutil.TestContext(t)

	id := s.Projects()[0].ID
	s.DeleteProject(ctx, id)

	if _, ok := s.ProjectByID(id); ok {
		t.Error("deleted project still present")
	}
}

func TestReorderProjects(t *testing.T) {
	s := newTestStore(t)
	ctx := testutil.TestContext(t)

	s.SaveProject(ctx, models.Project{ID: "p2", Title: "Second"})
	before := s.Projects()

	s.ReorderProjects(ctx, 1, catalog.Up)
	after := s.Projects()

	if after[0].ID != before[1].ID || after[1].ID != before[0].ID {
		t.Errorf("reorder did not swap: %v -> %v", before[0].ID, after[0].ID)
	}

	// Boundary move is a no-op.
	s.ReorderProjects(ctx, 0, catalog.Up)
	if got := s.Projects(); got[0].ID != after[0].ID {
		t.Error("boundary reorder changed order")
	}
}

func TestBlockOperations(t *testing.T) {
	s := newTestStore(t)
	ctx := testutil.TestContext(t)
	id := s.Projects()[0].ID
	baseLen := len(s.Projects()[0].Blocks)

	// Append
	project, err := s.AppendBlock(ctx, id, models.BlockText)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(project.Blocks) != baseLen+1 {
		t.Fatalf("block count = %d, want %d", len(project.Blocks), baseLen+1)
	}
	appended := project.Blocks[len(project.Blocks)-1]

	// Move up
	project, err = s.MoveBlock(ctx, id, len(project.Blocks)-1, catalog.Up)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if project.Blocks[len(project.Blocks)-2].ID != appended.ID {
		t.Error("move up did not relocate the block")
	}

	// Update
	idx := len(project.Blocks) - 2
	project, err = s.UpdateBlock(ctx, id, idx, blocks.Patch{Data: json.RawMessage(`"edited"`)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := project.Blocks[idx].Data.(models.TextData); got != "edited" {
		t.Errorf("updated data = %q", got)
	}

	// Remove
	project, err = s.RemoveBlock(ctx, id, appended.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(project.Blocks) != baseLen {
		t.Errorf("block count after remove = %d, want %d", len(project.Blocks), baseLen)
	}
}

func TestBlockOperationsUnknownProject(t *testing.T) {
	s := newTestStore(t)
	ctx := testutil.TestContext(t)

	if _, err := s.AppendBlock(ctx, "missing", models.BlockText); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("append err = %v, want ErrProjectNotFound", err)
	}
	if _, err := s.RemoveBlock(ctx, "missing", "b1"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("remove err = %v, want ErrProjectNotFound", err)
	}
}

func TestAppendBlockInvalidType(t *testing.T) {
	s := newTestStore(t)
	id := s.Projects()[0].ID

	_, err := s.AppendBlock(testutil.TestContext(t), id, models.BlockType("hologram"))
	if !errors.Is(err, blocks.ErrInvalidBlockType) {
		t.Errorf("err = %v, want ErrInvalidBlockType", err)
	}
}

func TestUpdateBlockBadPatchLeavesSequence(t *testing.T) {
	s := newTestStore(t)
	ctx := testutil.TestContext(t)
	id := s.Projects()[0].ID
	before, _ := s.ProjectByID(id)

	// Text block at index 3 in the seed; feed it a list payload.
	_, err := s.UpdateBlock(ctx, id, 3, blocks.Patch{Data: json.RawMessage(`["nope"]`)})
	if err == nil {
		t.Fatal("expected decode error")
	}

	after, _ := s.ProjectByID(id)
	if !reflect.DeepEqual(before, after) {
		t.Error("failed update changed the project")
	}
}

func TestSaveProfileMerge(t *testing.T) {
	s := newTestStore(t)

	alias := "new alias"
	saved := s.SaveProfile(testutil.TestContext(t), catalog.ProfilePatch{Alias: &alias})

	if saved.Alias != "new alias" {
		t.Errorf("alias = %q", saved.Alias)
	}
	if saved.Name != models.DefaultProfile().Name {
		t.Error("untouched profile field changed")
	}
}

func TestPushHooksFireWithCopies(t *testing.T) {
	s := newTestStore(t)
	ctx := testutil.TestContext(t)

	var pushedProjects [][]models.Project
	var pushedProfiles []models.Profile
	s.SetPushHooks(
		func(p []models.Project) { pushedProjects = append(pushedProjects, p) },
		func(p models.Profile) { pushedProfiles = append(pushedProfiles, p) },
	)

	s.SaveProject(ctx, models.Project{ID: "p5", Title: "Hooked"})
	if len(pushedProjects) != 1 {
		t.Fatalf("project push hook fired %d times, want 1", len(pushedProjects))
	}

	// The hook's copy does not alias the live list.
	pushedProjects[0][0].Title = "mutated"
	if s.Projects()[0].Title == "mutated" {
		t.Error("push hook received aliased data")
	}

	bio := "updated"
	s.SaveProfile(ctx, catalog.ProfilePatch{Bio: &bio})
	if len(pushedProfiles) != 1 {
		t.Fatalf("profile push hook fired %d times, want 1", len(pushedProfiles))
	}
}

func TestReplaceAllWinsOverLocal(t *testing.T) {
	s := newTestStore(t)
	ctx := testutil.TestContext(t)

	remoteProjects := []models.Project{{ID: "r1", Title: "Remote Work", Slug: "remote-work"}}
	remoteProfile := models.Profile{Name: "Remote Owner"}

	s.ReplaceAll(ctx, remoteProjects, remoteProfile)

	if got := s.Projects(); len(got) != 1 || got[0].ID != "r1" {
		t.Errorf("projects after replace = %#v", got)
	}
	if got := s.Profile().Name; got != "Remote Owner" {
		t.Errorf("profile after replace = %q", got)
	}

	// Replacement is persisted, not memory-only.
	reloaded := New(s.local, zap.NewNop())
	reloaded.Hydrate(ctx)
	if _, ok := reloaded.ProjectByID("r1"); !ok {
		t.Error("replaced content not persisted")
	}
}
