package syncer

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/haemonga/portfolio/internal/app/store/localstore"
	"github.com/haemonga/portfolio/internal/app/store/portfolio"
	"github.com/haemonga/portfolio/internal/app/store/remote"
	"github.com/haemonga/portfolio/internal/domain/models"
	"github.com/haemonga/portfolio/internal/testutil"
)

func newTestReconciler(t *testing.T) (*Reconciler, *portfolio.Store, *localstore.Store) {
	t.Helper()
	local := testutil.TempStore(t)
	repo := portfolio.New(local, zap.NewNop())
	repo.Hydrate(testutil.TestContext(t))
	r := New(repo, remote.New(zap.NewNop()), local, zap.NewNop())
	return r, repo, local
}

func TestStatusUnconfigured(t *testing.T) {
	r, _, _ := newTestReconciler(t)

	status := r.Status()
	if status.Configured {
		t.Error("unconfigured reconciler reports Configured")
	}
	if status.Database != "" || status.LastPushError != "" {
		t.Errorf("unexpected status fields: %+v", status)
	}
}

func TestPullOnLoadWithoutRemoteKeepsLocal(t *testing.T) {
	r, repo, _ := newTestReconciler(t)
	ctx := testutil.TestContext(t)

	repo.SaveProject(ctx, models.Project{ID: "p7", Title: "Local Only"})
	before := repo.Projects()

	r.PullOnLoad(ctx)

	if got := repo.Projects(); !reflect.DeepEqual(got, before) {
		t.Error("pull without a remote changed local data")
	}
}

func TestConfigureRejectsInvalidConfig(t *testing.T) {
	r, _, local := newTestReconciler(t)
	ctx := testutil.TestContext(t)

	if err := r.Configure(ctx, remote.Config{URI: "", Database: "x"}); err == nil {
		t.Fatal("expected validation error")
	}

	var cfg remote.Config
	found, err := local.Get(ctx, localstore.KeyRemoteConfig, &cfg)
	if err != nil {
		t.Fatalf("read config key: %v", err)
	}
	if found {
		t.Error("rejected config was persisted")
	}
	if r.Status().Configured {
		t.Error("rejected config marked the remote configured")
	}
}

func TestRecordPush(t *testing.T) {
	r, _, _ := newTestReconciler(t)

	r.recordPush(errors.New("server selection timeout"), "projects")
	status := r.Status()
	if status.LastPushError != "server selection timeout" {
		t.Errorf("LastPushError = %q", status.LastPushError)
	}
	if status.LastPushAt.IsZero() {
		t.Error("LastPushAt not recorded")
	}

	// A later success clears the passive notice.
	r.recordPush(nil, "projects")
	if got := r.Status().LastPushError; got != "" {
		t.Errorf("LastPushError after success = %q", got)
	}

	// An unconfigured mirror is not a failure worth surfacing.
	r.recordPush(errors.New("oops"), "profile")
	r.recordPush(remote.ErrNotConfigured, "profile")
	if got := r.Status().LastPushError; got != "" {
		t.Errorf("LastPushError after unconfigured push = %q", got)
	}
}

func TestConfigurePersistsWorkingConfig(t *testing.T) {
	db := testutil.SetupTestDB(t)

	r, _, local := newTestReconciler(t)
	ctx := testutil.TestContext(t)

	cfg := remote.Config{URI: testutil.TestDBURI, Database: db.Name()}
	if err := r.Configure(ctx, cfg); err != nil {
		t.Fatalf("configure: %v", err)
	}

	var saved remote.Config
	found, err := local.Get(ctx, localstore.KeyRemoteConfig, &saved)
	if err != nil || !found {
		t.Fatalf("config key: found=%v err=%v", found, err)
	}
	if saved != cfg {
		t.Errorf("persisted config = %+v, want %+v", saved, cfg)
	}

	status := r.Status()
	if !status.Configured || status.Database != db.Name() {
		t.Errorf("status after configure: %+v", status)
	}
}

func TestPullOnLoadRemoteWins(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)

	// Seed the mirror through a separate connection.
	seed := remote.New(zap.NewNop())
	if err := seed.Configure(ctx, remote.Config{URI: testutil.TestDBURI, Database: db.Name()}); err != nil {
		t.Fatalf("configure seed store: %v", err)
	}
	remoteProjects := []models.Project{{ID: "r1", Title: "Remote Work", Slug: "remote-work"}}
	remoteProfile := models.Profile{Name: "Remote Owner"}
	if err := seed.PushProjects(ctx, remoteProjects); err != nil {
		t.Fatalf("seed projects: %v", err)
	}
	if err := seed.PushProfile(ctx, remoteProfile); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	if err := seed.Close(ctx); err != nil {
		t.Fatalf("close seed store: %v", err)
	}

	r, repo, _ := newTestReconciler(t)
	if err := r.Configure(ctx, remote.Config{URI: testutil.TestDBURI, Database: db.Name()}); err != nil {
		t.Fatalf("configure: %v", err)
	}
	r.SetPullTimeout(10 * time.Second)
	r.PullOnLoad(ctx)

	if got := repo.Projects(); len(got) != 1 || got[0].ID != "r1" {
		t.Errorf("projects after pull = %#v", got)
	}
	if got := repo.Profile().Name; got != "Remote Owner" {
		t.Errorf("profile after pull = %q", got)
	}
}

func TestPullOnLoadAbsentDocumentsKeepLocal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)

	r, repo, _ := newTestReconciler(t)
	if err := r.Configure(ctx, remote.Config{URI: testutil.TestDBURI, Database: db.Name()}); err != nil {
		t.Fatalf("configure: %v", err)
	}

	before := repo.Projects()
	r.PullOnLoad(ctx)

	if got := repo.Projects(); !reflect.DeepEqual(got, before) {
		t.Error("pull against an empty mirror changed local data")
	}
}
