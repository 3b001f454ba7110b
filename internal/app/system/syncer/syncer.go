// Package syncer reconciles the local aggregates with the remote
// document mirror: one bounded pull at startup (remote wins) and a
// best-effort push after every save.
//
// This is deliberately not a consistency protocol. Two devices editing
// concurrently clobber each other on whichever pushes last; the site
// has a single owner and that trade is accepted.
package syncer

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/haemonga/portfolio/internal/app/store/localstore"
	"github.com/haemonga/portfolio/internal/app/store/portfolio"
	"github.com/haemonga/portfolio/internal/app/store/remote"
	"github.com/haemonga/portfolio/internal/domain/models"
)

// DefaultPullTimeout bounds the startup pull so a slow remote never
// delays readiness.
const DefaultPullTimeout = 5 * time.Second

// DefaultPushTimeout bounds each background push.
const DefaultPushTimeout = 15 * time.Second

// Status is the admin-visible sync state, including the passive
// warning surfaced after a failed push.
type Status struct {
	Configured    bool      `json:"configured"`
	Database      string    `json:"database,omitempty"`
	LastPushError string    `json:"lastPushError,omitempty"`
	LastPushAt    time.Time `json:"lastPushAt,omitempty"`
}

// Reconciler wires the repository, the local store and the remote
// mirror together.
type Reconciler struct {
	repo   *portfolio.Store
	remote *remote.Store
	local  *localstore.Store
	logger *zap.Logger

	pullTimeout time.Duration
	pushTimeout time.Duration

	mu            sync.Mutex
	lastPushError string
	lastPushAt    time.Time
}

// New creates a reconciler and registers its push hooks on the
// repository. Pushes run on their own goroutine per save; a stale push
// losing the race to a newer one is an accepted outcome.
func New(repo *portfolio.Store, rs *remote.Store, local *localstore.Store, logger *zap.Logger) *Reconciler {
	r := &Reconciler{
		repo:        repo,
		remote:      rs,
		local:       local,
		logger:      logger,
		pullTimeout: DefaultPullTimeout,
		pushTimeout: DefaultPushTimeout,
	}

	repo.SetPushHooks(
		func(projects []models.Project) {
			go r.pushProjects(projects)
		},
		func(profile models.Profile) {
			go r.pushProfile(profile)
		},
	)
	return r
}

// SetPullTimeout overrides the startup pull bound.
func (r *Reconciler) SetPullTimeout(d time.Duration) {
	if d > 0 {
		r.pullTimeout = d
	}
}

// PullOnLoad attempts exactly one pull per aggregate. A successful
// pull unconditionally overwrites memory and the local store; any
// failure keeps the locally hydrated value and is only logged. Local
// hydration must have completed before this is called.
func (r *Reconciler) PullOnLoad(ctx context.Context) {
	if !r.remote.Configured() {
		r.logger.Info("remote mirror not configured, serving local data")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, r.pullTimeout)
	defer cancel()

	profile, err := r.remote.PullProfile(ctx)
	switch {
	case err == nil:
		r.repo.ReplaceProfile(ctx, profile)
		r.logger.Info("remote profile pulled, local copy overwritten")
	case errors.Is(err, mongo.ErrNoDocuments):
		r.logger.Info("remote profile document absent, keeping local data")
	default:
		r.logger.Warn("remote profile pull failed, keeping local data", zap.Error(err))
	}

	projects, err := r.remote.PullProjects(ctx)
	switch {
	case err == nil:
		r.repo.ReplaceProjects(ctx, projects)
		r.logger.Info("remote projects pulled, local copy overwritten",
			zap.Int("count", len(projects)))
	case errors.Is(err, mongo.ErrNoDocuments):
		r.logger.Info("remote projects document absent, keeping local data")
	default:
		r.logger.Warn("remote projects pull failed, keeping local data", zap.Error(err))
	}
}

// Configure applies a new remote configuration, persisting it to the
// local store on success. A failing configuration leaves the previous
// working connection untouched.
func (r *Reconciler) Configure(ctx context.Context, cfg remote.Config) error {
	if err := r.remote.Configure(ctx, cfg); err != nil {
		return err
	}
	if err := r.local.Put(ctx, localstore.KeyRemoteConfig, cfg); err != nil {
		r.logger.Warn("remote config write did not persist", zap.Error(err))
	}
	return nil
}

// Status reports the current sync state.
func (r *Reconciler) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Status{
		Configured:    r.remote.Configured(),
		Database:      r.remote.Config().Database,
		LastPushError: r.lastPushError,
		LastPushAt:    r.lastPushAt,
	}
}

func (r *Reconciler) pushProjects(projects []models.Project) {
	ctx, cancel := context.WithTimeout(context.Background(), r.pushTimeout)
	defer cancel()
	r.recordPush(r.remote.PushProjects(ctx, projects), "projects")
}

func (r *Reconciler) pushProfile(profile models.Profile) {
	ctx, cancel := context.WithTimeout(context.Background(), r.pushTimeout)
	defer cancel()
	r.recordPush(r.remote.PushProfile(ctx, profile), "profile")
}

// recordPush logs a push outcome and keeps the latest failure around
// as a passive notice for the admin surface. The local save has
// already succeeded, so a failed push is never rolled back.
func (r *Reconciler) recordPush(err error, doc string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastPushAt = time.Now().UTC()

	switch {
	case err == nil:
		r.lastPushError = ""
		r.logger.Debug("remote push succeeded", zap.String("doc", doc))
	case errors.Is(err, remote.ErrNotConfigured):
		// No mirror: nothing to surface.
		r.lastPushError = ""
	default:
		r.lastPushError = err.Error()
		r.logger.Warn("remote push failed, local save unaffected",
			zap.String("doc", doc), zap.Error(err))
	}
}
