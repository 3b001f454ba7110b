// Package portfolio holds the live copies of the two aggregates (the
// project list and the profile) and orchestrates every mutation:
// pure domain operation first, write-through to the local store next,
// best-effort remote push last.
//
// The repository itself stays free of I/O decisions: the local store
// is injected, and the remote push is an injected hook the sync
// reconciler registers. Local write failures are logged and the
// session continues memory-only; they never fail an admin save.
package portfolio

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/haemonga/portfolio/internal/app/store/localstore"
	"github.com/haemonga/portfolio/internal/domain/blocks"
	"github.com/haemonga/portfolio/internal/domain/catalog"
	"github.com/haemonga/portfolio/internal/domain/models"
)

// ErrProjectNotFound is returned by block operations addressed at an
// unknown project id.
var ErrProjectNotFound = errors.New("project not found")

// Store is the in-process repository. All access goes through the
// mutex; read accessors return deep copies so callers can never alias
// the live aggregates.
type Store struct {
	mu       sync.RWMutex
	projects []models.Project
	profile  models.Profile

	local  *localstore.Store
	logger *zap.Logger

	// Push hooks, registered by the sync reconciler. May stay nil
	// when no remote is configured.
	pushProjects func([]models.Project)
	pushProfile  func(models.Profile)

	now func() time.Time
}

// New creates a repository backed by the given local store. Call
// Hydrate before serving.
func New(local *localstore.Store, logger *zap.Logger) *Store {
	return &Store{
		local:  local,
		logger: logger,
		now:    time.Now,
	}
}

// SetPushHooks registers the remote push callbacks invoked after each
// successful save. The hooks receive a deep copy and must not block;
// the reconciler runs the actual push on its own goroutine.
func (s *Store) SetPushHooks(projects func([]models.Project), profile func(models.Profile)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pushProjects = projects
	s.pushProfile = profile
}

// Hydrate loads both aggregates from the local store, seeding defaults
// for whichever is absent. Read failures are logged and degrade to the
// seeded defaults for this session; Hydrate itself never fails.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var projects []models.Project
	found, err := s.local.Get(ctx, localstore.KeyProjects, &projects)
	switch {
	case err != nil:
		s.logger.Warn("local projects unreadable, using seed data", zap.Error(err))
		s.projects = models.SeedProjects()
	case !found:
		s.projects = models.SeedProjects()
	default:
		s.projects = projects
	}

	var profile models.Profile
	found, err = s.local.Get(ctx, localstore.KeyProfile, &profile)
	switch {
	case err != nil:
		s.logger.Warn("local profile unreadable, using default", zap.Error(err))
		s.profile = models.DefaultProfile()
	case !found:
		s.profile = models.DefaultProfile()
	default:
		s.profile = profile
	}
}

// Projects returns a deep copy of the project list in display order.
func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneProjects(s.projects)
}

// ProjectBySlug returns the project with the given slug.
func (s *Store) ProjectBySlug(slug string) (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.Slug == slug {
			return p.Clone(), true
		}
	}
	return models.Project{}, false
}

// ProjectByID returns the project with the given id.
func (s *Store) ProjectByID(id string) (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Project{}, false
}

// Profile returns a deep copy of the profile.
func (s *Store) Profile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

// ReplaceAll overwrites both aggregates in memory and in the local
// store. Used by the sync reconciler when a remote pull wins.
func (s *Store) ReplaceAll(ctx context.Context, projects []models.Project, profile models.Profile) {
	s.mu.Lock()
	s.projects = models.CloneProjects(projects)
	s.profile = profile.Clone()
	s.mu.Unlock()

	s.persistProjects(ctx)
	s.persistProfile(ctx)
}

// ReplaceProjects overwrites the project list (remote pull path).
func (s *Store) ReplaceProjects(ctx context.Context, projects []models.Project) {
	s.mu.Lock()
	s.projects = models.CloneProjects(projects)
	s.mu.Unlock()
	s.persistProjects(ctx)
}

// ReplaceProfile overwrites the profile (remote pull path).
func (s *Store) ReplaceProfile(ctx context.Context, profile models.Profile) {
	s.mu.Lock()
	s.profile = profile.Clone()
	s.mu.Unlock()
	s.persistProfile(ctx)
}

// SaveProject upserts candidate, repairing its slug as needed, then
// persists and pushes. Returns the saved project with its final slug.
func (s *Store) SaveProject(ctx context.Context, candidate models.Project) models.Project {
	s.mu.Lock()
	s.projects = catalog.SaveProject(s.projects, candidate, s.now())
	var saved models.Project
	for _, p := range s.projects {
		if p.ID == candidate.ID {
			saved = p.Clone()
			break
		}
	}
	s.mu.Unlock()

	s.persistProjects(ctx)
	s.firePushProjects()
	return saved
}

// DeleteProject removes the project with the given id; absent ids are
// a no-op that still counts as a completed save.
func (s *Store) DeleteProject(ctx context.Context, id string) {
	s.mu.Lock()
	s.projects = catalog.DeleteProject(s.projects, id)
	s.mu.Unlock()

	s.persistProjects(ctx)
	s.firePushProjects()
}

// ReorderProjects swaps the project at index with its neighbor.
func (s *Store) ReorderProjects(ctx context.Context, index int, dir catalog.Direction) {
	s.mu.Lock()
	s.projects = catalog.MoveProject(s.projects, index, dir)
	s.mu.Unlock()

	s.persistProjects(ctx)
	s.firePushProjects()
}

// SaveProfile merges patch into the profile, persists and pushes.
func (s *Store) SaveProfile(ctx context.Context, patch catalog.ProfilePatch) models.Profile {
	s.mu.Lock()
	s.profile = catalog.MergeProfile(s.profile, patch)
	saved := s.profile.Clone()
	s.mu.Unlock()

	s.persistProfile(ctx)
	s.firePushProfile()
	return saved
}

// AppendBlock creates a block of the given kind and appends it to the
// project's sequence.
func (s *Store) AppendBlock(ctx context.Context, projectID string, t models.BlockType) (models.Project, error) {
	block, err := blocks.New(t)
	if err != nil {
		return models.Project{}, err
	}
	return s.editBlocks(ctx, projectID, func(seq []models.ContentBlock) ([]models.ContentBlock, error) {
		return blocks.Append(seq, block), nil
	})
}

// MoveBlock swaps the block at index with its neighbor. Boundary
// indices are a silent no-op.
func (s *Store) MoveBlock(ctx context.Context, projectID string, index int, dir catalog.Direction) (models.Project, error) {
	return s.editBlocks(ctx, projectID, func(seq []models.ContentBlock) ([]models.ContentBlock, error) {
		if dir == catalog.Down {
			return blocks.MoveDown(seq, index), nil
		}
		return blocks.MoveUp(seq, index), nil
	})
}

// RemoveBlock removes the block with the given id; absent ids are a
// forgiving no-op.
func (s *Store) RemoveBlock(ctx context.Context, projectID, blockID string) (models.Project, error) {
	return s.editBlocks(ctx, projectID, func(seq []models.ContentBlock) ([]models.ContentBlock, error) {
		return blocks.Remove(seq, blockID), nil
	})
}

// UpdateBlock applies a field patch to the block at index.
func (s *Store) UpdateBlock(ctx context.Context, projectID string, index int, patch blocks.Patch) (models.Project, error) {
	var applyErr error
	project, err := s.editBlocks(ctx, projectID, func(seq []models.ContentBlock) ([]models.ContentBlock, error) {
		out := blocks.UpdateField(seq, index, func(b *models.ContentBlock) {
			applyErr = patch.Apply(b)
		})
		if applyErr != nil {
			return nil, applyErr
		}
		return out, nil
	})
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// editBlocks runs edit against the named project's block sequence and
// saves the result through the regular project save path.
func (s *Store) editBlocks(ctx context.Context, projectID string, edit func([]models.ContentBlock) ([]models.ContentBlock, error)) (models.Project, error) {
	s.mu.Lock()
	idx := -1
	for i, p := range s.projects {
		if p.ID == projectID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Project{}, ErrProjectNotFound
	}

	seq, err := edit(s.projects[idx].Blocks)
	if err != nil {
		s.mu.Unlock()
		return models.Project{}, err
	}
	updated := s.projects[idx].Clone()
	updated.Blocks = seq
	s.projects[idx] = updated
	saved := updated.Clone()
	s.mu.Unlock()

	s.persistProjects(ctx)
	s.firePushProjects()
	return saved, nil
}

func (s *Store) persistProjects(ctx context.Context) {
	s.mu.RLock()
	projects := models.CloneProjects(s.projects)
	s.mu.RUnlock()
	if err := s.local.Put(ctx, localstore.KeyProjects, projects); err != nil {
		s.logger.Warn("projects write did not persist", zap.Error(err))
	}
}

func (s *Store) persistProfile(ctx context.Context) {
	s.mu.RLock()
	profile := s.profile.Clone()
	s.mu.RUnlock()
	if err := s.local.Put(ctx, localstore.KeyProfile, profile); err != nil {
		s.logger.Warn("profile write did not persist", zap.Error(err))
	}
}

func (s *Store) firePushProjects() {
	s.mu.RLock()
	hook := s.pushProjects
	projects := models.CloneProjects(s.projects)
	s.mu.RUnlock()
	if hook != nil {
		hook(projects)
	}
}

func (s *Store) firePushProfile() {
	s.mu.RLock()
	hook := s.pushProfile
	profile := s.profile.Clone()
	s.mu.RUnlock()
	if hook != nil {
		hook(profile)
	}
}
