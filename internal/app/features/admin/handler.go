// Package admin provides the owner's editing surface: the
// passphrase-gated panel page plus the JSON API the panel drives.
// Every mutation goes through the repository; this package never
// touches the stores directly.
package admin

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	"github.com/haemonga/portfolio/internal/app/store/portfolio"
	"github.com/haemonga/portfolio/internal/app/store/remote"
	"github.com/haemonga/portfolio/internal/app/system/auth"
	"github.com/haemonga/portfolio/internal/app/system/jsonutil"
	"github.com/haemonga/portfolio/internal/app/system/syncer"
	"github.com/haemonga/portfolio/internal/domain/blocks"
	"github.com/haemonga/portfolio/internal/domain/catalog"
	"github.com/haemonga/portfolio/internal/domain/models"
)

// maxBodyBytes bounds admin request bodies. Generous because media
// fields may carry inline data URLs.
const maxBodyBytes = 64 << 20

// Handler handles the admin pages and API.
type Handler struct {
	repo     *portfolio.Store
	sync     *syncer.Reconciler
	sessions *auth.SessionManager
	logger   *zap.Logger
}

// NewHandler creates a new admin handler.
func NewHandler(repo *portfolio.Store, sync *syncer.Reconciler, sessions *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		repo:     repo,
		sync:     sync,
		sessions: sessions,
		logger:   logger,
	}
}

// Panel renders the admin panel, or the login form when the session
// is not yet unlocked.
func (h *Handler) Panel(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.IsAdmin(r) {
		templates.Render(w, r, "admin/login", LoginVM{
			Title:     "Admin",
			CSRFField: csrf.TemplateField(r),
		})
		return
	}
	templates.Render(w, r, "admin/panel", PanelVM{
		Title:     "Admin",
		CSRFToken: csrf.Token(r),
	})
}

// Login checks the submitted passphrase and unlocks the session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if !h.sessions.CheckPassphrase(r.PostFormValue("passphrase")) {
		h.logger.Warn("admin login rejected", zap.String("remote_addr", r.RemoteAddr))
		templates.Render(w, r, "admin/login", LoginVM{
			Title:     "Admin",
			Error:     "Wrong passphrase.",
			CSRFField: csrf.TemplateField(r),
		})
		return
	}
	if err := h.sessions.Login(w, r); err != nil {
		h.logger.Error("admin session save failed", zap.Error(err))
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout clears the admin session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(w, r); err != nil {
		h.logger.Warn("admin logout failed", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────*
| JSON API                                                            |
*─────────────────────────────────────────────────────────────────────*/

// ListProjects handles GET /admin/api/projects.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, projectListResponse{List: h.repo.Projects()})
}

// SaveProject handles POST /admin/api/projects. The body is a full
// project record; the save never fails, it repairs the slug instead.
func (h *Handler) SaveProject(w http.ResponseWriter, r *http.Request) {
	var candidate models.Project
	if err := decodeBody(w, r, &candidate); err != nil {
		jsonutil.BadRequest(w, "invalid project payload: "+err.Error())
		return
	}
	if candidate.ID == "" {
		jsonutil.BadRequest(w, "project id is required")
		return
	}
	saved := h.repo.SaveProject(r.Context(), candidate)
	h.logger.Info("project saved",
		zap.String("id", saved.ID),
		zap.String("slug", saved.Slug))
	jsonutil.OK(w, saved)
}

// DeleteProject handles DELETE /admin/api/projects/{id}. Confirmation
// happens in the panel before the request is made.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.repo.DeleteProject(r.Context(), id)
	h.logger.Info("project deleted", zap.String("id", id))
	jsonutil.OK(w, projectListResponse{List: h.repo.Projects()})
}

// ReorderProjects handles POST /admin/api/projects/reorder.
func (h *Handler) ReorderProjects(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeBody(w, r, &req); err != nil {
		jsonutil.BadRequest(w, "invalid reorder payload: "+err.Error())
		return
	}
	h.repo.ReorderProjects(r.Context(), req.Index, req.Direction)
	jsonutil.OK(w, projectListResponse{List: h.repo.Projects()})
}

// AppendBlock handles POST /admin/api/projects/{id}/blocks.
func (h *Handler) AppendBlock(w http.ResponseWriter, r *http.Request) {
	var req appendBlockRequest
	if err := decodeBody(w, r, &req); err != nil {
		jsonutil.BadRequest(w, "invalid block payload: "+err.Error())
		return
	}
	project, err := h.repo.AppendBlock(r.Context(), chi.URLParam(r, "id"), req.Type)
	if err != nil {
		h.writeRepoError(w, err)
		return
	}
	jsonutil.OK(w, project)
}

// MoveBlock handles POST /admin/api/projects/{id}/blocks/{index}/move.
func (h *Handler) MoveBlock(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		jsonutil.BadRequest(w, "invalid block index")
		return
	}
	var req moveBlockRequest
	if err := decodeBody(w, r, &req); err != nil {
		jsonutil.BadRequest(w, "invalid move payload: "+err.Error())
		return
	}
	project, err := h.repo.MoveBlock(r.Context(), chi.URLParam(r, "id"), index, req.Direction)
	if err != nil {
		h.writeRepoError(w, err)
		return
	}
	jsonutil.OK(w, project)
}

// UpdateBlock handles PATCH /admin/api/projects/{id}/blocks/{index}.
func (h *Handler) UpdateBlock(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		jsonutil.BadRequest(w, "invalid block index")
		return
	}
	var req updateBlockRequest
	if err := decodeBody(w, r, &req); err != nil {
		jsonutil.BadRequest(w, "invalid patch payload: "+err.Error())
		return
	}
	project, err := h.repo.UpdateBlock(r.Context(), chi.URLParam(r, "id"), index, req.Patch)
	if err != nil {
		h.writeRepoError(w, err)
		return
	}
	jsonutil.OK(w, project)
}

// RemoveBlock handles DELETE /admin/api/projects/{id}/blocks/{blockID}.
func (h *Handler) RemoveBlock(w http.ResponseWriter, r *http.Request) {
	project, err := h.repo.RemoveBlock(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "blockID"))
	if err != nil {
		h.writeRepoError(w, err)
		return
	}
	jsonutil.OK(w, project)
}

// GetProfile handles GET /admin/api/profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.repo.Profile())
}

// SaveProfile handles POST /admin/api/profile with a partial patch.
func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var patch catalog.ProfilePatch
	if err := decodeBody(w, r, &patch); err != nil {
		jsonutil.BadRequest(w, "invalid profile payload: "+err.Error())
		return
	}
	saved := h.repo.SaveProfile(r.Context(), patch)
	h.logger.Info("profile saved")
	jsonutil.OK(w, saved)
}

// SyncStatus handles GET /admin/api/sync.
func (h *Handler) SyncStatus(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.sync.Status())
}

// ConfigureRemote handles POST /admin/api/sync. The body is the pasted
// connection JSON; a malformed or unreachable config is reported and
// the previous working configuration stays in effect.
func (h *Handler) ConfigureRemote(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		jsonutil.BadRequest(w, "unreadable body")
		return
	}
	cfg, err := remote.ParseConfig(string(raw))
	if err != nil {
		jsonutil.BadRequest(w, err.Error())
		return
	}
	if err := h.sync.Configure(r.Context(), cfg); err != nil {
		h.logger.Warn("remote configuration rejected", zap.Error(err))
		jsonutil.BadRequest(w, err.Error())
		return
	}
	jsonutil.OK(w, h.sync.Status())
}

// Export handles GET /admin/api/export: both aggregates as one JSON
// document for manual backup.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, exportResponse{
		Projects: h.repo.Projects(),
		Profile:  h.repo.Profile(),
	})
}

// writeRepoError maps repository errors onto API responses.
func (h *Handler) writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, portfolio.ErrProjectNotFound):
		jsonutil.NotFound(w, "project not found")
	case errors.Is(err, blocks.ErrInvalidBlockType):
		jsonutil.BadRequest(w, err.Error())
	default:
		h.logger.Error("admin operation failed", zap.Error(err))
		jsonutil.BadRequest(w, err.Error())
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dest)
}
