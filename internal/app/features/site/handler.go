// Package site serves the public pages: the one-page home and the
// per-project work pages. Everything it shows comes from the
// repository's in-memory snapshot, so requests never touch a store.
package site

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/haemonga/portfolio/internal/app/store/portfolio"
	"github.com/haemonga/portfolio/internal/domain/render"
)

// Handler provides the public page handlers.
type Handler struct {
	repo   *portfolio.Store
	logger *zap.Logger
}

// NewHandler creates a new site Handler.
func NewHandler(repo *portfolio.Store, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// Home renders the one-page site: hero, about, works, contact.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	profile := h.repo.Profile()
	vm := HomeVM{
		Title:    siteTitle(profile.HomeTitle),
		Profile:  profile,
		Projects: h.repo.Projects(),
	}
	templates.Render(w, r, "site/home", vm)
}

// Work renders one project page with the full block sequence.
func (h *Handler) Work(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	project, ok := h.repo.ProjectBySlug(slug)
	if !ok {
		h.NotFound(w, r)
		return
	}
	vm := WorkVM{
		Title:    project.Title,
		Project:  project,
		Projects: h.repo.Projects(),
		Content:  render.Fragment(project.Blocks),
	}
	templates.Render(w, r, "site/work", vm)
}

// NotFound renders the 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "site/notfound", NotFoundVM{Title: "Not Found"})
}

func siteTitle(homeTitle string) string {
	if homeTitle == "" {
		return "Portfolio"
	}
	return homeTitle
}
