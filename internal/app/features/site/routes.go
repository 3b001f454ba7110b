package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the public pages.
//
// When mounted at /:
//   - GET /             - one-page home
//   - GET /work/{slug}  - project page
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Home)
	r.Get("/work/{slug}", h.Work)
	r.NotFound(h.NotFound)
	return r
}
