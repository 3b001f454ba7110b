package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/haemonga/portfolio/internal/app/system/auth"
)

// Routes returns a router with the admin pages and JSON API.
//
// When mounted at /admin:
//   - GET  /admin                 - panel (login form when locked)
//   - POST /admin/login           - passphrase check
//   - POST /admin/logout          - clear session
//   - /admin/api/*                - JSON API, session required
func Routes(h *Handler, sessions *auth.SessionManager) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Panel)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	r.Route("/api", func(api chi.Router) {
		api.Use(sessions.RequireAdmin)

		api.Get("/projects", h.ListProjects)
		api.Post("/projects", h.SaveProject)
		api.Post("/projects/reorder", h.ReorderProjects)
		api.Delete("/projects/{id}", h.DeleteProject)

		api.Post("/projects/{id}/blocks", h.AppendBlock)
		api.Patch("/projects/{id}/blocks/{index}", h.UpdateBlock)
		api.Post("/projects/{id}/blocks/{index}/move", h.MoveBlock)
		api.Delete("/projects/{id}/blocks/{blockID}", h.RemoveBlock)

		api.Get("/profile", h.GetProfile)
		api.Post("/profile", h.SaveProfile)

		api.Get("/sync", h.SyncStatus)
		api.Post("/sync", h.ConfigureRemote)

		api.Get("/export", h.Export)
	})

	return r
}
