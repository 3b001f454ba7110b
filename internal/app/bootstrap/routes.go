// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	adminfeature "github.com/haemonga/portfolio/internal/app/features/admin"
	healthfeature "github.com/haemonga/portfolio/internal/app/features/health"
	sitefeature "github.com/haemonga/portfolio/internal/app/features/site"
	appresources "github.com/haemonga/portfolio/internal/app/resources"
	"github.com/haemonga/portfolio/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend connections, and any
// Startup hooks have completed.
//
// Route groups:
//   - Public site: session-less reads over the repository snapshot.
//   - Admin: session auth + CSRF for the pages; the JSON API under
//     /admin/api is session auth only, since it is driven by same-site
//     fetch calls from the panel.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.AdminPassphrase, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	r := chi.NewRouter()

	// Request timeout middleware: prevents requests from hanging indefinitely.
	// Generous because admin saves may carry inline media data URLs.
	r.Use(chimw.Timeout(60 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// CSRF protection middleware with a path-based exemption for the
	// admin JSON API, which is session-gated and called from same-site
	// scripts rather than form posts.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("portfolio_csrf"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			http.Error(w, "CSRF token invalid or missing", http.StatusForbidden)
		})),
	}
	// In dev mode, trust localhost origins for CSRF validation.
	if !secure {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	csrfProtect := csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...)

	csrfMiddleware := func(next http.Handler) http.Handler {
		csrfHandler := csrfProtect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if strings.HasPrefix(req.URL.Path, "/admin/api/") {
				next.ServeHTTP(w, req)
				return
			}
			csrfHandler.ServeHTTP(w, req)
		})
	}
	r.Use(csrfMiddleware)

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Local, deps.Sync, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// /static/* serves embedded assets (bundled into the binary)
	r.Handle("/static/*", appresources.AssetsHandler("/static"))

	// Admin panel and JSON API
	adminHandler := adminfeature.NewHandler(deps.Repo, deps.Sync, sessionMgr, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler, sessionMgr))

	// Public site
	siteHandler := sitefeature.NewHandler(deps.Repo, logger)
	r.Mount("/", sitefeature.Routes(siteHandler))

	return r, nil
}
