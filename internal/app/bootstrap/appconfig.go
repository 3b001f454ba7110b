// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, logging, CORS, and request body limits. AppConfig is where
// everything specific to this application lives.
type AppConfig struct {
	// Local store configuration. The sqlite file is the source of
	// truth for all content; it is created on first start.
	LocalStorePath string // path to the sqlite database file (default: ./data/portfolio.db)

	// Default remote mirror configuration. A connection configured
	// from the admin panel is persisted in the local store and takes
	// precedence over these values on the next start.
	MongoURI      string // MongoDB connection string (blank disables the mirror)
	MongoDatabase string // database name within MongoDB

	// Remote sync behavior
	SyncPullTimeout time.Duration // bound on the startup pull (default: 5s)

	// Admin access configuration
	AdminPassphrase string        // passphrase for the admin panel (plain or bcrypt hash)
	SessionKey      string        // secret key for signing session cookies (must be strong in production)
	SessionName     string        // cookie name for sessions (default: portfolio-session)
	SessionMaxAge   time.Duration // maximum session cookie lifetime (default: 24h)

	// CSRF protection configuration
	CSRFKey string // secret key for CSRF token signing (32 bytes, must be strong in production)
}
