// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "PORTFOLIO"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: local_store_path, mongo_uri, etc.
//   - Environment variables: PORTFOLIO_LOCAL_STORE_PATH, PORTFOLIO_MONGO_URI, etc.
//   - Command-line flags: --local_store_path, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "local_store_path", Default: "./data/portfolio.db", Desc: "Path to the sqlite content database"},

	{Name: "mongo_uri", Default: "", Desc: "Default MongoDB mirror URI (blank disables the mirror)"},
	{Name: "mongo_database", Default: "portfolio", Desc: "MongoDB database name for the mirror"},

	{Name: "sync_pull_timeout", Default: "5s", Desc: "Bound on the startup pull from the remote mirror"},

	{Name: "admin_passphrase", Default: "admin1234!", Desc: "Admin panel passphrase (plain or bcrypt hash; change in production)"},
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "portfolio-session", Desc: "Session cookie name"},
	{Name: "session_max_age", Default: "24h", Desc: "Session cookie max age (e.g., 24h, 720h, 30m)"},

	{Name: "csrf_key", Default: "dev-only-csrf-key-please-change-0123456789", Desc: "CSRF token signing key (32+ chars in production)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		LocalStorePath: appValues.String("local_store_path"),

		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		SyncPullTimeout: appValues.Duration("sync_pull_timeout", 5*time.Second),

		AdminPassphrase: appValues.String("admin_passphrase"),
		SessionKey:      appValues.String("session_key"),
		SessionName:     appValues.String("session_name"),
		SessionMaxAge:   appValues.Duration("session_max_age", 24*time.Hour),

		CSRFKey: appValues.String("csrf_key"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The remote mirror is optional, so its URI is only validated when set.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.LocalStorePath == "" {
		return fmt.Errorf("local_store_path must not be empty")
	}

	if appCfg.MongoURI != "" {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	}

	if appCfg.AdminPassphrase == "" {
		return fmt.Errorf("admin_passphrase must not be empty")
	}

	return nil
}
