// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/haemonga/portfolio/internal/app/resources"
)

// Startup runs once after backends are connected, but before the HTTP
// handler is built and requests are served.
//
// It loads shared templates, hydrates the in-memory repository from
// the local store (seeding defaults on first run), and then attempts
// the startup pull from the remote mirror. The pull is bounded and
// best effort; local content serves until it finishes, and stays in
// place if the mirror is unreachable.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	deps.Repo.Hydrate(ctx)
	deps.Sync.PullOnLoad(ctx)

	return nil
}
