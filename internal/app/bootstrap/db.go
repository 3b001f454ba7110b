// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/haemonga/portfolio/internal/app/store/localstore"
	"github.com/haemonga/portfolio/internal/app/store/portfolio"
	"github.com/haemonga/portfolio/internal/app/store/remote"
	"github.com/haemonga/portfolio/internal/app/system/syncer"
)

// ConnectDB connects to the backends this app uses.
//
// WAFFLE calls this after configuration is loaded but before Startup.
// The local sqlite store must open or startup aborts. The remote
// MongoDB mirror is best effort: a bad or unreachable configuration is
// logged and the app runs local-only until a working connection is
// applied from the admin panel.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	local, err := localstore.Open(appCfg.LocalStorePath)
	if err != nil {
		return DBDeps{}, err
	}
	logger.Info("opened local content store", zap.String("path", appCfg.LocalStorePath))

	remoteStore := remote.New(logger)
	repo := portfolio.New(local, logger)
	reconciler := syncer.New(repo, remoteStore, local, logger)
	reconciler.SetPullTimeout(appCfg.SyncPullTimeout)

	// A mirror configured from the admin panel is persisted in the
	// local store and takes precedence over the config file default.
	cfg, ok := savedRemoteConfig(ctx, local, logger)
	if !ok && appCfg.MongoURI != "" {
		cfg = remote.Config{URI: appCfg.MongoURI, Database: appCfg.MongoDatabase}
		ok = true
	}
	if ok {
		if err := remoteStore.Configure(ctx, cfg); err != nil {
			logger.Warn("remote mirror unavailable, running local-only", zap.Error(err))
		} else {
			logger.Info("connected to remote mirror", zap.String("database", cfg.Database))
		}
	}

	return DBDeps{
		Local:  local,
		Remote: remoteStore,
		Repo:   repo,
		Sync:   reconciler,
	}, nil
}

// savedRemoteConfig loads the mirror configuration persisted by a
// previous admin panel change, if any.
func savedRemoteConfig(ctx context.Context, local *localstore.Store, logger *zap.Logger) (remote.Config, bool) {
	var cfg remote.Config
	found, err := local.Get(ctx, localstore.KeyRemoteConfig, &cfg)
	if err != nil {
		logger.Warn("could not read saved remote configuration", zap.Error(err))
		return remote.Config{}, false
	}
	if !found {
		return remote.Config{}, false
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("saved remote configuration is invalid, ignoring", zap.Error(err))
		return remote.Config{}, false
	}
	return cfg, true
}
