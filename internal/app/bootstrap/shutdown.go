// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown is invoked during WAFFLE's shutdown phase, after the HTTP
// server has stopped accepting new requests.
//
// The context has a timeout (default 10 seconds); cleanup should
// respect it. Errors are logged but do not prevent the process from
// exiting.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	var firstErr error

	if deps.Remote != nil {
		logger.Info("disconnecting remote mirror")
		if err := deps.Remote.Close(ctx); err != nil {
			logger.Warn("remote mirror disconnect failed", zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if deps.Local != nil {
		logger.Info("closing local content store")
		if err := deps.Local.Close(); err != nil {
			logger.Error("local store close failed", zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
