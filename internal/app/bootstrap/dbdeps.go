// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/haemonga/portfolio/internal/app/store/localstore"
	"github.com/haemonga/portfolio/internal/app/store/portfolio"
	"github.com/haemonga/portfolio/internal/app/store/remote"
	"github.com/haemonga/portfolio/internal/app/system/syncer"
)

// DBDeps holds database and backend dependencies for this WAFFLE app.
//
// This struct is created in ConnectDB and passed to subsequent lifecycle
// hooks: EnsureSchema, Startup, BuildHandler, and Shutdown.
//
// The local store is the only required backend; the remote mirror may
// stay unconfigured for the whole process lifetime.
type DBDeps struct {
	// Local sqlite content store, the source of truth.
	Local *localstore.Store

	// Remote MongoDB mirror. Always non-nil, possibly unconfigured.
	Remote *remote.Store

	// In-memory content repository over Local.
	Repo *portfolio.Store

	// Reconciler between Repo and Remote.
	Sync *syncer.Reconciler
}
