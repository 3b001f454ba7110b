// Package testutil provides utilities for testing, including store
// setup and template engine boot.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/haemonga/portfolio/internal/app/store/localstore"
)

// TempStore opens a sqlite content store in a temporary directory.
// The store is closed when the test completes via t.Cleanup.
func TempStore(t *testing.T) *localstore.Store {
	t.Helper()

	store, err := localstore.Open(filepath.Join(t.TempDir(), "portfolio.db"))
	if err != nil {
		t.Fatalf("failed to open local store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close local store: %v", err)
		}
	})
	return store
}

// TestContext returns a context with a timeout suitable for store
// operations in tests.
func TestContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}
