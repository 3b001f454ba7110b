package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// TestDBURI is the MongoDB connection string for mirror tests.
	TestDBURI = "mongodb://localhost:27017"
	// TestDBName is the database name prefix used for mirror tests.
	TestDBName = "portfolio_test"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	clientErr  error
)

// getClient returns a shared MongoDB client for all tests.
// The client is created once and reused across tests.
func getClient() (*mongo.Client, error) {
	clientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		clientOpts := options.Client().
			ApplyURI(TestDBURI).
			SetConnectTimeout(5 * time.Second).
			SetServerSelectionTimeout(5 * time.Second)

		client, clientErr = mongo.Connect(ctx, clientOpts)
		if clientErr != nil {
			return
		}

		clientErr = client.Ping(ctx, nil)
	})
	return client, clientErr
}

// SetupTestDB returns a unique test database for mirror tests, dropped
// when the test completes via t.Cleanup.
//
// The remote mirror is optional at runtime, so it is optional in tests
// too: when no MongoDB is reachable at TestDBURI the test is skipped
// rather than failed.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	c, err := getClient()
	if err != nil {
		t.Skipf("MongoDB not available at %s: %v", TestDBURI, err)
	}

	name := fmt.Sprintf("%s_%s_%d", TestDBName, sanitizeDBName(t.Name()), time.Now().UnixNano())
	db := c.Database(name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Drop(ctx); err != nil {
			t.Errorf("failed to drop test database %s: %v", name, err)
		}
	})

	return db
}

// sanitizeDBName makes a test name safe for use in a database name.
func sanitizeDBName(name string) string {
	r := strings.NewReplacer("/", "_", " ", "_", ".", "_", "#", "_", "$", "_")
	out := r.Replace(name)
	if len(out) > 40 {
		out = out[:40]
	}
	return strings.ToLower(out)
}
