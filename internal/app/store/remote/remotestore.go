// Package remote mirrors the two aggregates to a MongoDB document
// store so edits become visible across devices. The mirror is
// optional and best-effort: every operation returns an error the
// caller logs and survives, and an unconfigured store simply refuses
// politely.
//
// Fixed layout: one collection ("portfolio") holding a document with
// _id "profile" (the Profile record) and a document with _id
// "projects" ({list: [...]}).
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/haemonga/portfolio/internal/domain/models"
)

// CollectionName is the fixed logical namespace for both documents.
const CollectionName = "portfolio"

// Document ids within the collection.
const (
	DocProfile  = "profile"
	DocProjects = "projects"
)

// ErrNotConfigured is returned by pull/push when no connection has
// been established yet.
var ErrNotConfigured = errors.New("remote store not configured")

// Config is the admin-suppliable connection configuration. It is
// itself persisted in the local store so a pasted config survives
// restarts.
type Config struct {
	URI      string `json:"uri"`
	Database string `json:"database"`
}

// ParseConfig parses a pasted JSON config and validates it eagerly, so
// malformed input is reported immediately and never replaces a
// working configuration.
func ParseConfig(raw string) (Config, error) {
	var cfg Config
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse remote config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config is usable.
func (c Config) Validate() error {
	if c.URI == "" {
		return errors.New("remote config: uri is required")
	}
	if err := wafflemongo.ValidateURI(c.URI); err != nil {
		return fmt.Errorf("remote config: %w", err)
	}
	if c.Database == "" {
		return errors.New("remote config: database is required")
	}
	return nil
}

// Store is the connection handle. Reconfiguration swaps the client
// atomically; in-flight operations finish against the client they
// started with.
type Store struct {
	mu     sync.RWMutex
	client *mongo.Client
	coll   *mongo.Collection
	cfg    Config
	logger *zap.Logger
}

// New returns an unconnected store. Configure establishes the first
// connection.
func New(logger *zap.Logger) *Store {
	return &Store{logger: logger}
}

// Configure validates cfg, connects, and swaps the live connection.
// On failure the previous connection (if any) stays in effect.
func (s *Store) Configure(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := wafflemongo.ConnectWithPool(ctx, cfg.URI, cfg.Database, wafflemongo.DefaultPoolConfig())
	if err != nil {
		return fmt.Errorf("connect remote store: %w", err)
	}

	s.mu.Lock()
	old := s.client
	s.client = client
	s.coll = client.Database(cfg.Database).Collection(CollectionName)
	s.cfg = cfg
	s.mu.Unlock()

	if old != nil {
		if err := old.Disconnect(ctx); err != nil {
			s.logger.Warn("previous remote connection did not close cleanly", zap.Error(err))
		}
	}

	s.logger.Info("remote store configured", zap.String("database", cfg.Database))
	return nil
}

// Configured reports whether a connection has been established.
func (s *Store) Configured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coll != nil
}

// Config returns the active configuration.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *Store) collection() (*mongo.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.coll == nil {
		return nil, ErrNotConfigured
	}
	return s.coll, nil
}

// PullProfile reads the profile document. mongo.ErrNoDocuments is
// returned when the remote has never been written.
func (s *Store) PullProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	if err := s.pull(ctx, DocProfile, &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// projectsDoc is the wire shape of the projects document.
type projectsDoc struct {
	List []models.Project `json:"list"`
}

// PullProjects reads the projects-list document.
func (s *Store) PullProjects(ctx context.Context) ([]models.Project, error) {
	var doc projectsDoc
	if err := s.pull(ctx, DocProjects, &doc); err != nil {
		return nil, err
	}
	return doc.List, nil
}

// PushProfile overwrites the profile document with the full aggregate.
func (s *Store) PushProfile(ctx context.Context, profile models.Profile) error {
	return s.push(ctx, DocProfile, profile)
}

// PushProjects overwrites the projects-list document with the full
// aggregate.
func (s *Store) PushProjects(ctx context.Context, projects []models.Project) error {
	return s.push(ctx, DocProjects, projectsDoc{List: projects})
}

// pull fetches the document with the given id and decodes it into
// dest via the JSON wire shape, so the block variant codec applies on
// both sides of the mirror.
func (s *Store) pull(ctx context.Context, id string, dest any) error {
	coll, err := s.collection()
	if err != nil {
		return err
	}

	var doc bson.M
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return err
	}
	delete(doc, "_id")

	raw, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return fmt.Errorf("decode remote %q: %w", id, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode remote %q: %w", id, err)
	}
	return nil
}

// push upserts the document with the given id from value's JSON wire
// shape.
func (s *Store) push(ctx context.Context, id string, value any) error {
	coll, err := s.collection()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode remote %q: %w", id, err)
	}
	var doc bson.M
	if err := bson.UnmarshalExtJSON(raw, false, &doc); err != nil {
		return fmt.Errorf("encode remote %q: %w", id, err)
	}

	opts := options.Replace().SetUpsert(true)
	doc["_id"] = id
	if _, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts); err != nil {
		return fmt.Errorf("push remote %q: %w", id, err)
	}
	return nil
}

// Close disconnects the client if one is connected.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	client := s.client
	s.client = nil
	s.coll = nil
	s.mu.Unlock()

	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
