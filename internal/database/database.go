package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"

	"pawshugs/internal/config"
)

// ErrNotConfigured is returned by Connect when the connection string or the
// database name is missing from the environment.
var ErrNotConfigured = errors.New("database not configured")

// Mongo wraps a connected MongoDB client and the database handle the service
// operates on. A nil *Mongo is the explicit "store unavailable" state; callers
// that can run degraded hold the unavailable repository implementations
// instead of reaching through a nil handle.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a MongoDB connection with command tracing enabled and
// verifies connectivity with a ping before returning.
func Connect(ctx context.Context, c config.DatabaseConfig) (*Mongo, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	opts := options.Client().
		ApplyURI(c.URL).
		SetMonitor(otelmongo.NewMonitor())
	if c.ConnectTimeoutSec > 0 {
		opts.SetConnectTimeout(time.Duration(c.ConnectTimeoutSec) * time.Second)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	// Verify connectivity with a short timeout
	pingTimeout := time.Duration(c.PingTimeoutSec) * time.Second
	if pingTimeout <= 0 {
		pingTimeout = 2 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Mongo{client: client, db: client.Database(c.Name)}, nil
}

// Name returns the database name this handle operates on.
func (m *Mongo) Name() string {
	return m.db.Name()
}

// Collection returns a handle to the named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Ping verifies the server is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// ListCollectionNames returns up to limit collection names from the database.
func (m *Mongo) ListCollectionNames(ctx context.Context, limit int) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
