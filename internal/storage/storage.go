package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/carson-networks/money-tracker/internal/config"
)

// ErrNotFound is returned by Get when no document is stored under the key.
var ErrNotFound = errors.New("document not found")

// IDocumentStore is a durable key-value store holding whole JSON documents.
// This abstraction allows swapping the medium without changing callers.
//
//go:generate mockery --name IDocumentStore --output mock_IDocumentStore.go
type IDocumentStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// NewStorage opens the backend selected in env.
func NewStorage(ctx context.Context, env *config.Config) (IDocumentStore, error) {
	switch env.StorageBackend {
	case config.StorageBackendMemory:
		return NewMemoryStore(), nil
	case config.StorageBackendFile:
		return NewFileStore(env.LedgerFileDir)
	case config.StorageBackendPostgres:
		db, err := sql.Open("postgres", env.PostgresConnectionString())
		if err != nil {
			return nil, fmt.Errorf("sql.Open: %w", err)
		}
		if err = db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db.Ping: %w", err)
		}
		if err = Migrate(db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return NewPostgresStore(db), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", env.StorageBackend)
}
