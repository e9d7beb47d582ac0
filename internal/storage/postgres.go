package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const documentsTable = "ledger_documents"

// PostgresStore keeps documents in the ledger_documents table.
type PostgresStore struct {
	db   *sql.DB
	exec bob.Executor
}

var _ IDocumentStore = (*PostgresStore)(nil)

// NewPostgresStore wraps an open database whose schema is migrated.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, exec: bob.NewDB(db)}
}

// Get retrieves the document stored under key.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := psql.Select(
		sm.Columns("value"),
		sm.From(documentsTable),
		sm.Where(psql.Quote("key").EQ(psql.Arg(key))),
	)

	value, err := bob.One(ctx, s.exec, query, scan.SingleColumnMapper[[]byte])
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put inserts or replaces the document stored under key.
func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	// jsonb is sent as text, lib/pq would encode []byte as bytea.
	query := psql.Insert(
		im.Into(documentsTable, "key", "value", "updated_at"),
		im.Values(psql.Arg(key), psql.Arg(string(value)), psql.Raw("now()")),
		im.OnConflict("key").DoUpdate(
			im.SetExcluded("value", "updated_at"),
		),
	)

	_, err := query.Exec(ctx, s.exec)
	return err
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
