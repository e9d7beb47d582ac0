// Package store owns the single mutable ledger of the process.
//
// Readers get immutable snapshots. Mutations happen on a Writer, which works
// on a private copy and publishes it on Commit; a rolled back Writer leaves no
// trace. Only one Writer is open at a time. Every commit is persisted in the
// background and persistence failures never undo a commit.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/storage"
)

const persistTimeout = 30 * time.Second

// ErrWriterClosed is returned when a Writer is used after Commit or Rollback.
var ErrWriterClosed = errors.New("writer already committed or rolled back")

type Option func(*Store)

// WithClock replaces time.Now for ids, creation times and transaction dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces ledger.NewID.
func WithIDGenerator(newID func(prefix string) string) Option {
	return func(s *Store) { s.newID = newID }
}

type Store struct {
	docs   storage.IDocumentStore
	key    string
	logger *logrus.Logger
	now    func() time.Time
	newID  func(prefix string) string

	// writeMu serialises writers; mu guards the published state pointer.
	writeMu sync.Mutex
	mu      sync.RWMutex
	state   *ledger.Ledger
	closed  bool

	pending chan *ledger.Ledger
	done    chan struct{}
}

// New starts a store holding the default ledger. Call Load to restore the
// persisted one and Close to flush the last pending write.
func New(docs storage.IDocumentStore, key string, logger *logrus.Logger, opts ...Option) *Store {
	s := &Store{
		docs:    docs,
		key:     key,
		logger:  logger,
		now:     time.Now,
		newID:   ledger.NewID,
		pending: make(chan *ledger.Ledger, 1),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = ledger.Default(s.now())

	go s.persistLoop()
	return s
}

// Load replaces the in-memory ledger with the persisted document. A missing
// or unreadable document leaves the default ledger in place.
func (s *Store) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	loaded := s.read(ctx)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.publish(loaded)
	return nil
}

func (s *Store) read(ctx context.Context) *ledger.Ledger {
	data, err := s.docs.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.WithField("key", s.key).Info("Store.Load.Default")
		return ledger.Default(s.now())
	}
	if err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Store.Load.Fallback")
		return ledger.Default(s.now())
	}

	loaded, err := ledger.DecodeDocument(data)
	if err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Store.Load.Fallback")
		return ledger.Default(s.now())
	}

	s.logger.WithFields(logrus.Fields{
		"key":          s.key,
		"accounts":     len(loaded.Accounts),
		"transactions": len(loaded.Transactions),
	}).Info("Store.Load.Complete")
	return loaded
}

// Snapshot returns the current ledger. Callers must not modify it.
func (s *Store) Snapshot() *ledger.Ledger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Write opens the single Writer, blocking while another one is open.
func (s *Store) Write(ctx context.Context) (*Writer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.writeMu.Lock()
	return &Writer{store: s, state: s.Snapshot().Clone()}, nil
}

// Apply runs fn on a Writer, committing when fn succeeds and rolling back
// otherwise.
func (s *Store) Apply(ctx context.Context, fn func(w *Writer) error) error {
	w, err := s.Write(ctx)
	if err != nil {
		return err
	}
	if err = fn(w); err != nil {
		_ = w.Rollback()
		return err
	}
	return w.Commit()
}

// Close waits for the pending write and stops persistence. Later commits
// still update memory but are no longer persisted.
func (s *Store) Close() error {
	s.writeMu.Lock()
	if s.closed {
		s.writeMu.Unlock()
		return nil
	}
	s.closed = true
	close(s.pending)
	s.writeMu.Unlock()

	<-s.done
	return nil
}

// publish must be called with writeMu held.
func (s *Store) publish(l *ledger.Ledger) {
	s.mu.Lock()
	s.state = l
	s.mu.Unlock()
}

// schedule queues l for persistence, replacing an older snapshot that has not
// been written yet. It must be called with writeMu held.
func (s *Store) schedule(l *ledger.Ledger) {
	if s.closed {
		s.logger.Warn("Store.persist.Closed")
		return
	}
	for {
		select {
		case s.pending <- l:
			return
		default:
		}
		select {
		case <-s.pending:
		default:
		}
	}
}

func (s *Store) persistLoop() {
	defer close(s.done)
	for l := range s.pending {
		s.persist(l)
	}
}

func (s *Store) persist(l *ledger.Ledger) {
	data, err := ledger.EncodeDocument(l)
	if err != nil {
		s.logger.WithError(err).Error("Store.persist.Encode")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err = s.docs.Put(ctx, s.key, data); err != nil {
		s.logger.WithError(err).WithField("key", s.key).Error("Store.persist.Error")
		return
	}
	s.logger.WithField("bytes", len(data)).Debug("Store.persist.Complete")
}
