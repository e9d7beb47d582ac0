package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_GetMissing(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "moneySaverData")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_PutGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "moneySaverData", []byte(`{"accounts":[]}`)))
	require.NoError(t, s.Put(ctx, "moneySaverData", []byte(`{"accounts":[1]}`)))

	got, err := s.Get(ctx, "moneySaverData")
	require.NoError(t, err)
	assert.Equal(t, `{"accounts":[1]}`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
	assert.Equal(t, "moneySaverData.json", entries[0].Name())
}

func TestFileStore_KeyCannotEscapeDir(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Put(context.Background(), "../escape", []byte(`{}`)))

	_, err = os.Stat(filepath.Join(dir, "escape.json"))
	assert.NoError(t, err)
}

func TestFileStore_CancelledContext(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Put(ctx, "k", []byte(`{}`)), context.Canceled)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
