package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSetGet_RoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "current-list", []byte(`[{"id":"1"}]`)))

	v, err := s.Get(ctx, "current-list")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(v))

	raw, err := os.ReadFile(filepath.Join(s.Dir(), "current-list.json"))
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(raw))
}

func TestGet_MissingKeyIsNilNil(t *testing.T) {
	s := newStore(t)
	v, err := s.Get(context.Background(), "history")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestGet_EmptyFileIsNilNil(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "history.json"), nil, 0o644))

	v, err := s.Get(context.Background(), "history")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSet_OverwritesAndLeavesNoTempFile(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("old")))
	require.NoError(t, s.Set(ctx, "k", []byte("new")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", string(v))

	_, err = os.Stat(filepath.Join(s.Dir(), "k.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestDelete_IsIdempotent(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestInvalidKeys(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, key := range []string{"", "../escape", `a\b`, ".lock"} {
		_, err := s.Get(ctx, key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
		assert.ErrorIs(t, s.Set(ctx, key, []byte("x")), ErrInvalidKey, "key %q", key)
	}
}

func TestSet_FailsWhileAnotherProcessHoldsTheLock(t *testing.T) {
	s := newStore(t)

	other := flock.New(filepath.Join(s.Dir(), lockFileName))
	locked, err := other.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer func() { _ = other.Unlock() }()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err = s.Set(ctx, "k", []byte("v"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acquire lock")
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	s, err := New(dir)
	require.NoError(t, err)
	defer s.Close()

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}
