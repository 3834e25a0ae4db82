package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageReadWrite(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Read(ctx, "tasks.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, s.Write(ctx, "tasks.yaml", []byte("hello")))

	data, err := s.Read(ctx, "tasks.yaml")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	// Overwrite replaces the content wholesale.
	require.NoError(t, s.Write(ctx, "tasks.yaml", []byte("world")))
	data, err = s.Read(ctx, "tasks.yaml")
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), data)
}

func TestLocalStorageWriteNested(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, "push_subscriptions/abc.yaml", []byte("x")))

	data, err := s.Read(ctx, "push_subscriptions/abc.yaml")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), data)
}

func TestLocalStorageDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, "tasks.yaml", []byte("x")))
	require.NoError(t, s.Delete(ctx, "tasks.yaml"))

	err = s.Delete(ctx, "tasks.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalStorageList(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	paths, err := s.List(ctx, "push_subscriptions")
	require.NoError(t, err)
	assert.Empty(t, paths)

	require.NoError(t, s.Write(ctx, "push_subscriptions/a.yaml", []byte("a")))
	require.NoError(t, s.Write(ctx, "push_subscriptions/b.yaml", []byte("b")))

	paths, err = s.List(ctx, "push_subscriptions")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"push_subscriptions/a.yaml", "push_subscriptions/b.yaml"}, paths)
}

func TestLocalStorageExists(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ok, err := s.Exists(ctx, "tasks.yaml")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Write(ctx, "tasks.yaml", []byte("x")))
	ok, err = s.Exists(ctx, "tasks.yaml")
	require.NoError(t, err)
	assert.True(t, ok)
}
