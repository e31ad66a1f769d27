package store

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
)

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "warden.db"))
	require.NoError(t, err)
	defer store.Close(context.Background())

	ctx := context.Background()

	t.Run("empty namespace", func(t *testing.T) {
		_, err := store.List(ctx, NamespaceChecks)
		assert.ErrorIs(t, err, ErrCollectionNotFound)
	})

	t.Run("create read update", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, NamespaceChecks, "abc", map[string]any{"state": "down"}))
		assert.ErrorIs(t, store.Create(ctx, NamespaceChecks, "abc", map[string]any{}), ErrAlreadyExists)

		require.NoError(t, store.Update(ctx, NamespaceChecks, "abc", map[string]any{"state": "up", "lastChecked": 1700000000000}))

		record, err := store.Read(ctx, NamespaceChecks, "abc")
		require.NoError(t, err)
		assert.Equal(t, "up", record["state"])
		assert.Equal(t, float64(1700000000000), record["lastChecked"])
	})

	t.Run("namespaces are isolated", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, NamespaceUsers, "abc", map[string]any{}))

		keys, err := store.List(ctx, NamespaceChecks)
		require.NoError(t, err)
		assert.Equal(t, []string{"abc"}, keys)
	})

	t.Run("missing records", func(t *testing.T) {
		_, err := store.Read(ctx, NamespaceChecks, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, store.Update(ctx, NamespaceChecks, "missing", map[string]any{}), ErrNotFound)
		assert.ErrorIs(t, store.Delete(ctx, NamespaceChecks, "missing"), ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, NamespaceUsers, "abc"))
		_, err := store.Read(ctx, NamespaceUsers, "abc")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
