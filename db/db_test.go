package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dasdy/gamepedia/db"
	"github.com/dasdy/gamepedia/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectToMemoryDB(t *testing.T) {
	t.Run("should insert and gather correctly", func(t *testing.T) {
		ctx := context.Background()

		storage, err := db.ConnectDB(ctx, db.InMemory)
		require.NoError(t, err)

		defer storage.Close()

		items, err := storage.GatherAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)

		require.NoError(t, storage.RecordImpressions(ctx, []int{2, 3}))
		require.NoError(t, storage.RecordImpressions(ctx, []int{3, 1}))
		require.NoError(t, storage.RecordOpen(ctx, 3))

		items, err = storage.GatherAll(ctx)
		require.NoError(t, err)

		assert.Equal(t, map[int]model.GameStats{
			1: {ID: 1, Impressions: 1, Opens: 0},
			2: {ID: 2, Impressions: 1, Opens: 0},
			3: {ID: 3, Impressions: 2, Opens: 1},
		}, items)
	})

	t.Run("empty impressions are a no-op", func(t *testing.T) {
		ctx := context.Background()

		storage, err := db.ConnectDB(ctx, db.InMemory)
		require.NoError(t, err)

		defer storage.Close()

		require.NoError(t, storage.RecordImpressions(ctx, nil))

		items, err := storage.GatherAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestFileStoragePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "stats.sqlite")

	storage, err := db.ConnectDB(ctx, path)
	require.NoError(t, err)
	require.NoError(t, storage.RecordOpen(ctx, 4))
	storage.Close()

	reopened, err := db.ConnectDB(ctx, path)
	require.NoError(t, err)

	defer reopened.Close()

	items, err := reopened.GatherAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, items[4].Opens)
}
