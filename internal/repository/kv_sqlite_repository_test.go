package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/placebetween/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteKVRepository(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "pb.db")
	repo, err := repository.NewSQLiteKVRepo(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	ctx := context.Background()

	t.Run("absent key", func(t *testing.T) {
		_, ok, err := repo.Get(ctx, "pb_anon_points_2026-10-19")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, todaySetKey, `{"recommendedId":"a"}`))
		value, ok, err := repo.Get(ctx, todaySetKey)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"recommendedId":"a"}`, value)
	})
	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, todaySetKey, `{"recommendedId":"b"}`))
		value, _, err := repo.Get(ctx, todaySetKey)
		assert.NoError(t, err)
		assert.Equal(t, `{"recommendedId":"b"}`, value)
	})
	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, todaySetKey))
		require.NoError(t, repo.Delete(ctx, todaySetKey))
		_, ok, err := repo.Get(ctx, todaySetKey)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("purge", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "old", "1"))
		n, err := repo.PurgeBefore(ctx, time.Now().Add(time.Hour))
		assert.NoError(t, err)
		assert.Equal(t, int64(1), n)
		n, err = repo.PurgeBefore(ctx, time.Now().Add(time.Hour))
		assert.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pb.db")
	ctx := context.Background()
	repo, err := repository.NewSQLiteKVRepo(dbPath)
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, todaySetKey, "frozen"))
	require.NoError(t, repo.Close())

	// migrations are idempotent on an existing file
	repo, err = repository.NewSQLiteKVRepo(dbPath)
	require.NoError(t, err)
	defer repo.Close()
	value, ok, err := repo.Get(ctx, todaySetKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "frozen", value)
}
