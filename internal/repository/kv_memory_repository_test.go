package repository_test

import (
	"context"
	"testing"
	"time"

	errorvalues "github.com/limbo/placebetween/internal/error_values"
	"github.com/limbo/placebetween/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKVRepository(t *testing.T) {
	repo := repository.NewMemoryKVRepo()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, todaySetKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, todaySetKey, "v1"))
	require.NoError(t, repo.Set(ctx, todaySetKey, "v2"))
	value, ok, err := repo.Get(ctx, todaySetKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", value)
	assert.Equal(t, 1, repo.Len())

	n, err := repo.PurgeBefore(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = repo.PurgeBefore(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.Delete(ctx, todaySetKey))
	assert.Zero(t, repo.Len())
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	t.Run("memory", func(t *testing.T) {
		repo, err := repository.Open(ctx, repository.StoreOptions{Driver: repository.DriverMemory})
		require.NoError(t, err)
		assert.IsType(t, &repository.MemoryKVRepository{}, repo)
	})
	t.Run("sqlite", func(t *testing.T) {
		repo, err := repository.Open(ctx, repository.StoreOptions{
			Driver:     repository.DriverSQLite,
			SQLitePath: t.TempDir() + "/pb.db",
		})
		require.NoError(t, err)
		assert.IsType(t, &repository.SQLiteKVRepository{}, repo)
		repo.(*repository.SQLiteKVRepository).Close()
	})
	t.Run("unknown driver", func(t *testing.T) {
		_, err := repository.Open(ctx, repository.StoreOptions{Driver: "redis"})
		assert.ErrorIs(t, err, errorvalues.ErrUnknownStoreDriver)
	})
}
