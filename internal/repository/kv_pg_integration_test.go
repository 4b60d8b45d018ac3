package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/limbo/placebetween/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupKVTestDB(t *testing.T) *testPGConfig {
	if os.Getenv("PB_INTEGRATION") != "1" {
		t.Skip("set PB_INTEGRATION=1 to run postgres integration tests")
	}
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("placebetween"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{connStr: connStr}
}

func TestPgKVRepositoryIntegrational(t *testing.T) {
	cfg := setupKVTestDB(t)
	ctx := context.Background()
	repo, err := repository.NewPgKVRepo(ctx, cfg)
	require.NoError(t, err)

	require.NoError(t, repo.Set(ctx, todaySetKey, "v1"))
	require.NoError(t, repo.Set(ctx, todaySetKey, "v2"))
	value, ok, err := repo.Get(ctx, todaySetKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", value)

	n, err := repo.PurgeBefore(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
