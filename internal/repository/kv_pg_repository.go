package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/limbo/placebetween/pkg/cleanup"
)

type PgKVRepository struct {
	conn PgConnection
}

// NewPgKVRepo opens a pool, applies migrations and registers the pool for cleanup.
func NewPgKVRepo(ctx context.Context, cfg DBConfig) (*PgKVRepository, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating connection for kvRepo error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.New("error while pinging connection for kvRepo: " + err.Error())
	}
	// goose needs database/sql; a short-lived handle keeps the pool untouched
	db := stdlib.OpenDB(*pool.Config().ConnConfig)
	err = RunMigrations(db, "postgres")
	db.Close()
	if err != nil {
		pool.Close()
		return nil, err
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PgKVRepository{
		conn: pool,
	}, nil
}

func NewPgKVRepoWithConn(conn PgConnection) *PgKVRepository {
	return &PgKVRepository{
		conn: conn,
	}
}

func (kv *PgKVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	row := kv.conn.QueryRow(ctx, `SELECT value FROM kv_entries WHERE key = $1;`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, errors.New("getting kv entry error: " + err.Error())
	}
	return value, true, nil
}

func (kv *PgKVRepository) Set(ctx context.Context, key, value string) error {
	_, err := kv.conn.Exec(ctx, `INSERT INTO kv_entries (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`, key, value)
	if err != nil {
		return errors.New("setting kv entry error: " + err.Error())
	}
	return nil
}

func (kv *PgKVRepository) Delete(ctx context.Context, key string) error {
	_, err := kv.conn.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1;`, key)
	if err != nil {
		return errors.New("deleting kv entry error: " + err.Error())
	}
	return nil
}

func (kv *PgKVRepository) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ct, err := kv.conn.Exec(ctx, `DELETE FROM kv_entries WHERE updated_at < $1;`, cutoff)
	if err != nil {
		return 0, errors.New("purging kv entries error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
