package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// KVRepositoryI is the persistence substrate of the engine: string keys to
// string (JSON) values, like browser local storage.
type KVRepositoryI interface {
	// Returns value stored under key. ok is false if key is absent
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Creates or replaces value under key
	Set(ctx context.Context, key, value string) error
	// Removes key. Missing key is not an error
	Delete(ctx context.Context, key string) error
	// Removes entries last written before cutoff. Returns number of removed entries
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
