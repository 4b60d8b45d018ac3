package repository

import (
	"context"

	errorvalues "github.com/limbo/placebetween/internal/error_values"
	"github.com/limbo/placebetween/pkg/cleanup"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type StoreOptions struct {
	Driver     string
	SQLitePath string
	Postgres   DBConfig
}

// Open builds the key-value repository selected by opts.Driver.
func Open(ctx context.Context, opts StoreOptions) (KVRepositoryI, error) {
	switch opts.Driver {
	case DriverMemory:
		return NewMemoryKVRepo(), nil
	case DriverSQLite, "":
		repo, err := NewSQLiteKVRepo(opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing sqlite database",
			F:    repo.Close,
		})
		return repo, nil
	case DriverPostgres:
		repo, err := NewPgKVRepo(ctx, opts.Postgres)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
	return nil, errorvalues.ErrUnknownStoreDriver
}
