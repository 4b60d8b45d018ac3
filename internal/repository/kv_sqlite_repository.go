package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteKVRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteKVRepo opens (or creates) the database file, applies pragmas and migrations.
func NewSQLiteKVRepo(dbPath string) (*SQLiteKVRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := enablePragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable pragmas: %w", err)
	}
	if err := RunMigrations(db, "sqlite"); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteKVRepository{db: db, now: time.Now}, nil
}

func enablePragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

func (kv *SQLiteKVRepository) Close() error {
	return kv.db.Close()
}

func (kv *SQLiteKVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := kv.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, errors.New("getting kv entry error: " + err.Error())
	}
	return value, true, nil
}

func (kv *SQLiteKVRepository) Set(ctx context.Context, key, value string) error {
	_, err := kv.db.ExecContext(ctx, `INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`,
		key, value, kv.now().UnixMilli())
	if err != nil {
		return errors.New("setting kv entry error: " + err.Error())
	}
	return nil
}

func (kv *SQLiteKVRepository) Delete(ctx context.Context, key string) error {
	if _, err := kv.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?;`, key); err != nil {
		return errors.New("deleting kv entry error: " + err.Error())
	}
	return nil
}

func (kv *SQLiteKVRepository) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := kv.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE updated_at < ?;`, cutoff.UnixMilli())
	if err != nil {
		return 0, errors.New("purging kv entries error: " + err.Error())
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.New("purging kv entries error: " + err.Error())
	}
	return n, nil
}
