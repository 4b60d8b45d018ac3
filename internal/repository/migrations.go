package repository

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/limbo/placebetween/migrations"
	"github.com/pressly/goose/v3"
)

// goose keeps dialect and base FS in package globals
var gooseMu sync.Mutex

// RunMigrations applies pending migrations of dialect ("postgres" or "sqlite")
// from the embedded migrations directory of the same name.
func RunMigrations(db *sql.DB, dialect string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.Up(db, dialect); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
