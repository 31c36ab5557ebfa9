package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Dialect names the goose dialect and the embedded directory with its
// migrations.
type Dialect string

const (
	SQLite   Dialect = "sqlite3"
	Postgres Dialect = "pgx"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// goose keeps its base FS and dialect in package globals.
var mu sync.Mutex

func (d Dialect) dir() string {
	if d == SQLite {
		return "sqlite"
	}
	return "postgres"
}

// Migrate applies every pending migration of the given dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errors.New("db is nil"))
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect.dir()); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
