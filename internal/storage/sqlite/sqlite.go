// Package sqlite opens the local SQLite database and keeps its schema current.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"todo-weather/pkg/log"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

//go:embed migrations/*.sql
var migrations embed.FS

// Open connects to the database file at path (created if missing) and migrates it.
//
// The handle is limited to one connection: writes are serialized and an
// in-memory database stays a single database.
func Open(ctx context.Context, path string, l log.Logger) (*sql.DB, error) {
	dsn, err := buildDSN(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage/sqlite: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage/sqlite: ping %s: %w", path, err)
	}

	if err := Migrate(ctx, db, l); err != nil {
		db.Close()
		return nil, err
	}

	l.Infof(ctx, "storage/sqlite.Open: database ready at %s", path)
	return db, nil
}

// buildDSN expands "~", creates the parent directory, and adds pragmas.
func buildDSN(path string) (string, error) {
	if path == "" || path == MemoryPath {
		return MemoryPath, nil
	}

	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage/sqlite: resolve home dir: %w", err)
		}
		path = homeDir + path[1:]
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("storage/sqlite: create %s: %w", dir, err)
		}
	}

	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", nil
}

// Migrate applies the embedded migrations.
//
// Schema changes are destructive: when the stored schema cannot be migrated
// (dirty, or a version these migrations do not know) every table is dropped
// and the schema is rebuilt empty.
func Migrate(ctx context.Context, db *sql.DB, l log.Logger) error {
	err := migrateUp(db)
	if err == nil {
		return nil
	}

	l.Warnf(ctx, "storage/sqlite.Migrate: %v; dropping all data and recreating schema", err)

	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Drop(); err != nil {
		return fmt.Errorf("storage/sqlite: drop schema: %w", err)
	}

	// Drop removes the version table too, so start over with a fresh migrator.
	if err := migrateUp(db); err != nil {
		return fmt.Errorf("storage/sqlite: migrate after drop: %w", err)
	}
	return nil
}

func migrateUp(db *sql.DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("storage/sqlite: migrate up: %w", err)
	}
	return nil
}

// newMigrator never gets Closed: closing it would close db.
func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("storage/sqlite: load migrations: %w", err)
	}
	drv, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("storage/sqlite: migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", drv)
	if err != nil {
		return nil, fmt.Errorf("storage/sqlite: migrator: %w", err)
	}
	return m, nil
}
