package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"todo-weather/internal/storage/sqlite"
	"todo-weather/pkg/log"
)

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func seedTask(t *testing.T, db *sql.DB) {
	t.Helper()
	if _, err := db.Exec(`INSERT INTO tasks (title, created_at) VALUES ('seed', 0)`); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestOpenCreatesSchema(t *testing.T) {
	db, err := sqlite.Open(context.Background(), sqlite.MemoryPath, log.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"tasks", "weather_cache"} {
		if n := countRows(t, db, table); n != 0 {
			t.Errorf("%s: expected empty table, got %d rows", table, n)
		}
	}
}

func TestOpenFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "todo.db")

	db, err := sqlite.Open(context.Background(), path, log.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	seedTask(t, db)
	db.Close()

	// Reopening keeps data when the schema is current.
	db, err = sqlite.Open(context.Background(), path, log.NewNop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	if n := countRows(t, db, "tasks"); n != 1 {
		t.Errorf("expected 1 task after reopen, got %d", n)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, sqlite.MemoryPath, log.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	seedTask(t, db)

	if err := sqlite.Migrate(ctx, db, log.NewNop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if n := countRows(t, db, "tasks"); n != 1 {
		t.Errorf("expected data kept, got %d rows", n)
	}
}

func TestMigrateResetsBrokenSchema(t *testing.T) {
	tests := []struct {
		name   string
		mutate string
	}{
		{name: "Dirty", mutate: `UPDATE schema_migrations SET dirty = 1`},
		{name: "Unknown Version", mutate: `UPDATE schema_migrations SET version = 99`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			db, err := sqlite.Open(ctx, sqlite.MemoryPath, log.NewNop())
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer db.Close()

			seedTask(t, db)
			if _, err := db.Exec(tt.mutate); err != nil {
				t.Fatalf("break schema: %v", err)
			}

			if err := sqlite.Migrate(ctx, db, log.NewNop()); err != nil {
				t.Fatalf("migrate: %v", err)
			}
			if n := countRows(t, db, "tasks"); n != 0 {
				t.Errorf("expected tasks dropped, got %d rows", n)
			}
			seedTask(t, db)
		})
	}
}
