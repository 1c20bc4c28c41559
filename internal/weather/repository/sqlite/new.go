package sqlite

import (
	"database/sql"
	"fmt"

	"todo-weather/internal/weather/repository"
	"todo-weather/pkg/broadcast"
	"todo-weather/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
	// changes carries the key written, or "" when the whole cache was cleared.
	changes *broadcast.Broadcaster[string]
}

// New creates a SQLite-backed weather cache.
func New(db *sql.DB, l log.Logger) repository.CacheRepository {
	if db == nil {
		panic("weather/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, changes: broadcast.New[string]()}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("weather/repository/sqlite.%s", method)
}
