package sqlite

import (
	"database/sql"
	"fmt"

	"todo-weather/internal/task/repository"
	"todo-weather/pkg/broadcast"
	"todo-weather/pkg/datemath"
	"todo-weather/pkg/log"
)

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	dates *datemath.Parser
	// changes fires after every committed write to the tasks table.
	changes *broadcast.Broadcaster[struct{}]
}

// New creates a SQLite-backed Repository for tasks.
// dates decides calendar days for the today and overdue windows.
func New(db *sql.DB, l log.Logger, dates *datemath.Parser) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	if dates == nil {
		panic("task/repository/sqlite: dates is required")
	}
	return &implRepository{
		db:      db,
		l:       l,
		dates:   dates,
		changes: broadcast.New[struct{}](),
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}

func (r *implRepository) notify() {
	r.changes.Publish(struct{}{})
}
