package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"todo-weather/internal/model"
	repo "todo-weather/internal/task/repository"
)

const taskColumns = `id, title, description, due_at, created_at, completed, favorite, priority, category`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (title, description, due_at, created_at, completed, favorite, priority, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, toMillis(opt.DueAt), opt.CreatedAt.UnixMilli(),
		opt.Completed, opt.Favorite, string(opt.Priority), string(opt.Category),
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	r.notify()
	return t, nil
}

// GetTask retrieves a single Task by ID.
// Returns zero-value Task (ID == 0) when not found.
func (r *implRepository) GetTask(ctx context.Context, id int64) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ? LIMIT 1`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns every Task matching opt in view order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask replaces every mutable column of a Task and returns the updated entity.
// created_at is never written.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET title = ?, description = ?, due_at = ?, completed = ?, favorite = ?, priority = ?, category = ?
		WHERE id = ?
		RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, toMillis(opt.DueAt), opt.Completed, opt.Favorite,
		string(opt.Priority), string(opt.Category), opt.ID,
	))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	r.notify()
	return t, nil
}

// DeleteTask removes a Task by ID. Deleting a missing ID is not an error.
func (r *implRepository) DeleteTask(ctx context.Context, id int64) error {
	const query = `DELETE FROM tasks WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		r.notify()
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t         model.Task
		dueAt     sql.NullInt64
		createdAt int64
		priority  string
		category  string
	)
	if err := row.Scan(
		&t.ID, &t.Title, &t.Description, &dueAt, &createdAt,
		&t.Completed, &t.Favorite, &priority, &category,
	); err != nil {
		return model.Task{}, err
	}

	if dueAt.Valid {
		due := fromMillis(dueAt.Int64)
		t.DueAt = &due
	}
	t.CreatedAt = fromMillis(createdAt)
	t.Priority = model.Priority(priority)
	t.Category = model.Category(category)
	return t, nil
}

func toMillis(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
