package repository

import (
	"context"

	"todo-weather/internal/model"
)

// Repository is the data store for tasks.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetTask returns a zero Task (ID == 0) when not found.
	GetTask(ctx context.Context, id int64) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	// UpdateTask replaces the row with opt.ID; zero Task when not found.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	// WatchTasks emits the ListTasks result now and after every committed
	// mutation. The channel closes when ctx is done.
	WatchTasks(ctx context.Context, opt ListTasksOptions) (<-chan []model.Task, error)
}
