package task

import (
	"context"

	"todo-weather/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (model.Task, error)
	Detail(ctx context.Context, id int64) (model.Task, error)
	// Update replaces every mutable field of the task with the same ID.
	Update(ctx context.Context, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, id int64) error
	ToggleCompleted(ctx context.Context, id int64) (model.Task, error)
	ToggleFavorite(ctx context.Context, id int64) (model.Task, error)

	// List returns one of the stored views, in default order.
	List(ctx context.Context, input ListInput) (ListOutput, error)
	// Search matches titles only, as the stored search view does. A blank
	// query matches every task.
	Search(ctx context.Context, query string) (ListOutput, error)
	// Filtered runs ApplyFilter over all tasks.
	Filtered(ctx context.Context, filter Filter) (ListOutput, error)
	// Watch streams a view: the current result first, then one per change.
	Watch(ctx context.Context, input ListInput) (<-chan []model.Task, error)
}
