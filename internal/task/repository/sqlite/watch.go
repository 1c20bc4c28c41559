package sqlite

import (
	"context"

	"todo-weather/internal/model"
	repo "todo-weather/internal/task/repository"
)

// WatchTasks emits the current ListTasks result, then a fresh one after every
// committed write. A slow reader only sees the latest result.
func (r *implRepository) WatchTasks(ctx context.Context, opt repo.ListTasksOptions) (<-chan []model.Task, error) {
	ctx, cancel := context.WithCancel(ctx)

	// Subscribe before the first read so no write between the two is missed.
	changes := r.changes.Subscribe(ctx)

	first, err := r.ListTasks(ctx, opt)
	if err != nil {
		cancel()
		return nil, err
	}

	out := make(chan []model.Task, 1)
	out <- first

	go func() {
		defer cancel()
		defer close(out)

		for range changes {
			tasks, err := r.ListTasks(ctx, opt)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				continue
			}

			select {
			case <-out:
			default:
			}
			select {
			case out <- tasks:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
