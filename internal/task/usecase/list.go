package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"todo-weather/internal/model"
	"todo-weather/internal/task"
	"todo-weather/internal/task/repository"
)

func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	opt, err := uc.listOptions(input)
	if err != nil {
		return task.ListOutput{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: view=%q: %v", input.View, err)
		return task.ListOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}
	return toListOutput(tasks), nil
}

// Search matches the query against titles, case-insensitively.
// A blank query matches every task.
func (uc *implUseCase) Search(ctx context.Context, query string) (task.ListOutput, error) {
	query = strings.TrimSpace(query)

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{TitleQuery: query, Now: uc.now()})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Search: query=%q: %v", query, err)
		return task.ListOutput{}, fmt.Errorf("failed to search tasks: %w", err)
	}

	uc.l.Debugf(ctx, "task.usecase.Search: query=%q matched %d tasks", query, len(tasks))
	return toListOutput(tasks), nil
}

// Filtered applies the display filter to every task, keeping default order.
func (uc *implUseCase) Filtered(ctx context.Context, filter task.Filter) (task.ListOutput, error) {
	if err := filter.Validate(); err != nil {
		return task.ListOutput{}, err
	}

	now := uc.now()
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{Now: now})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Filtered: %v", err)
		return task.ListOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	return toListOutput(task.ApplyFilter(tasks, filter, now, uc.dateMath.Location())), nil
}

func (uc *implUseCase) Watch(ctx context.Context, input task.ListInput) (<-chan []model.Task, error) {
	opt, err := uc.listOptions(input)
	if err != nil {
		return nil, err
	}
	// The window moves with the clock on every re-query.
	opt.Now = time.Time{}

	ch, err := uc.repo.WatchTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Watch: view=%q: %v", input.View, err)
		return nil, fmt.Errorf("failed to watch tasks: %w", err)
	}
	return ch, nil
}
