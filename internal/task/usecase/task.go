package usecase

import (
	"context"
	"fmt"

	"todo-weather/internal/model"
	"todo-weather/internal/task"
	"todo-weather/internal/task/repository"
)

// Create validates the input, applies defaults, and stores a new task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	title, priority, category, err := normalizeFields(input.Title, input.Priority, input.Category)
	if err != nil {
		return model.Task{}, err
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:       title,
		Description: input.Description,
		DueAt:       input.DueAt,
		CreatedAt:   uc.now(),
		Completed:   input.Completed,
		Favorite:    input.Favorite,
		Priority:    priority,
		Category:    category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: failed to create task %q: %v", title, err)
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.l.Infof(ctx, "task.usecase.Create: created task id=%d", created.ID)
	return created, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Detail: failed to get task id=%d: %v", id, err)
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	if t.ID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Update replaces the task identified by input.ID. CreatedAt is kept.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (model.Task, error) {
	title, priority, category, err := normalizeFields(input.Title, input.Priority, input.Category)
	if err != nil {
		return model.Task{}, err
	}

	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:          input.ID,
		Title:       title,
		Description: input.Description,
		DueAt:       input.DueAt,
		Completed:   input.Completed,
		Favorite:    input.Favorite,
		Priority:    priority,
		Category:    category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update: failed to update task id=%d: %v", input.ID, err)
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	if updated.ID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}

	uc.l.Infof(ctx, "task.usecase.Update: updated task id=%d", updated.ID)
	return updated, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete: failed to delete task id=%d: %v", id, err)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	uc.l.Infof(ctx, "task.usecase.Delete: deleted task id=%d", id)
	return nil
}

func (uc *implUseCase) ToggleCompleted(ctx context.Context, id int64) (model.Task, error) {
	return uc.toggle(ctx, id, func(t *model.Task) { t.Completed = !t.Completed })
}

func (uc *implUseCase) ToggleFavorite(ctx context.Context, id int64) (model.Task, error) {
	return uc.toggle(ctx, id, func(t *model.Task) { t.Favorite = !t.Favorite })
}

// toggle reads the task, flips one flag, and writes the whole row back.
func (uc *implUseCase) toggle(ctx context.Context, id int64, flip func(*model.Task)) (model.Task, error) {
	t, err := uc.Detail(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	flip(&t)

	return uc.Update(ctx, task.UpdateInput{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueAt:       t.DueAt,
		Priority:    t.Priority,
		Category:    t.Category,
		Completed:   t.Completed,
		Favorite:    t.Favorite,
	})
}
