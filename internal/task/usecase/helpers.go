package usecase

import (
	"strings"

	"todo-weather/internal/model"
	"todo-weather/internal/task"
	"todo-weather/internal/task/repository"
)

// normalizeFields trims the title and fills enum defaults, then validates.
func normalizeFields(title string, priority model.Priority, category model.Category) (string, model.Priority, model.Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", "", task.ErrInvalidTitle
	}

	if priority == "" {
		priority = model.PriorityLow
	}
	if !priority.IsValid() {
		return "", "", "", task.ErrInvalidPriority
	}

	if category == "" {
		category = model.CategoryOther
	}
	if !category.IsValid() {
		return "", "", "", task.ErrInvalidCategory
	}

	return title, priority, category, nil
}

// listOptions maps a view onto repository filters.
func (uc *implUseCase) listOptions(input task.ListInput) (repository.ListTasksOptions, error) {
	opt := repository.ListTasksOptions{
		Category: input.Category,
		Priority: input.Priority,
		Now:      uc.now(),
	}
	if opt.Category != nil && !opt.Category.IsValid() {
		return opt, task.ErrInvalidCategory
	}
	if opt.Priority != nil && !opt.Priority.IsValid() {
		return opt, task.ErrInvalidPriority
	}

	switch input.View {
	case "", task.ViewAll:
	case task.ViewCompleted:
		opt.Completion = repository.CompletionCompleted
	case task.ViewIncomplete:
		opt.Completion = repository.CompletionIncomplete
	case task.ViewFavorite:
		opt.FavoriteOnly = true
	case task.ViewToday:
		opt.Due = repository.DueToday
	case task.ViewOverdue:
		opt.Due = repository.DueOverdue
	default:
		return opt, task.ErrInvalidView
	}
	return opt, nil
}

func toListOutput(tasks []model.Task) task.ListOutput {
	if tasks == nil {
		tasks = []model.Task{}
	}
	return task.ListOutput{Tasks: tasks, Count: len(tasks)}
}
