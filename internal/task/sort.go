package task

import (
	"sort"

	"todo-weather/internal/model"
)

// SortDefault returns a sorted copy: incomplete first, then High < Medium < Low,
// then due date ascending with undated tasks last, then ID.
func SortDefault(tasks []model.Task) []model.Task {
	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		return Less(sorted[i], sorted[j])
	})
	return sorted
}

// Less is the default task ordering.
func Less(a, b model.Task) bool {
	if a.Completed != b.Completed {
		return !a.Completed
	}
	if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
		return ra < rb
	}
	switch {
	case a.DueAt == nil && b.DueAt != nil:
		return false
	case a.DueAt != nil && b.DueAt == nil:
		return true
	case a.DueAt != nil && b.DueAt != nil && !a.DueAt.Equal(*b.DueAt):
		return a.DueAt.Before(*b.DueAt)
	}
	return a.ID < b.ID
}
