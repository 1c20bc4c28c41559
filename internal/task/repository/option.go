package repository

import (
	"time"

	"todo-weather/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title       string
	Description string
	DueAt       *time.Time
	CreatedAt   time.Time
	Completed   bool
	Favorite    bool
	Priority    model.Priority
	Category    model.Category
}

// UpdateTaskOptions replaces every mutable column of the task with ID.
type UpdateTaskOptions struct {
	ID          int64
	Title       string
	Description string
	DueAt       *time.Time
	Completed   bool
	Favorite    bool
	Priority    model.Priority
	Category    model.Category
}

// Completion narrows a listing by completion state.
type Completion int

const (
	CompletionAny Completion = iota
	CompletionIncomplete
	CompletionCompleted
)

// DueWindow narrows a listing by due date, relative to ListTasksOptions.Now.
type DueWindow int

const (
	DueAny DueWindow = iota
	// DueToday: due on the same calendar day as Now.
	DueToday
	// DueOverdue: due before the start of Now's day and not completed.
	DueOverdue
)

// ListTasksOptions holds filter parameters for listing Tasks.
// All set fields are applied as AND conditions.
type ListTasksOptions struct {
	Completion   Completion
	FavoriteOnly bool
	Category     *model.Category
	Priority     *model.Priority
	Due          DueWindow
	TitleQuery   string    // substring match on title
	Now          time.Time // zero means time.Now()
}
