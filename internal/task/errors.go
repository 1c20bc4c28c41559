package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidTitle    = errors.New("task title is required")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidView     = errors.New("invalid view")
	ErrInvalidFilter   = errors.New("invalid filter status or date")
	ErrInvalidDueDate  = errors.New("invalid due date")
)
