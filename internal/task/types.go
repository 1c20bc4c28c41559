package task

import (
	"time"

	"todo-weather/internal/model"
)

// --- Filter ---

// Status is the completion/favorite dimension of a Filter.
type Status string

const (
	StatusAll       Status = "all"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFavorites Status = "favorites"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAll, StatusPending, StatusCompleted, StatusFavorites:
		return true
	}
	return false
}

// DateBucket is the due-date dimension of a Filter.
type DateBucket string

const (
	DateAll     DateBucket = "all"
	DateToday   DateBucket = "today"
	DateOverdue DateBucket = "overdue"
)

func (d DateBucket) IsValid() bool {
	switch d {
	case DateAll, DateToday, DateOverdue:
		return true
	}
	return false
}

// Filter is the transient, in-memory display filter. One value per dimension.
type Filter struct {
	Category    *model.Category
	Priority    *model.Priority
	Status      Status
	Date        DateBucket
	SearchQuery string
}

// DefaultFilter is the reset state: every dimension "all", no search.
func DefaultFilter() Filter {
	return Filter{Status: StatusAll, Date: DateAll}
}

// Normalize maps empty enum values to "all".
func (f Filter) Normalize() Filter {
	if f.Status == "" {
		f.Status = StatusAll
	}
	if f.Date == "" {
		f.Date = DateAll
	}
	return f
}

// Validate reports the first invalid dimension.
func (f Filter) Validate() error {
	f = f.Normalize()
	if f.Category != nil && !f.Category.IsValid() {
		return ErrInvalidCategory
	}
	if f.Priority != nil && !f.Priority.IsValid() {
		return ErrInvalidPriority
	}
	if !f.Status.IsValid() || !f.Date.IsValid() {
		return ErrInvalidFilter
	}
	return nil
}

// --- Views ---

// View selects one of the stored task queries.
type View string

const (
	ViewAll        View = "all"
	ViewCompleted  View = "completed"
	ViewIncomplete View = "incomplete"
	ViewFavorite   View = "favorite"
	ViewToday      View = "today"
	ViewOverdue    View = "overdue"
)

func (v View) IsValid() bool {
	switch v {
	case ViewAll, ViewCompleted, ViewIncomplete, ViewFavorite, ViewToday, ViewOverdue:
		return true
	}
	return false
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	DueAt       *time.Time
	Priority    model.Priority // defaults to Low
	Category    model.Category // defaults to OTHER
	Completed   bool
	Favorite    bool
}

type UpdateInput struct {
	ID          int64
	Title       string
	Description string
	DueAt       *time.Time
	Priority    model.Priority
	Category    model.Category
	Completed   bool
	Favorite    bool
}

// ListInput picks a view, optionally narrowed to one category and/or priority.
type ListInput struct {
	View     View
	Category *model.Category
	Priority *model.Priority
}

// --- UseCase Outputs ---

type ListOutput struct {
	Tasks []model.Task
	Count int
}
