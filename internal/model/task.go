package model

import (
	"fmt"
	"strings"
	"time"
)

// Task is a user-created to-do item stored locally.
type Task struct {
	ID          int64
	Title       string
	Description string
	DueAt       *time.Time // nil when the task has no due date
	CreatedAt   time.Time  // set once at creation
	Completed   bool
	Favorite    bool
	Priority    Priority
	Category    Category
}

// HasDue reports whether the task has a due date.
func (t Task) HasDue() bool {
	return t.DueAt != nil
}

// --- Priority ---

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Rank orders priorities High (1) < Medium (2) < Low (3). Unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

func (p Priority) IsValid() bool {
	return p.Rank() < 4
}

// ParsePriority accepts the persisted names, case-insensitively.
func ParsePriority(s string) (Priority, error) {
	for _, p := range []Priority{PriorityHigh, PriorityMedium, PriorityLow} {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// --- Category ---

type Category string

const (
	CategoryWork      Category = "WORK"
	CategoryPersonal  Category = "PERSONAL"
	CategoryShopping  Category = "SHOPPING"
	CategoryHealth    Category = "HEALTH"
	CategoryFinance   Category = "FINANCE"
	CategoryEducation Category = "EDUCATION"
	CategoryHome      Category = "HOME"
	CategoryTravel    Category = "TRAVEL"
	CategoryOther     Category = "OTHER"
)

var categoryNames = map[Category]string{
	CategoryWork:      "Work",
	CategoryPersonal:  "Personal",
	CategoryShopping:  "Shopping",
	CategoryHealth:    "Health",
	CategoryFinance:   "Finance",
	CategoryEducation: "Education",
	CategoryHome:      "Home",
	CategoryTravel:    "Travel",
	CategoryOther:     "Other",
}

// Categories lists the closed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryWork, CategoryPersonal, CategoryShopping, CategoryHealth, CategoryFinance,
		CategoryEducation, CategoryHome, CategoryTravel, CategoryOther,
	}
}

// DisplayName returns the human label, e.g. "Work".
func (c Category) DisplayName() string {
	return categoryNames[c]
}

func (c Category) IsValid() bool {
	_, ok := categoryNames[c]
	return ok
}

// ParseCategory accepts the persisted name or the display name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if strings.EqualFold(string(c), s) || strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
