package task

import (
	"strings"
	"time"

	"todo-weather/internal/model"
)

// ApplyFilter returns the tasks that pass f, in input order.
//
// The search query is an AND gate on title or description. The remaining
// dimensions are OR-ed: a task passes when any selected dimension matches,
// and passes unconditionally when none is selected. "Today" compares calendar
// days in loc.
func ApplyFilter(tasks []model.Task, f Filter, now time.Time, loc *time.Location) []model.Task {
	f = f.Normalize()
	if loc == nil {
		loc = time.Local
	}
	query := strings.ToLower(strings.TrimSpace(f.SearchQuery))

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if query != "" && !matchesSearch(t, query) {
			continue
		}

		active, matched := 0, false
		check := func(ok bool) {
			active++
			matched = matched || ok
		}

		if f.Category != nil {
			check(t.Category == *f.Category)
		}
		if f.Priority != nil {
			check(t.Priority == *f.Priority)
		}
		if f.Status != StatusAll {
			check(matchesStatus(t, f.Status))
		}
		if f.Date != DateAll {
			check(matchesDate(t, f.Date, now, loc))
		}

		if active == 0 || matched {
			out = append(out, t)
		}
	}
	return out
}

// matchesSearch expects query already lower-cased.
func matchesSearch(t model.Task, query string) bool {
	return strings.Contains(strings.ToLower(t.Title), query) ||
		strings.Contains(strings.ToLower(t.Description), query)
}

func matchesStatus(t model.Task, s Status) bool {
	switch s {
	case StatusPending:
		return !t.Completed
	case StatusCompleted:
		return t.Completed
	case StatusFavorites:
		return t.Favorite
	default:
		return true
	}
}

// matchesDate never matches a task without a due date.
func matchesDate(t model.Task, d DateBucket, now time.Time, loc *time.Location) bool {
	if t.DueAt == nil {
		return false
	}
	switch d {
	case DateToday:
		dy, dm, dd := t.DueAt.In(loc).Date()
		ny, nm, nd := now.In(loc).Date()
		return dy == ny && dm == nm && dd == nd
	case DateOverdue:
		return t.DueAt.Before(now) && !t.Completed
	default:
		return true
	}
}
