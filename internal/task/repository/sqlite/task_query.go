package sqlite

import (
	"strings"
	"time"

	repo "todo-weather/internal/task/repository"
)

const priorityRank = `CASE priority WHEN 'High' THEN 1 WHEN 'Medium' THEN 2 WHEN 'Low' THEN 3 ELSE 4 END`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListQuery builds the WHERE + ORDER BY clause for ListTasks.
// All set fields are applied as AND conditions.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any

	now := opt.Now
	if now.IsZero() {
		now = time.Now()
	}

	// Filters
	switch opt.Completion {
	case repo.CompletionIncomplete:
		conditions = append(conditions, "completed = 0")
	case repo.CompletionCompleted:
		conditions = append(conditions, "completed = 1")
	}
	if opt.FavoriteOnly {
		conditions = append(conditions, "favorite = 1")
	}
	if opt.Category != nil {
		conditions = append(conditions, "category = ?")
		args = append(args, string(*opt.Category))
	}
	if opt.Priority != nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, string(*opt.Priority))
	}
	switch opt.Due {
	case repo.DueToday:
		start, next := r.dates.DayBounds(now)
		conditions = append(conditions, "due_at >= ? AND due_at < ?")
		args = append(args, start.UnixMilli(), next.UnixMilli())
	case repo.DueOverdue:
		start, _ := r.dates.DayBounds(now)
		conditions = append(conditions, "due_at < ? AND completed = 0")
		args = append(args, start.UnixMilli())
	}
	if opt.TitleQuery != "" {
		conditions = append(conditions, `title LIKE ? ESCAPE '\'`)
		args = append(args, "%"+likeEscaper.Replace(opt.TitleQuery)+"%")
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Sorting: keys that a filter pins to one value are left out.
	var order []string
	if opt.Completion == repo.CompletionAny && opt.Due == repo.DueAny {
		order = append(order, "completed ASC")
	}
	if opt.Priority == nil {
		order = append(order, priorityRank)
	}
	order = append(order, "due_at ASC NULLS LAST", "id ASC")
	parts = append(parts, "ORDER BY "+strings.Join(order, ", "))

	return strings.Join(parts, " "), args
}
