package http

import (
	"time"

	"todo-weather/internal/model"
	"todo-weather/internal/task"
)

// --- Request DTOs ---

type taskFieldsReq struct {
	Title       string `json:"title"       binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
	// Due accepts RFC3339, "2006-01-02", or phrases like "tomorrow", "in 3 days".
	Due       string `json:"due"`
	Priority  string `json:"priority"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
	Favorite  bool   `json:"favorite"`
}

type parsedFields struct {
	dueAt    *time.Time
	priority model.Priority
	category model.Category
}

// parse resolves the textual fields. Empty priority/category fall through to use case defaults.
func (r taskFieldsReq) parse(h *handler, now time.Time) (parsedFields, error) {
	var out parsedFields

	if r.Due != "" {
		due, err := h.dateMath.ParseDue(r.Due, now)
		if err != nil {
			return out, task.ErrInvalidDueDate
		}
		out.dueAt = &due
	}
	if r.Priority != "" {
		p, err := model.ParsePriority(r.Priority)
		if err != nil {
			return out, task.ErrInvalidPriority
		}
		out.priority = p
	}
	if r.Category != "" {
		c, err := model.ParseCategory(r.Category)
		if err != nil {
			return out, task.ErrInvalidCategory
		}
		out.category = c
	}
	return out, nil
}

type createReq struct {
	taskFieldsReq
}

func (r createReq) toInput(h *handler, now time.Time) (task.CreateInput, error) {
	f, err := r.parse(h, now)
	if err != nil {
		return task.CreateInput{}, err
	}
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		DueAt:       f.dueAt,
		Priority:    f.priority,
		Category:    f.category,
		Completed:   r.Completed,
		Favorite:    r.Favorite,
	}, nil
}

// ---

type updateReq struct {
	ID int64 `json:"-"` // populated from URI param
	taskFieldsReq
}

func (r updateReq) toInput(h *handler, now time.Time) (task.UpdateInput, error) {
	f, err := r.parse(h, now)
	if err != nil {
		return task.UpdateInput{}, err
	}
	return task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueAt:       f.dueAt,
		Priority:    f.priority,
		Category:    f.category,
		Completed:   r.Completed,
		Favorite:    r.Favorite,
	}, nil
}

// ---

type listReq struct {
	View     string `form:"view"`
	Category string `form:"category"`
	Priority string `form:"priority"`
}

func (r listReq) toInput() (task.ListInput, error) {
	input := task.ListInput{View: task.View(r.View)}
	if r.Category != "" {
		c, err := model.ParseCategory(r.Category)
		if err != nil {
			return input, task.ErrInvalidCategory
		}
		input.Category = &c
	}
	if r.Priority != "" {
		p, err := model.ParsePriority(r.Priority)
		if err != nil {
			return input, task.ErrInvalidPriority
		}
		input.Priority = &p
	}
	return input, nil
}

// ---

type filterReq struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	Date     string `json:"date"`
	Search   string `json:"search"`
}

func (r filterReq) toFilter() (task.Filter, error) {
	f := task.Filter{
		Status:      task.Status(r.Status),
		Date:        task.DateBucket(r.Date),
		SearchQuery: r.Search,
	}
	if r.Category != "" {
		c, err := model.ParseCategory(r.Category)
		if err != nil {
			return f, task.ErrInvalidCategory
		}
		f.Category = &c
	}
	if r.Priority != "" {
		p, err := model.ParsePriority(r.Priority)
		if err != nil {
			return f, task.ErrInvalidPriority
		}
		f.Priority = &p
	}
	return f, f.Validate()
}

// --- Response DTOs ---

type taskResp struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DueAt        *time.Time `json:"due_at"`
	CreatedAt    time.Time  `json:"created_at"`
	Completed    bool       `json:"completed"`
	Favorite     bool       `json:"favorite"`
	Priority     string     `json:"priority"`
	Category     string     `json:"category"`
	CategoryName string     `json:"category_name"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		DueAt:        t.DueAt,
		CreatedAt:    t.CreatedAt,
		Completed:    t.Completed,
		Favorite:     t.Favorite,
		Priority:     string(t.Priority),
		Category:     string(t.Category),
		CategoryName: t.Category.DisplayName(),
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return listResp{Tasks: items, Count: len(items)}
}

type filterResp struct {
	Category *string `json:"category"`
	Priority *string `json:"priority"`
	Status   string  `json:"status"`
	Date     string  `json:"date"`
	Search   string  `json:"search"`
}

func (h *handler) newFilterResp(f task.Filter) filterResp {
	f = f.Normalize()
	resp := filterResp{
		Status: string(f.Status),
		Date:   string(f.Date),
		Search: f.SearchQuery,
	}
	if f.Category != nil {
		c := string(*f.Category)
		resp.Category = &c
	}
	if f.Priority != nil {
		p := string(*f.Priority)
		resp.Priority = &p
	}
	return resp
}
