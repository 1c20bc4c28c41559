// Package state keeps the display filter and the filtered task list for the UI.
package state

import (
	"context"
	"sync"
	"time"

	"todo-weather/internal/model"
	"todo-weather/internal/task"
	"todo-weather/pkg/broadcast"
	pkgLog "todo-weather/pkg/log"
)

// Holder recomputes the filtered list whenever the stored tasks or the filter change.
type Holder struct {
	l   pkgLog.Logger
	uc  task.UseCase
	loc *time.Location
	now func() time.Time

	mu      sync.RWMutex
	filter  task.Filter
	tasks   []model.Task
	current []model.Task
	ready   bool

	out *broadcast.Broadcaster[[]model.Task]
}

// New creates a Holder with the default filter. loc decides the "today" bucket.
func New(l pkgLog.Logger, uc task.UseCase, loc *time.Location) *Holder {
	return &Holder{
		l:       l,
		uc:      uc,
		loc:     loc,
		now:     time.Now,
		filter:  task.DefaultFilter(),
		current: []model.Task{},
		out:     broadcast.New[[]model.Task](),
	}
}

// Run follows the all-tasks stream until ctx is done.
func (h *Holder) Run(ctx context.Context) error {
	ch, err := h.uc.Watch(ctx, task.ListInput{View: task.ViewAll})
	if err != nil {
		return err
	}

	h.l.Infof(ctx, "task.state.Run: following task changes")
	for tasks := range ch {
		h.mu.Lock()
		h.tasks = tasks
		h.ready = true
		h.recomputeLocked()
		h.mu.Unlock()
	}

	h.out.Close()
	return ctx.Err()
}

func (h *Holder) Filter() task.Filter {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.filter
}

// SetFilter replaces the whole filter.
func (h *Holder) SetFilter(f task.Filter) error {
	if err := f.Validate(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.filter = f.Normalize()
	h.recomputeLocked()
	return nil
}

// ClearFilter restores the default filter.
func (h *Holder) ClearFilter() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.filter = task.DefaultFilter()
	h.recomputeLocked()
}

// Current returns the filtered list. Today and Overdue are judged against the
// clock at call time, so a task crossing its due time moves buckets without
// any write.
func (h *Holder) Current() []model.Task {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.filter.Date == task.DateAll {
		return h.current
	}
	return task.ApplyFilter(h.tasks, h.filter, h.now(), h.loc)
}

// Ready reports whether the first task snapshot has arrived.
func (h *Holder) Ready() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ready
}

// Subscribe emits the current list, then every recomputed one.
// Slow readers only see the latest list.
func (h *Holder) Subscribe(ctx context.Context) <-chan []model.Task {
	updates := h.out.Subscribe(ctx)

	out := make(chan []model.Task, 1)
	out <- h.Current()

	go func() {
		defer close(out)
		for tasks := range updates {
			select {
			case <-out:
			default:
			}
			select {
			case out <- tasks:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// recomputeLocked must be called with h.mu held for writing.
// Published slices are never mutated afterwards.
func (h *Holder) recomputeLocked() {
	h.current = task.ApplyFilter(h.tasks, h.filter, h.now(), h.loc)
	h.out.Publish(h.current)
}
