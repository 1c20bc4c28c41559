package usecase

import (
	"context"

	"todo-weather/internal/model"
	"todo-weather/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock task repository for testing
type mockRepo struct {
	createFunc func(opt repository.CreateTaskOptions) (model.Task, error)
	getFunc    func(id int64) (model.Task, error)
	listFunc   func(opt repository.ListTasksOptions) ([]model.Task, error)
	updateFunc func(opt repository.UpdateTaskOptions) (model.Task, error)
	deleteFunc func(id int64) error
	watchFunc  func(opt repository.ListTasksOptions) (<-chan []model.Task, error)
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Task{ID: 1, Title: opt.Title, Priority: opt.Priority, Category: opt.Category, CreatedAt: opt.CreatedAt}, nil
}

func (m *mockRepo) GetTask(ctx context.Context, id int64) (model.Task, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.Task{}, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return model.Task{}, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

func (m *mockRepo) WatchTasks(ctx context.Context, opt repository.ListTasksOptions) (<-chan []model.Task, error) {
	if m.watchFunc != nil {
		return m.watchFunc(opt)
	}
	ch := make(chan []model.Task)
	close(ch)
	return ch, nil
}
