package usecase

import (
	"context"
	"sync"

	"todo-weather/internal/model"
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

// Mock cache backed by a map
type mockCache struct {
	mu       sync.Mutex
	entries  map[string]model.WeatherCacheEntry
	getErr   error
	watchErr error
	watchCh  chan *model.WeatherCacheEntry
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string]model.WeatherCacheEntry)}
}

func (m *mockCache) GetWeather(ctx context.Context, key string) (*model.WeatherCacheEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	e, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *mockCache) UpsertWeather(ctx context.Context, e model.WeatherCacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.LocationKey] = e
	return nil
}

func (m *mockCache) DeleteWeather(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *mockCache) ClearWeather(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]model.WeatherCacheEntry)
	return nil
}

func (m *mockCache) WatchWeather(ctx context.Context, key string) (<-chan *model.WeatherCacheEntry, error) {
	if m.watchErr != nil {
		return nil, m.watchErr
	}
	return m.watchCh, nil
}

// Mock remote recording every query
type mockRemote struct {
	mu      sync.Mutex
	queries []string
	snap    model.WeatherSnapshot
	err     error
}

func (m *mockRemote) FetchWeather(ctx context.Context, location string) (model.WeatherSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, location)
	return m.snap, m.err
}

func (m *mockRemote) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queries)
}
