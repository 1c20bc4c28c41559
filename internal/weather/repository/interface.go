package repository

import (
	"context"

	"todo-weather/internal/model"
)

// CacheRepository stores at most one weather snapshot per location key.
type CacheRepository interface {
	// GetWeather returns nil when key is not cached.
	GetWeather(ctx context.Context, key string) (*model.WeatherCacheEntry, error)
	// UpsertWeather replaces any entry with the same key.
	UpsertWeather(ctx context.Context, entry model.WeatherCacheEntry) error
	DeleteWeather(ctx context.Context, key string) error
	ClearWeather(ctx context.Context) error

	// WatchWeather emits the entry for key now and after every write that
	// touches it (nil once removed). The channel closes when ctx is done.
	WatchWeather(ctx context.Context, key string) (<-chan *model.WeatherCacheEntry, error)
}

// RemoteRepository fetches current weather from the third-party service.
type RemoteRepository interface {
	// FetchWeather queries with the location exactly as given.
	FetchWeather(ctx context.Context, location string) (model.WeatherSnapshot, error)
}
