package weather

import (
	"context"

	"todo-weather/internal/model"
)

// UseCase is the cache-aside weather service behind the widget.
type UseCase interface {
	// GetWeather serves a fresh cached snapshot, else fetches and caches one.
	// When the fetch fails an expired snapshot is returned with Stale set.
	GetWeather(ctx context.Context, location string) (model.WeatherSnapshot, error)
	// RefreshWeather always fetches. An empty location reuses the last one asked for.
	RefreshWeather(ctx context.Context, location string) (model.WeatherSnapshot, error)
	// ClearCache drops one location, or every location when empty.
	ClearCache(ctx context.Context, location string) error
	// LoadDefault is GetWeather for the configured default location.
	LoadDefault(ctx context.Context) (model.WeatherSnapshot, error)
	// WatchWeather streams the cached snapshot for location as it changes.
	WatchWeather(ctx context.Context, location string) (<-chan model.WeatherSnapshot, error)
}
