package usecase

import (
	"context"
	"fmt"
	"time"

	"todo-weather/internal/model"
	"todo-weather/internal/weather"
)

// GetWeather is the cache-aside read. Concurrent misses for one key each hit the remote.
func (uc *implUseCase) GetWeather(ctx context.Context, location string) (model.WeatherSnapshot, error) {
	key := weather.LocationKey(location)
	if key == "" {
		return model.WeatherSnapshot{}, weather.ErrEmptyLocation
	}
	uc.remember(location)

	cached, err := uc.cache.GetWeather(ctx, key)
	if err != nil {
		uc.l.Warnf(ctx, "weather.usecase.GetWeather: cache read for %q failed, treating as miss: %v", key, err)
		cached = nil
	}

	now := uc.now()
	if cached != nil && now.Sub(cached.LastUpdated) < uc.opts.CacheTTL {
		uc.l.Debugf(ctx, "weather.usecase.GetWeather: cache hit for %q", key)
		return cached.Snapshot(), nil
	}

	fresh, err := uc.remote.FetchWeather(ctx, location)
	if err != nil {
		if cached != nil {
			uc.l.Warnf(ctx, "weather.usecase.GetWeather: fetch for %q failed, serving stale cache: %v", key, err)
			snap := cached.Snapshot()
			snap.Stale = true
			return snap, nil
		}
		uc.l.Errorf(ctx, "weather.usecase.GetWeather: fetch for %q failed: %v", key, err)
		return model.WeatherSnapshot{}, fmt.Errorf("%w: %w", weather.ErrFetchFailed, err)
	}

	return uc.store(ctx, key, fresh, now), nil
}

// RefreshWeather bypasses the cache. Failures are returned, never masked by the cache.
func (uc *implUseCase) RefreshWeather(ctx context.Context, location string) (model.WeatherSnapshot, error) {
	if weather.LocationKey(location) == "" {
		location = uc.last()
	}
	key := weather.LocationKey(location)
	if key == "" {
		return model.WeatherSnapshot{}, weather.ErrEmptyLocation
	}
	uc.remember(location)

	fresh, err := uc.remote.FetchWeather(ctx, location)
	if err != nil {
		uc.l.Errorf(ctx, "weather.usecase.RefreshWeather: fetch for %q failed: %v", key, err)
		return model.WeatherSnapshot{}, fmt.Errorf("%w: %w", weather.ErrFetchFailed, err)
	}

	return uc.store(ctx, key, fresh, uc.now()), nil
}

func (uc *implUseCase) ClearCache(ctx context.Context, location string) error {
	key := weather.LocationKey(location)
	if key == "" {
		if err := uc.cache.ClearWeather(ctx); err != nil {
			uc.l.Errorf(ctx, "weather.usecase.ClearCache: %v", err)
			return fmt.Errorf("failed to clear weather cache: %w", err)
		}
		uc.l.Infof(ctx, "weather.usecase.ClearCache: cleared all locations")
		return nil
	}

	if err := uc.cache.DeleteWeather(ctx, key); err != nil {
		uc.l.Errorf(ctx, "weather.usecase.ClearCache: key=%q: %v", key, err)
		return fmt.Errorf("failed to clear weather cache: %w", err)
	}
	uc.l.Infof(ctx, "weather.usecase.ClearCache: cleared %q", key)
	return nil
}

func (uc *implUseCase) LoadDefault(ctx context.Context) (model.WeatherSnapshot, error) {
	return uc.GetWeather(ctx, uc.opts.DefaultLocation)
}

// WatchWeather maps cache entries for location to snapshots, skipping removals.
func (uc *implUseCase) WatchWeather(ctx context.Context, location string) (<-chan model.WeatherSnapshot, error) {
	key := weather.LocationKey(location)
	if key == "" {
		return nil, weather.ErrEmptyLocation
	}

	entries, err := uc.cache.WatchWeather(ctx, key)
	if err != nil {
		uc.l.Errorf(ctx, "weather.usecase.WatchWeather: key=%q: %v", key, err)
		return nil, fmt.Errorf("failed to watch weather: %w", err)
	}

	out := make(chan model.WeatherSnapshot)
	go func() {
		defer close(out)
		for e := range entries {
			if e == nil {
				continue
			}
			select {
			case out <- e.Snapshot():
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// store caches fresh under key and returns it stamped with now. A failed write is logged only.
func (uc *implUseCase) store(ctx context.Context, key string, fresh model.WeatherSnapshot, now time.Time) model.WeatherSnapshot {
	if err := uc.cache.UpsertWeather(ctx, model.NewWeatherCacheEntry(key, fresh, now)); err != nil {
		uc.l.Errorf(ctx, "weather.usecase: failed to cache %q: %v", key, err)
	}
	fresh.LastUpdated = now
	fresh.FromCache = false
	fresh.Stale = false
	return fresh
}

func (uc *implUseCase) remember(location string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.lastLocation = location
}

// last returns the last location asked for, or the default.
func (uc *implUseCase) last() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.lastLocation != "" {
		return uc.lastLocation
	}
	return uc.opts.DefaultLocation
}
