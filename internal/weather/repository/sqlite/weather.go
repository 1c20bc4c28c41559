package sqlite

import (
	"context"
	"database/sql"
	"time"

	"todo-weather/internal/model"
	repo "todo-weather/internal/weather/repository"
)

const weatherColumns = `location_key, location_name, region, country, local_time, temperature_c,
	condition_text, condition_icon, sunrise, sunset, last_updated`

// GetWeather retrieves the cached entry for key. Returns nil when not cached.
func (r *implRepository) GetWeather(ctx context.Context, key string) (*model.WeatherCacheEntry, error) {
	const query = `SELECT ` + weatherColumns + ` FROM weather_cache WHERE location_key = ? LIMIT 1`

	var (
		e           model.WeatherCacheEntry
		lastUpdated int64
	)
	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&e.LocationKey, &e.LocationName, &e.Region, &e.Country, &e.LocalTime, &e.TemperatureC,
		&e.ConditionText, &e.ConditionIcon, &e.Sunrise, &e.Sunset, &lastUpdated,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetWeather"), err)
		return nil, repo.ErrFailedToGet
	}

	e.LastUpdated = time.UnixMilli(lastUpdated).UTC()
	return &e, nil
}

// UpsertWeather writes entry, replacing any row with the same key.
func (r *implRepository) UpsertWeather(ctx context.Context, e model.WeatherCacheEntry) error {
	const query = `INSERT OR REPLACE INTO weather_cache (` + weatherColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		e.LocationKey, e.LocationName, e.Region, e.Country, e.LocalTime, e.TemperatureC,
		e.ConditionText, e.ConditionIcon, e.Sunrise, e.Sunset, e.LastUpdated.UnixMilli(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertWeather"), err)
		return repo.ErrFailedToUpsert
	}

	r.changes.Publish(e.LocationKey)
	return nil
}

// DeleteWeather removes the entry for key, if any.
func (r *implRepository) DeleteWeather(ctx context.Context, key string) error {
	const query = `DELETE FROM weather_cache WHERE location_key = ?`
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteWeather"), err)
		return repo.ErrFailedToDelete
	}

	r.changes.Publish(key)
	return nil
}

// ClearWeather removes every cached entry.
func (r *implRepository) ClearWeather(ctx context.Context) error {
	const query = `DELETE FROM weather_cache`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClearWeather"), err)
		return repo.ErrFailedToDelete
	}

	r.changes.Publish("")
	return nil
}

// WatchWeather emits the entry for key now and after every write touching it.
func (r *implRepository) WatchWeather(ctx context.Context, key string) (<-chan *model.WeatherCacheEntry, error) {
	ctx, cancel := context.WithCancel(ctx)
	changes := r.changes.Subscribe(ctx)

	first, err := r.GetWeather(ctx, key)
	if err != nil {
		cancel()
		return nil, err
	}

	out := make(chan *model.WeatherCacheEntry, 1)
	out <- first

	go func() {
		defer cancel()
		defer close(out)

		for changed := range changes {
			if changed != "" && changed != key {
				continue
			}

			e, err := r.GetWeather(ctx, key)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				continue
			}

			select {
			case <-out:
			default:
			}
			select {
			case out <- e:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
