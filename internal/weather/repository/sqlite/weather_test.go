package sqlite_test

import (
	"context"
	"testing"
	"time"

	"todo-weather/internal/model"
	storage "todo-weather/internal/storage/sqlite"
	"todo-weather/internal/weather/repository"
	"todo-weather/internal/weather/repository/sqlite"
	"todo-weather/pkg/log"
)

func newRepo(t *testing.T) repository.CacheRepository {
	t.Helper()
	db, err := storage.Open(context.Background(), storage.MemoryPath, log.NewNop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlite.New(db, log.NewNop())
}

func entry(key string, temp float64, at time.Time) model.WeatherCacheEntry {
	return model.WeatherCacheEntry{
		LocationKey:   key,
		LocationName:  key,
		Country:       "South Africa",
		TemperatureC:  temp,
		ConditionText: "Sunny",
		Sunrise:       "06:10 AM",
		Sunset:        "05:40 PM",
		LastUpdated:   at,
	}
}

func TestUpsertAndGet(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	got, err := r.GetWeather(ctx, "Johannesburg")
	if err != nil || got != nil {
		t.Fatalf("expected miss, got %+v, %v", got, err)
	}

	if err := r.UpsertWeather(ctx, entry("Johannesburg", 21.5, at)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err = r.GetWeather(ctx, "Johannesburg")
	if err != nil || got == nil {
		t.Fatalf("expected hit, got %+v, %v", got, err)
	}
	if got.TemperatureC != 21.5 || got.Sunset != "05:40 PM" || !got.LastUpdated.Equal(at) {
		t.Errorf("unexpected entry: %+v", got)
	}

	// Replace on conflict keeps one row per key.
	later := at.Add(time.Hour)
	if err := r.UpsertWeather(ctx, entry("Johannesburg", 18, later)); err != nil {
		t.Fatalf("upsert again: %v", err)
	}
	got, _ = r.GetWeather(ctx, "Johannesburg")
	if got.TemperatureC != 18 || !got.LastUpdated.Equal(later) {
		t.Errorf("expected replaced entry, got %+v", got)
	}
}

func TestDeleteAndClear(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()
	at := time.Now().UTC()

	for _, key := range []string{"Cape Town", "Durban", "Pretoria"} {
		if err := r.UpsertWeather(ctx, entry(key, 20, at)); err != nil {
			t.Fatalf("upsert %s: %v", key, err)
		}
	}

	if err := r.DeleteWeather(ctx, "Durban"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := r.GetWeather(ctx, "Durban"); got != nil {
		t.Errorf("expected Durban removed")
	}
	if got, _ := r.GetWeather(ctx, "Cape Town"); got == nil {
		t.Errorf("expected Cape Town kept")
	}

	if err := r.ClearWeather(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	for _, key := range []string{"Cape Town", "Pretoria"} {
		if got, _ := r.GetWeather(ctx, key); got != nil {
			t.Errorf("expected %s cleared", key)
		}
	}
}

func receive(t *testing.T, ch <-chan *model.WeatherCacheEntry) *model.WeatherCacheEntry {
	t.Helper()
	select {
	case e, ok := <-ch:
		if !ok {
			t.Fatalf("watch channel closed")
		}
		return e
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watch emission")
	}
	return nil
}

func TestWatchWeather(t *testing.T) {
	r := newRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	at := time.Now().UTC()

	ch, err := r.WatchWeather(ctx, "Durban")
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if e := receive(t, ch); e != nil {
		t.Fatalf("expected nil initial entry, got %+v", e)
	}

	if err := r.UpsertWeather(ctx, entry("Durban", 25, at)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if e := receive(t, ch); e == nil || e.TemperatureC != 25 {
		t.Fatalf("expected Durban entry, got %+v", e)
	}

	// Writes to other keys are ignored.
	if err := r.UpsertWeather(ctx, entry("Cape Town", 15, at)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	select {
	case e := <-ch:
		t.Fatalf("unexpected emission for another key: %+v", e)
	case <-time.After(50 * time.Millisecond):
	}

	if err := r.ClearWeather(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if e := receive(t, ch); e != nil {
		t.Fatalf("expected nil after clear, got %+v", e)
	}
}
