package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"todo-weather/internal/model"
	"todo-weather/internal/weather"
)

var (
	fixedNow   = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	errNetwork = errors.New("network unreachable")
)

func newTestUseCase(cache *mockCache, remote *mockRemote) *implUseCase {
	uc := New(&mockLogger{}, cache, remote, weather.Options{})
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func cachedAt(cache *mockCache, key string, temp float64, age time.Duration) {
	cache.entries[key] = model.WeatherCacheEntry{
		LocationKey:  key,
		LocationName: key,
		TemperatureC: temp,
		LastUpdated:  fixedNow.Add(-age),
	}
}

func TestGetWeather(t *testing.T) {
	t.Run("Fresh Cache Skips Remote", func(t *testing.T) {
		cache, remote := newMockCache(), &mockRemote{}
		cachedAt(cache, "Johannesburg", 19, 10*time.Minute)

		snap, err := newTestUseCase(cache, remote).GetWeather(context.Background(), "Johannesburg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if remote.calls() != 0 {
			t.Errorf("expected no remote call, got %d", remote.calls())
		}
		if snap.TemperatureC != 19 || !snap.FromCache || snap.Stale {
			t.Errorf("expected fresh cached snapshot, got %+v", snap)
		}
	})

	t.Run("Expired Cache Refetches And Stores", func(t *testing.T) {
		cache := newMockCache()
		remote := &mockRemote{snap: model.WeatherSnapshot{LocationName: "Johannesburg", TemperatureC: 23}}
		cachedAt(cache, "Johannesburg", 19, 20*time.Minute)

		snap, err := newTestUseCase(cache, remote).GetWeather(context.Background(), "Johannesburg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if remote.calls() != 1 || snap.TemperatureC != 23 || snap.FromCache {
			t.Errorf("expected fresh remote snapshot, got %+v (calls=%d)", snap, remote.calls())
		}
		stored := cache.entries["Johannesburg"]
		if stored.TemperatureC != 23 || !stored.LastUpdated.Equal(fixedNow) {
			t.Errorf("expected cache updated, got %+v", stored)
		}
	})

	t.Run("TTL Boundary Is Expired", func(t *testing.T) {
		cache := newMockCache()
		remote := &mockRemote{snap: model.WeatherSnapshot{TemperatureC: 23}}
		cachedAt(cache, "Johannesburg", 19, weather.DefaultCacheTTL)

		if _, err := newTestUseCase(cache, remote).GetWeather(context.Background(), "Johannesburg"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if remote.calls() != 1 {
			t.Errorf("expected refetch at exactly the TTL, got %d calls", remote.calls())
		}
	})

	t.Run("Stale Fallback On Remote Failure", func(t *testing.T) {
		cache, remote := newMockCache(), &mockRemote{err: errNetwork}
		cachedAt(cache, "Johannesburg", 19, 20*time.Minute)

		snap, err := newTestUseCase(cache, remote).GetWeather(context.Background(), "Johannesburg")
		if err != nil {
			t.Fatalf("expected stale snapshot, got error %v", err)
		}
		if snap.TemperatureC != 19 || !snap.FromCache || !snap.Stale {
			t.Errorf("expected stale cached snapshot, got %+v", snap)
		}
	})

	t.Run("No Cache And Remote Failure", func(t *testing.T) {
		cache, remote := newMockCache(), &mockRemote{err: errNetwork}

		_, err := newTestUseCase(cache, remote).GetWeather(context.Background(), "Johannesburg")
		if !errors.Is(err, weather.ErrFetchFailed) || !errors.Is(err, errNetwork) {
			t.Errorf("expected ErrFetchFailed wrapping the remote error, got %v", err)
		}
	})

	t.Run("Key Is Trimmed But Remote Gets Raw Input", func(t *testing.T) {
		cache := newMockCache()
		remote := &mockRemote{snap: model.WeatherSnapshot{TemperatureC: 30}}

		if _, err := newTestUseCase(cache, remote).GetWeather(context.Background(), "  Durban "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if remote.queries[0] != "  Durban " {
			t.Errorf("expected raw location sent, got %q", remote.queries[0])
		}
		if _, ok := cache.entries["Durban"]; !ok {
			t.Errorf("expected entry stored under trimmed key, got %v", cache.entries)
		}
	})

	t.Run("Empty Location", func(t *testing.T) {
		_, err := newTestUseCase(newMockCache(), &mockRemote{}).GetWeather(context.Background(), "   ")
		if !errors.Is(err, weather.ErrEmptyLocation) {
			t.Errorf("expected ErrEmptyLocation, got %v", err)
		}
	})

	t.Run("Cache Read Error Is A Miss", func(t *testing.T) {
		cache := newMockCache()
		cache.getErr = errors.New("disk")
		remote := &mockRemote{snap: model.WeatherSnapshot{TemperatureC: 11}}

		snap, err := newTestUseCase(cache, remote).GetWeather(context.Background(), "Durban")
		if err != nil || snap.TemperatureC != 11 {
			t.Errorf("expected remote snapshot, got %+v, %v", snap, err)
		}
	})
}

func TestRefreshWeather(t *testing.T) {
	t.Run("Remote Failure Propagates Despite Fresh Cache", func(t *testing.T) {
		cache, remote := newMockCache(), &mockRemote{err: errNetwork}
		cachedAt(cache, "Johannesburg", 19, time.Minute)

		_, err := newTestUseCase(cache, remote).RefreshWeather(context.Background(), "Johannesburg")
		if !errors.Is(err, weather.ErrFetchFailed) {
			t.Errorf("expected ErrFetchFailed, got %v", err)
		}
	})

	t.Run("Always Calls Remote", func(t *testing.T) {
		cache := newMockCache()
		remote := &mockRemote{snap: model.WeatherSnapshot{TemperatureC: 25}}
		cachedAt(cache, "Johannesburg", 19, time.Minute)

		snap, err := newTestUseCase(cache, remote).RefreshWeather(context.Background(), "Johannesburg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if remote.calls() != 1 || snap.TemperatureC != 25 || cache.entries["Johannesburg"].TemperatureC != 25 {
			t.Errorf("expected refreshed snapshot stored, got %+v", snap)
		}
	})

	t.Run("Empty Uses Last Location", func(t *testing.T) {
		cache := newMockCache()
		remote := &mockRemote{snap: model.WeatherSnapshot{TemperatureC: 25}}
		uc := newTestUseCase(cache, remote)

		if _, err := uc.GetWeather(context.Background(), "Pretoria"); err != nil {
			t.Fatalf("get: %v", err)
		}
		if _, err := uc.RefreshWeather(context.Background(), ""); err != nil {
			t.Fatalf("refresh: %v", err)
		}
		if remote.queries[1] != "Pretoria" {
			t.Errorf("expected refresh of last location, got %q", remote.queries[1])
		}
	})

	t.Run("Empty Without History Uses Default", func(t *testing.T) {
		remote := &mockRemote{snap: model.WeatherSnapshot{TemperatureC: 25}}
		if _, err := newTestUseCase(newMockCache(), remote).RefreshWeather(context.Background(), " "); err != nil {
			t.Fatalf("refresh: %v", err)
		}
		if remote.queries[0] != weather.DefaultDefaultLocation {
			t.Errorf("expected default location, got %q", remote.queries[0])
		}
	})
}

func TestLoadDefault(t *testing.T) {
	cache := newMockCache()
	remote := &mockRemote{snap: model.WeatherSnapshot{TemperatureC: 14}}
	uc := New(&mockLogger{}, cache, remote, weather.Options{DefaultLocation: "Cape Town", CacheTTL: time.Hour})
	uc.now = func() time.Time { return fixedNow }

	if _, err := uc.LoadDefault(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remote.queries[0] != "Cape Town" {
		t.Errorf("expected configured default, got %q", remote.queries[0])
	}

	// 30 minutes is fresh under a one hour TTL.
	cachedAt(cache, "Cape Town", 9, 30*time.Minute)
	snap, err := uc.LoadDefault(context.Background())
	if err != nil || !snap.FromCache || remote.calls() != 1 {
		t.Errorf("expected cache hit under custom TTL, got %+v, %v (calls=%d)", snap, err, remote.calls())
	}
}

func TestClearCache(t *testing.T) {
	cache := newMockCache()
	cachedAt(cache, "Durban", 20, 0)
	cachedAt(cache, "Pretoria", 20, 0)
	uc := newTestUseCase(cache, &mockRemote{})

	if err := uc.ClearCache(context.Background(), " Durban "); err != nil {
		t.Fatalf("clear one: %v", err)
	}
	if _, ok := cache.entries["Durban"]; ok {
		t.Errorf("expected Durban removed")
	}
	if _, ok := cache.entries["Pretoria"]; !ok {
		t.Errorf("expected Pretoria kept")
	}

	if err := uc.ClearCache(context.Background(), ""); err != nil {
		t.Fatalf("clear all: %v", err)
	}
	if len(cache.entries) != 0 {
		t.Errorf("expected empty cache, got %v", cache.entries)
	}
}

func TestWatchWeather(t *testing.T) {
	cache := newMockCache()
	cache.watchCh = make(chan *model.WeatherCacheEntry, 2)
	cache.watchCh <- nil
	cache.watchCh <- &model.WeatherCacheEntry{LocationKey: "Durban", TemperatureC: 27}
	close(cache.watchCh)

	ch, err := newTestUseCase(cache, &mockRemote{}).WatchWeather(context.Background(), "Durban")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []model.WeatherSnapshot
	for snap := range ch {
		got = append(got, snap)
	}
	if len(got) != 1 || got[0].TemperatureC != 27 || !got[0].FromCache {
		t.Errorf("expected one cached snapshot, got %+v", got)
	}

	if _, err := newTestUseCase(cache, &mockRemote{}).WatchWeather(context.Background(), ""); !errors.Is(err, weather.ErrEmptyLocation) {
		t.Errorf("expected ErrEmptyLocation, got %v", err)
	}
}
