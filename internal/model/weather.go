package model

import "time"

// WeatherSnapshot is the current weather for one location, as shown by the widget.
type WeatherSnapshot struct {
	LocationName  string
	Region        string
	Country       string
	LocalTime     string
	TemperatureC  float64
	ConditionText string
	ConditionIcon string
	Sunrise       string
	Sunset        string
	LastUpdated   time.Time

	// How the snapshot was produced.
	FromCache bool
	Stale     bool
}

// WeatherCacheEntry is the single cached snapshot stored per location key.
type WeatherCacheEntry struct {
	LocationKey   string
	LocationName  string
	Region        string
	Country       string
	LocalTime     string
	TemperatureC  float64
	ConditionText string
	ConditionIcon string
	Sunrise       string
	Sunset        string
	LastUpdated   time.Time
}

// NewWeatherCacheEntry denormalizes a snapshot under key, stamped with updatedAt.
func NewWeatherCacheEntry(key string, s WeatherSnapshot, updatedAt time.Time) WeatherCacheEntry {
	return WeatherCacheEntry{
		LocationKey:   key,
		LocationName:  s.LocationName,
		Region:        s.Region,
		Country:       s.Country,
		LocalTime:     s.LocalTime,
		TemperatureC:  s.TemperatureC,
		ConditionText: s.ConditionText,
		ConditionIcon: s.ConditionIcon,
		Sunrise:       s.Sunrise,
		Sunset:        s.Sunset,
		LastUpdated:   updatedAt,
	}
}

// Snapshot rebuilds the snapshot held by the cache entry.
func (e WeatherCacheEntry) Snapshot() WeatherSnapshot {
	return WeatherSnapshot{
		LocationName:  e.LocationName,
		Region:        e.Region,
		Country:       e.Country,
		LocalTime:     e.LocalTime,
		TemperatureC:  e.TemperatureC,
		ConditionText: e.ConditionText,
		ConditionIcon: e.ConditionIcon,
		Sunrise:       e.Sunrise,
		Sunset:        e.Sunset,
		LastUpdated:   e.LastUpdated,
		FromCache:     true,
	}
}
