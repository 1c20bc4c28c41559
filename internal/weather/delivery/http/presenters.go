package http

import (
	"time"

	"todo-weather/internal/model"
)

type weatherResp struct {
	LocationName  string    `json:"location_name"`
	Region        string    `json:"region"`
	Country       string    `json:"country"`
	LocalTime     string    `json:"local_time"`
	TemperatureC  float64   `json:"temperature_c"`
	ConditionText string    `json:"condition_text"`
	ConditionIcon string    `json:"condition_icon"`
	Sunrise       string    `json:"sunrise"`
	Sunset        string    `json:"sunset"`
	LastUpdated   time.Time `json:"last_updated"`
	FromCache     bool      `json:"from_cache"`
	Stale         bool      `json:"stale"`
}

func (h *handler) newWeatherResp(s model.WeatherSnapshot) weatherResp {
	return weatherResp{
		LocationName:  s.LocationName,
		Region:        s.Region,
		Country:       s.Country,
		LocalTime:     s.LocalTime,
		TemperatureC:  s.TemperatureC,
		ConditionText: s.ConditionText,
		ConditionIcon: s.ConditionIcon,
		Sunrise:       s.Sunrise,
		Sunset:        s.Sunset,
		LastUpdated:   s.LastUpdated,
		FromCache:     s.FromCache,
		Stale:         s.Stale,
	}
}
