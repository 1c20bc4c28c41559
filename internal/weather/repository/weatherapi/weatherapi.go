// Package weatherapi adapts the weatherapi.com client to the weather RemoteRepository.
package weatherapi

import (
	"context"
	"fmt"

	"todo-weather/internal/model"
	"todo-weather/internal/weather/repository"
	"todo-weather/pkg/log"
	pkgWeather "todo-weather/pkg/weatherapi"
)

type implRepository struct {
	client *pkgWeather.Client
	l      log.Logger
}

// New wraps client. A nil client yields a repository whose fetches fail with
// repository.ErrRemoteNotConfigured.
func New(client *pkgWeather.Client, l log.Logger) repository.RemoteRepository {
	return &implRepository{client: client, l: l}
}

// FetchWeather performs one forecast call for location.
func (r *implRepository) FetchWeather(ctx context.Context, location string) (model.WeatherSnapshot, error) {
	if r.client == nil {
		return model.WeatherSnapshot{}, repository.ErrRemoteNotConfigured
	}

	resp, err := r.client.Forecast(ctx, location)
	if err != nil {
		r.l.Warnf(ctx, "weather/repository/weatherapi.FetchWeather: q=%q: %v", location, err)
		return model.WeatherSnapshot{}, fmt.Errorf("forecast %q: %w", location, err)
	}
	return toSnapshot(resp), nil
}

func toSnapshot(resp *pkgWeather.ForecastResponse) model.WeatherSnapshot {
	astro := resp.Astro()
	return model.WeatherSnapshot{
		LocationName:  resp.Location.Name,
		Region:        resp.Location.Region,
		Country:       resp.Location.Country,
		LocalTime:     resp.Location.LocalTime,
		TemperatureC:  resp.Current.TempC,
		ConditionText: resp.Current.Condition.Text,
		ConditionIcon: resp.Current.Condition.Icon,
		Sunrise:       astro.Sunrise,
		Sunset:        astro.Sunset,
	}
}
