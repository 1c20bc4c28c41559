package weatherapi

import "time"

const (
	// DefaultBaseURL is the public weatherapi.com endpoint.
	DefaultBaseURL = "https://api.weatherapi.com/v1"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second

	// forecastDays is fixed: only today's astronomy is used.
	forecastDays = 1
)
