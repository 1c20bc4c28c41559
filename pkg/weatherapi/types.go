package weatherapi

// ForecastResponse is the body of GET /forecast.json.
type ForecastResponse struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
	Forecast Forecast `json:"forecast"`
}

type Location struct {
	Name      string `json:"name"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	LocalTime string `json:"localtime"`
}

type Current struct {
	TempC     float64   `json:"temp_c"`
	Condition Condition `json:"condition"`
}

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

type Forecast struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

type ForecastDay struct {
	Astro Astro `json:"astro"`
}

type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// Astro returns the first forecast day's astronomy, or a zero value.
func (r ForecastResponse) Astro() Astro {
	if len(r.Forecast.ForecastDay) == 0 {
		return Astro{}
	}
	return r.Forecast.ForecastDay[0].Astro
}

// APIError is the error body weatherapi.com returns on failure.
type APIError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
