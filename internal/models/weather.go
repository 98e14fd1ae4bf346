package models

// WeatherReading is a live observation supplied by the weather provider.
// Every field is optional: a partial reading still renders into the prompt
// with placeholders for whatever is missing.
type WeatherReading struct {
	City        *string  `json:"city,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Weather     *string  `json:"weather,omitempty"`
	Humidity    *int     `json:"humidity,omitempty"`
	WindSpeed   *float64 `json:"wind_speed,omitempty"`
}

// ForecastEntry is one 3-hour slot of the provider's 5-day forecast.
type ForecastEntry struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Weather     string  `json:"weather"`
	WindSpeed   float64 `json:"wind_speed"`
}
