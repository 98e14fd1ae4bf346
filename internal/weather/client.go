// Package weather fetches live observations from OpenWeatherMap. It is a
// thin I/O wrapper: the RAG core only ever sees the resulting reading.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-rag/internal/models"
	"weather-rag/pkg/config"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// ErrUnsupportedZone is returned for timezones outside the served set.
var ErrUnsupportedZone = errors.New("unsupported timezone zone")

// ErrNotConfigured is returned when no OpenWeatherMap API key is set.
var ErrNotConfigured = errors.New("weather provider is not configured")

type zoneCity struct {
	Lat  float64
	Lon  float64
	City string
}

// zoneToCity maps served US timezones to a representative city.
var zoneToCity = map[string]zoneCity{
	"America/New_York":    {Lat: 40.7128, Lon: -74.0060, City: "New York"},
	"America/Chicago":     {Lat: 41.8781, Lon: -87.6298, City: "Chicago"},
	"America/Denver":      {Lat: 39.7392, Lon: -104.9903, City: "Denver"},
	"America/Los_Angeles": {Lat: 34.0522, Lon: -118.2437, City: "Los Angeles"},
	"America/Phoenix":     {Lat: 33.4484, Lon: -112.0740, City: "Phoenix"},
	"America/Anchorage":   {Lat: 61.2181, Lon: -149.9003, City: "Anchorage"},
	"Pacific/Honolulu":    {Lat: 21.3069, Lon: -157.8583, City: "Honolulu"},
}

// Zones lists the supported timezone identifiers.
func Zones() []string {
	zones := make([]string, 0, len(zoneToCity))
	for zone := range zoneToCity {
		zones = append(zones, zone)
	}
	return zones
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewClient(cfg *config.WeatherConfig, logger *zap.Logger) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// CurrentWeather is one observation for a zone's representative city,
// imperial units.
type CurrentWeather struct {
	City        string  `json:"city"`
	Timezone    string  `json:"timezone"`
	LocalTime   string  `json:"local_time"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Weather     string  `json:"weather"`
	WindSpeed   float64 `json:"wind_speed"`
}

// Reading converts the observation into the optional-field form the RAG
// coordinator consumes.
func (w *CurrentWeather) Reading() *models.WeatherReading {
	return &models.WeatherReading{
		City:        &w.City,
		Temperature: &w.Temperature,
		Weather:     &w.Weather,
		Humidity:    &w.Humidity,
		WindSpeed:   &w.WindSpeed,
	}
}

// Forecast is the first entries of the provider's 5-day/3-hour forecast.
type Forecast struct {
	City     string                 `json:"city"`
	Timezone string                 `json:"timezone"`
	Entries  []models.ForecastEntry `json:"forecast"`
}

type owmCurrentResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type owmForecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
}

// Current fetches the live observation for a zone.
func (c *Client) Current(ctx context.Context, zone string) (*CurrentWeather, error) {
	city, ok := zoneToCity[zone]
	if !ok {
		return nil, ErrUnsupportedZone
	}
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var payload owmCurrentResponse
	if err := c.get(ctx, "/weather", city, &payload); err != nil {
		return nil, err
	}

	description := ""
	if len(payload.Weather) > 0 {
		description = payload.Weather[0].Description
	}

	return &CurrentWeather{
		City:        city.City,
		Timezone:    zone,
		LocalTime:   localTime(zone, time.Now()),
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		Weather:     description,
		WindSpeed:   payload.Wind.Speed,
	}, nil
}

// maxForecastEntries bounds the forecast payload to the nearest slots.
const maxForecastEntries = 10

// Forecast fetches the 5-day/3-hour forecast for a zone, truncated to the
// nearest slots.
func (c *Client) Forecast(ctx context.Context, zone string) (*Forecast, error) {
	city, ok := zoneToCity[zone]
	if !ok {
		return nil, ErrUnsupportedZone
	}
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var payload owmForecastResponse
	if err := c.get(ctx, "/forecast", city, &payload); err != nil {
		return nil, err
	}

	entries := make([]models.ForecastEntry, 0, maxForecastEntries)
	for i, slot := range payload.List {
		if i >= maxForecastEntries {
			break
		}

		description := ""
		if len(slot.Weather) > 0 {
			description = slot.Weather[0].Description
		}

		entries = append(entries, models.ForecastEntry{
			Time:        localTime(zone, time.Unix(slot.Dt, 0)),
			Temperature: slot.Main.Temp,
			Humidity:    slot.Main.Humidity,
			Weather:     description,
			WindSpeed:   slot.Wind.Speed,
		})
	}

	return &Forecast{
		City:     city.City,
		Timezone: zone,
		Entries:  entries,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, city zoneCity, out any) error {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(city.Lat, 'f', 4, 64))
	params.Set("lon", strconv.FormatFloat(city.Lon, 'f', 4, 64))
	params.Set("appid", c.apiKey)
	params.Set("units", "imperial")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call weather provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode weather response: %w", err)
	}
	return nil
}

func localTime(zone string, t time.Time) string {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return t.UTC().Format("2006-01-02 15:04:05")
	}
	return t.In(loc).Format("2006-01-02 15:04:05")
}
