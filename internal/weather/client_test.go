package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-rag/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(&config.WeatherConfig{APIKey: "test-key"}, zap.NewNop())
	client.baseURL = server.URL
	return client
}

func TestCurrentParsesProviderPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "imperial", r.URL.Query().Get("units"))

		json.NewEncoder(w).Encode(map[string]any{
			"main":    map[string]any{"temp": 28.4, "humidity": 20},
			"weather": []map[string]any{{"description": "clear sky"}},
			"wind":    map[string]any{"speed": 5.2},
		})
	})

	current, err := client.Current(context.Background(), "America/Denver")

	require.NoError(t, err)
	assert.Equal(t, "Denver", current.City)
	assert.Equal(t, "America/Denver", current.Timezone)
	assert.Equal(t, 28.4, current.Temperature)
	assert.Equal(t, 20, current.Humidity)
	assert.Equal(t, "clear sky", current.Weather)
	assert.Equal(t, 5.2, current.WindSpeed)
	assert.NotEmpty(t, current.LocalTime)
}

func TestCurrentRejectsUnsupportedZone(t *testing.T) {
	client := NewClient(&config.WeatherConfig{APIKey: "test-key"}, zap.NewNop())

	_, err := client.Current(context.Background(), "Europe/Berlin")

	assert.ErrorIs(t, err, ErrUnsupportedZone)
}

func TestCurrentWithoutAPIKey(t *testing.T) {
	client := NewClient(&config.WeatherConfig{}, zap.NewNop())

	_, err := client.Current(context.Background(), "America/Denver")

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, client.Configured())
}

func TestCurrentSurfacesProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Current(context.Background(), "America/Chicago")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestForecastTruncatesEntries(t *testing.T) {
	slots := make([]map[string]any, 14)
	for i := range slots {
		slots[i] = map[string]any{
			"dt":      1700000000 + int64(i)*10800,
			"main":    map[string]any{"temp": 50.0, "humidity": 40},
			"weather": []map[string]any{{"description": "overcast clouds"}},
			"wind":    map[string]any{"speed": 8.0},
		}
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"list": slots})
	})

	forecast, err := client.Forecast(context.Background(), "America/Chicago")

	require.NoError(t, err)
	assert.Equal(t, "Chicago", forecast.City)
	assert.Len(t, forecast.Entries, maxForecastEntries)
	assert.Equal(t, "overcast clouds", forecast.Entries[0].Weather)
}

func TestReadingCarriesAllFields(t *testing.T) {
	current := &CurrentWeather{
		City:        "Denver",
		Temperature: 28,
		Weather:     "clear",
		Humidity:    20,
		WindSpeed:   5,
	}

	reading := current.Reading()

	require.NotNil(t, reading.City)
	assert.Equal(t, "Denver", *reading.City)
	require.NotNil(t, reading.Temperature)
	assert.Equal(t, 28.0, *reading.Temperature)
	require.NotNil(t, reading.Humidity)
	assert.Equal(t, 20, *reading.Humidity)
}

func TestZonesListsServedSet(t *testing.T) {
	zones := Zones()

	assert.Len(t, zones, 7)
	assert.Contains(t, zones, "America/Denver")
	assert.Contains(t, zones, "Pacific/Honolulu")
}
