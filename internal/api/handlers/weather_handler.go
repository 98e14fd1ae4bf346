package handlers

import (
	"errors"

	"weather-rag/internal/weather"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type WeatherHandler struct {
	client *weather.Client
	logger *zap.Logger
}

func NewWeatherHandler(client *weather.Client, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{
		client: client,
		logger: logger,
	}
}

// CurrentWeather godoc
// @Summary Current weather
// @Description Fetch the current observation for a zone's representative city
// @Tags weather
// @Produce json
// @Param zone query string false "IANA timezone, e.g. America/Denver"
// @Success 200 {object} weather.CurrentWeather
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]string
// @Router /api/weather [get]
func (h *WeatherHandler) CurrentWeather(c *fiber.Ctx) error {
	zone := c.Query("zone", defaultZone)

	current, err := h.client.Current(c.Context(), zone)
	if err != nil {
		return h.weatherError(c, zone, err)
	}

	return c.JSON(current)
}

// Forecast godoc
// @Summary 5-day forecast
// @Description Fetch the 5-day/3-hour forecast for a zone's representative city
// @Tags weather
// @Produce json
// @Param zone query string false "IANA timezone, e.g. America/Denver"
// @Success 200 {object} weather.Forecast
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]string
// @Router /api/forecast [get]
func (h *WeatherHandler) Forecast(c *fiber.Ctx) error {
	zone := c.Query("zone", defaultZone)

	forecast, err := h.client.Forecast(c.Context(), zone)
	if err != nil {
		return h.weatherError(c, zone, err)
	}

	return c.JSON(forecast)
}

func (h *WeatherHandler) weatherError(c *fiber.Ctx, zone string, err error) error {
	switch {
	case errors.Is(err, weather.ErrUnsupportedZone):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported zone",
			"zones": weather.Zones(),
		})
	case errors.Is(err, weather.ErrNotConfigured):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Weather provider is not configured",
		})
	default:
		h.logger.Error("Failed to fetch weather", zap.String("zone", zone), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to fetch weather",
		})
	}
}
