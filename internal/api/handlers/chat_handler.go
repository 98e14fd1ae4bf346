package handlers

import (
	"context"
	"time"

	"weather-rag/internal/dto"
	"weather-rag/internal/models"
	"weather-rag/internal/weather"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultZone = "America/New_York"

// Answerer is the RAG coordinator boundary: a complete query string in, a
// complete answer string out plus the retrieval path that grounded it.
type Answerer interface {
	Answer(ctx context.Context, query string, reading *models.WeatherReading) (answer, source string)
}

// WeatherFetcher supplies the live reading attached to a chat turn.
type WeatherFetcher interface {
	Current(ctx context.Context, zone string) (*weather.CurrentWeather, error)
}

type ChatHandler struct {
	rag     Answerer
	weather WeatherFetcher
	logger  *zap.Logger

	// Capability states are fixed at process start, never re-checked.
	generatorConfigured  bool
	vectorIndexAvailable bool
}

func NewChatHandler(rag Answerer, weatherClient WeatherFetcher, generatorConfigured, vectorIndexAvailable bool, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		rag:                  rag,
		weather:              weatherClient,
		logger:               logger,
		generatorConfigured:  generatorConfigured,
		vectorIndexAvailable: vectorIndexAvailable,
	}
}

// Chat godoc
// @Summary Ask a weather question
// @Description Answer a natural-language weather question grounded in the knowledge base and the zone's live reading
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	zone := req.Timezone
	if zone == "" {
		zone = defaultZone
	}

	// Live weather is best-effort: a provider failure drops the reading,
	// never the chat turn.
	var reading *models.WeatherReading
	if current, err := h.weather.Current(c.Context(), zone); err != nil {
		h.logger.Warn("Live weather unavailable for chat",
			zap.String("zone", zone),
			zap.Error(err),
		)
	} else {
		reading = current.Reading()
	}

	answer, source := h.rag.Answer(c.Context(), req.Message, reading)

	return c.JSON(dto.ChatResponse{
		ID:        uuid.New().String(),
		Response:  answer,
		Source:    source,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Health godoc
// @Summary Chat pipeline health
// @Description Report which optional backends are available for this process
// @Tags chat
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/chat/health [get]
func (h *ChatHandler) Health(c *fiber.Ctx) error {
	status := "healthy"
	if !h.generatorConfigured {
		status = "degraded"
	}

	return c.JSON(dto.HealthResponse{
		Status:               status,
		GeneratorConfigured:  h.generatorConfigured,
		VectorIndexAvailable: h.vectorIndexAvailable,
	})
}
