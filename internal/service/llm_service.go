package service

import (
	"context"
	"fmt"
	"strings"

	"weather-rag/internal/models"
	"weather-rag/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// notConfiguredMessage is returned verbatim when no generative backend
// credential is present. No call is attempted in that state.
const notConfiguredMessage = "AI service is not configured. Please set up your GigaChat API key."

// unknownValue renders in the weather block for any missing reading field.
const unknownValue = "unknown"

// LLMService wraps the GigaChat generative backend. A missing or failing
// credential leaves the service in a permanently-unconfigured state; a
// failing generation call is converted to an error-bearing answer string.
// Either way a chat turn never crashes.
type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

// NewLLMService never fails: without an API key, or when the client cannot
// be constructed, the service answers with its fixed "not configured" string
// for the process lifetime.
func NewLLMService(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) *LLMService {
	s := &LLMService{logger: logger}

	if cfg.APIKey == "" {
		logger.Info("GigaChat API key not set, generative backend disabled")
		return s
	}

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		logger.Warn("Failed to create GigaChat client, generative backend disabled", zap.Error(err))
		return s
	}

	model := client.GenerativeModel("GigaChat")
	model.Temperature = 0.3

	s.client = client
	s.model = model
	logger.Info("GigaChat model ready")
	return s
}

// Configured reports whether a generative backend is available.
func (s *LLMService) Configured() bool {
	return s.model != nil
}

// Generate turns the query, retrieved passages and live reading into a
// grounded answer. Errors from the backend are surfaced in the returned
// string, never propagated.
func (s *LLMService) Generate(ctx context.Context, query string, passages []models.RetrievedPassage, reading *models.WeatherReading) string {
	if s.model == nil {
		return notConfiguredMessage
	}

	prompt := BuildPrompt(query, passages, reading)

	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		s.logger.Warn("Generation failed", zap.Error(err))
		return fmt.Sprintf("Sorry, I encountered an error generating a response: %v", err)
	}

	if len(resp.Choices) == 0 {
		return "Sorry, I encountered an error generating a response: empty completion"
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "Sorry, I couldn't generate a response."
	}
	return answer
}

// BuildPrompt assembles the single-turn prompt: weather block first, then a
// bulleted rendering of the passages in the order retrieval produced them,
// then the literal question and the answering instruction. The weather block
// is always present; missing fields render as placeholders.
func BuildPrompt(query string, passages []models.RetrievedPassage, reading *models.WeatherReading) string {
	if reading == nil {
		reading = &models.WeatherReading{}
	}

	var b strings.Builder

	b.WriteString("You are a helpful weather assistant. Answer the user's weather-related question using the provided context and current weather data.\n\n")

	b.WriteString("Current Weather Data:\n")
	b.WriteString("- Location: " + stringOrUnknown(reading.City) + "\n")
	b.WriteString("- Temperature: " + floatOrUnknown(reading.Temperature) + "°F\n")
	b.WriteString("- Weather: " + stringOrUnknown(reading.Weather) + "\n")
	b.WriteString("- Humidity: " + intOrUnknown(reading.Humidity) + "%\n")
	b.WriteString("- Wind Speed: " + floatOrUnknown(reading.WindSpeed) + " mph\n\n")

	b.WriteString("Relevant Knowledge:\n")
	for _, passage := range passages {
		b.WriteString("- " + passage.Content + "\n")
	}
	b.WriteString("\n")

	b.WriteString("User Question: " + query + "\n\n")
	b.WriteString("Provide a helpful, accurate, and conversational response. If asking about current weather, use the current weather data. If asking about clothing recommendations or safety, use the relevant knowledge. Keep responses concise but informative.")

	return b.String()
}

func stringOrUnknown(v *string) string {
	if v == nil || *v == "" {
		return unknownValue
	}
	return *v
}

func floatOrUnknown(v *float64) string {
	if v == nil {
		return unknownValue
	}
	return fmt.Sprintf("%g", *v)
}

func intOrUnknown(v *int) string {
	if v == nil {
		return unknownValue
	}
	return fmt.Sprintf("%d", *v)
}

// Close releases the underlying GigaChat client.
func (s *LLMService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}
