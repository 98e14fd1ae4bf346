package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"weather-rag/internal/api"
	"weather-rag/internal/api/handlers"
	"weather-rag/internal/knowledge"
	"weather-rag/internal/repository"
	"weather-rag/internal/service"
	"weather-rag/internal/weather"
	"weather-rag/pkg/config"
	"weather-rag/pkg/logger"
	"weather-rag/pkg/postgres"

	"go.uber.org/zap"
)

// @title Weather RAG API
// @version 1.0
// @description Weather assistant answering natural-language questions with retrieval-augmented generation

// @host localhost:9000
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting weather RAG service")

	ctx := context.Background()

	// The vector index database is optional: without it every query is
	// served over the keyword fallback.
	var store service.KnowledgeStore
	if cfg.Database.Host != "" {
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Warn("Failed to connect to vector index database", zap.Error(err))
		} else {
			defer db.Close()
			store = repository.NewKnowledgeRepository(db, appLogger)
		}
	}

	// Initialize services
	embedder := service.NewEmbeddingService(&cfg.Embedding, appLogger)
	vectorIndex := service.NewVectorIndexService(ctx, store, cfg.Embedding.Dimension, appLogger)

	llmService := service.NewLLMService(ctx, &cfg.GigaChat, appLogger)
	defer llmService.Close()

	corpus := knowledge.NewCorpus()
	ragService := service.NewRAGService(ctx, corpus, embedder, vectorIndex, llmService, &cfg.RAG, appLogger)

	weatherClient := weather.NewClient(&cfg.Weather, appLogger)

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(ragService, weatherClient, llmService.Configured(), vectorIndex.Available(), appLogger)
	weatherHandler := handlers.NewWeatherHandler(weatherClient, appLogger)

	// Setup router
	app := api.SetupRouter(chatHandler, weatherHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
