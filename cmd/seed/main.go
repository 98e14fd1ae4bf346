// Seed re-embeds the compiled-in corpus and upserts it into the vector
// index. The upsert is idempotent, so reseeding after a model or content
// change is safe. Unlike the server, this command requires the index.
package main

import (
	"context"
	"log"

	"weather-rag/internal/knowledge"
	"weather-rag/internal/repository"
	"weather-rag/internal/service"
	"weather-rag/pkg/config"
	"weather-rag/pkg/logger"
	"weather-rag/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if cfg.Database.Host == "" {
		appLogger.Fatal("DB_HOST must be set to seed the vector index")
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repo := repository.NewKnowledgeRepository(db, appLogger)
	if err := repo.EnsureSchema(ctx, cfg.Embedding.Dimension); err != nil {
		appLogger.Fatal("Failed to ensure knowledge schema", zap.Error(err))
	}

	embedder := service.NewEmbeddingService(&cfg.Embedding, appLogger)
	corpus := knowledge.NewCorpus()

	appLogger.Info("Embedding corpus", zap.Int("items", len(corpus.Items())))
	entries, err := service.EmbedCorpus(ctx, embedder, corpus.Items())
	if err != nil {
		appLogger.Fatal("Failed to embed corpus", zap.Error(err))
	}

	if err := repo.Upsert(ctx, entries); err != nil {
		appLogger.Fatal("Failed to upsert corpus", zap.Error(err))
	}

	count, err := repo.Count(ctx)
	if err != nil {
		appLogger.Fatal("Failed to count index entries", zap.Error(err))
	}

	appLogger.Info("Seeding completed", zap.Int("index_entries", count))
}
