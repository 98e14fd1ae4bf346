package service

import (
	"context"

	"weather-rag/internal/models"
	"weather-rag/internal/repository"

	"go.uber.org/zap"
)

// KnowledgeStore is the persistence boundary of the vector index.
// Implemented by repository.KnowledgeRepository.
type KnowledgeStore interface {
	EnsureSchema(ctx context.Context, dimension int) error
	Upsert(ctx context.Context, entries []repository.VectorEntry) error
	SearchSimilar(ctx context.Context, embedding []float32, topK int) ([]models.RetrievedPassage, error)
}

type indexState int

const (
	// indexUnconfigured: no database credentials were supplied.
	indexUnconfigured indexState = iota
	// indexReady: schema verified, queries go to the store.
	indexReady
	// indexDegraded: initialization failed; disabled for the process
	// lifetime, never retried.
	indexDegraded
)

// VectorIndexService fronts the pgvector-backed similarity index. It never
// lets a store failure cross its boundary: queries degrade to an empty
// result and upserts report false.
type VectorIndexService struct {
	store  KnowledgeStore
	state  indexState
	logger *zap.Logger
}

// NewVectorIndexService verifies the index schema once. A nil store means no
// database was configured, and a schema failure permanently disables the
// index. Both leave every subsequent call short-circuiting without I/O.
func NewVectorIndexService(ctx context.Context, store KnowledgeStore, dimension int, logger *zap.Logger) *VectorIndexService {
	s := &VectorIndexService{
		store:  store,
		logger: logger,
	}

	if store == nil {
		s.state = indexUnconfigured
		logger.Info("Vector index not configured, keyword fallback will serve all queries")
		return s
	}

	if err := store.EnsureSchema(ctx, dimension); err != nil {
		s.state = indexDegraded
		logger.Warn("Vector index initialization failed, disabling for process lifetime", zap.Error(err))
		return s
	}

	s.state = indexReady
	logger.Info("Vector index ready", zap.Int("dimension", dimension))
	return s
}

// Available reports whether the index accepts queries.
func (s *VectorIndexService) Available() bool {
	return s.state == indexReady
}

// Upsert writes entries to the index. Returns false instead of an error when
// the index is disabled or the write fails.
func (s *VectorIndexService) Upsert(ctx context.Context, entries []repository.VectorEntry) bool {
	if s.state != indexReady {
		return false
	}

	if err := s.store.Upsert(ctx, entries); err != nil {
		s.logger.Warn("Failed to upsert knowledge", zap.Error(err))
		return false
	}

	s.logger.Info("Knowledge upserted", zap.Int("entries", len(entries)))
	return true
}

// Query returns the topK most similar passages, descending. An unavailable
// index or a failed call yields an empty result, which triggers the keyword
// fallback downstream.
func (s *VectorIndexService) Query(ctx context.Context, embedding []float32, topK int) []models.RetrievedPassage {
	if s.state != indexReady {
		return nil
	}

	results, err := s.store.SearchSimilar(ctx, embedding, topK)
	if err != nil {
		s.logger.Warn("Vector search failed", zap.Error(err))
		return nil
	}

	return results
}
