package service

import (
	"context"
	"fmt"

	"weather-rag/internal/models"
	"weather-rag/internal/repository"
	"weather-rag/pkg/config"

	"go.uber.org/zap"
)

// defaultTopK is the retrieval budget on both paths.
const defaultTopK = 3

// Embedder encodes text into a dense vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// VectorIndex is the similarity-search boundary the coordinator retrieves
// through. Implemented by VectorIndexService.
type VectorIndex interface {
	Available() bool
	Upsert(ctx context.Context, entries []repository.VectorEntry) bool
	Query(ctx context.Context, embedding []float32, topK int) []models.RetrievedPassage
}

// Generator turns a query, passages and an optional reading into an answer.
// Implemented by LLMService.
type Generator interface {
	Generate(ctx context.Context, query string, passages []models.RetrievedPassage, reading *models.WeatherReading) string
}

type retrievalSource string

const (
	sourceVector  retrievalSource = "vector"
	sourceKeyword retrievalSource = "keyword"
	sourceNone    retrievalSource = "none"
)

// retrievalResult tags which path produced the passages, keeping the
// vector-or-keyword branching a single decision instead of nested
// conditionals. The two paths are never merged.
type retrievalResult struct {
	Source   retrievalSource
	Passages []models.RetrievedPassage
}

// RAGService coordinates one query through encode, retrieve and generate.
// It holds no cross-query state: the corpus and backend handles are shared
// read-only, and concurrent queries run as independent pipelines.
type RAGService struct {
	corpus    KnowledgeCorpus
	embedder  Embedder
	index     VectorIndex
	generator Generator
	topK      int
	logger    *zap.Logger
}

// KnowledgeCorpus exposes the static passage set. Implemented by
// knowledge.Corpus.
type KnowledgeCorpus interface {
	Items() []models.KnowledgeItem
}

// NewRAGService wires the coordinator and performs the one-time corpus
// upload to the vector index. An upload failure is logged, not fatal: the
// service then serves every query over the keyword fallback.
func NewRAGService(
	ctx context.Context,
	corpus KnowledgeCorpus,
	embedder Embedder,
	index VectorIndex,
	generator Generator,
	cfg *config.RAGConfig,
	logger *zap.Logger,
) *RAGService {
	topK := defaultTopK
	if cfg != nil && cfg.TopK > 0 {
		topK = cfg.TopK
	}

	s := &RAGService{
		corpus:    corpus,
		embedder:  embedder,
		index:     index,
		generator: generator,
		topK:      topK,
		logger:    logger,
	}

	s.setupKnowledgeBase(ctx)
	return s
}

func (s *RAGService) setupKnowledgeBase(ctx context.Context) {
	if !s.index.Available() {
		s.logger.Warn("Knowledge base upload skipped, using local fallback")
		return
	}

	entries, err := EmbedCorpus(ctx, s.embedder, s.corpus.Items())
	if err != nil {
		s.logger.Warn("Failed to embed knowledge base, using local fallback", zap.Error(err))
		return
	}

	if s.index.Upsert(ctx, entries) {
		s.logger.Info("Knowledge base uploaded to vector index")
	} else {
		s.logger.Warn("Knowledge base upload failed, using local fallback")
	}
}

// Answer produces a grounded answer for query, optionally using a live
// weather reading, and reports which retrieval path served it ("vector",
// "keyword" or "none"). It always returns a non-empty answer: every failure
// mode terminates in user-facing text, never in an error or panic.
func (s *RAGService) Answer(ctx context.Context, query string, reading *models.WeatherReading) (answer, source string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Answer pipeline panicked", zap.Any("panic", r))
			answer = fmt.Sprintf("Sorry, I couldn't process your question: %v", r)
			source = string(sourceNone)
		}
	}()

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		s.logger.Warn("Failed to embed query", zap.Error(err))
		return fmt.Sprintf("Sorry, I couldn't process your question: %v", err), string(sourceNone)
	}

	retrieval := s.retrieve(ctx, query, embedding)
	s.logger.Info("Knowledge retrieval completed",
		zap.String("source", string(retrieval.Source)),
		zap.Int("passages", len(retrieval.Passages)),
	)

	return s.generator.Generate(ctx, query, retrieval.Passages, reading), string(retrieval.Source)
}

// retrieve tries the vector index first and falls back to the keyword scan
// only when the vector result is empty. Exactly one path serves a query.
func (s *RAGService) retrieve(ctx context.Context, query string, embedding []float32) retrievalResult {
	if passages := s.index.Query(ctx, embedding, s.topK); len(passages) > 0 {
		return retrievalResult{Source: sourceVector, Passages: passages}
	}

	if passages := KeywordSearch(query, s.corpus.Items(), s.topK); len(passages) > 0 {
		return retrievalResult{Source: sourceKeyword, Passages: passages}
	}

	return retrievalResult{Source: sourceNone}
}

// EmbedCorpus encodes every corpus item into a vector entry ready for
// upsert. Item text is embedded as content plus category so the category
// label contributes to similarity.
func EmbedCorpus(ctx context.Context, embedder Embedder, items []models.KnowledgeItem) ([]repository.VectorEntry, error) {
	entries := make([]repository.VectorEntry, 0, len(items))
	for _, item := range items {
		text := item.Content + " " + string(item.Category)
		embedding, err := embedder.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed %s: %w", item.ID, err)
		}

		entries = append(entries, repository.VectorEntry{
			ID:        item.ID,
			Content:   item.Content,
			Category:  item.Category,
			Tags:      item.Tags,
			Embedding: embedding,
		})
	}

	return entries, nil
}
