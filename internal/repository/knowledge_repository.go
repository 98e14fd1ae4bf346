package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"weather-rag/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

// VectorEntry is one row of the similarity index: the embedding plus the
// original content and category, so retrieval never re-joins the corpus.
type VectorEntry struct {
	ID        string
	Content   string
	Category  models.Category
	Tags      map[string]string
	Embedding []float32
}

type KnowledgeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewKnowledgeRepository(db *pgxpool.Pool, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the knowledge table if it does not exist. The
// embedding column dimension must match the encoder's output.
func (r *KnowledgeRepository) EnsureSchema(ctx context.Context, dimension int) error {
	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS weather_knowledge (
			id         TEXT PRIMARY KEY,
			content    TEXT NOT NULL,
			category   TEXT NOT NULL,
			metadata   JSONB NOT NULL DEFAULT '{}',
			embedding  vector(%d) NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, dimension)

	if _, err := r.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create knowledge table: %w", err)
	}
	return nil
}

// Upsert writes entries by id. Re-upserting the same id overwrites the prior
// row, so repeated seeding never accumulates duplicates.
func (r *KnowledgeRepository) Upsert(ctx context.Context, entries []VectorEntry) error {
	for _, entry := range entries {
		sql, args, err := buildUpsertQuery(entry)
		if err != nil {
			return err
		}

		if _, err := r.db.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("failed to upsert %s: %w", entry.ID, err)
		}
	}

	return nil
}

// buildUpsertQuery renders the insert for one entry. The conflict clause on
// id is what makes repeated seeding overwrite instead of duplicate.
func buildUpsertQuery(entry VectorEntry) (string, []interface{}, error) {
	metadata, err := json.Marshal(entry.Tags)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal metadata for %s: %w", entry.ID, err)
	}

	return squirrel.Insert("weather_knowledge").
		Columns("id", "content", "category", "metadata", "embedding", "updated_at").
		Values(entry.ID, entry.Content, string(entry.Category), metadata, pgvector.NewVector(entry.Embedding), squirrel.Expr("now()")).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			content = EXCLUDED.content,
			category = EXCLUDED.category,
			metadata = EXCLUDED.metadata,
			embedding = EXCLUDED.embedding,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// SearchSimilar returns the topK nearest passages by cosine similarity,
// highest first. pgvector's <=> operator yields cosine distance, so
// similarity is 1 - distance.
func (r *KnowledgeRepository) SearchSimilar(ctx context.Context, embedding []float32, topK int) ([]models.RetrievedPassage, error) {
	query := squirrel.Select("content", "category").
		Column(squirrel.Alias(squirrel.Expr("embedding <=> ?", pgvector.NewVector(embedding)), "distance")).
		From("weather_knowledge").
		OrderBy("distance ASC").
		Limit(uint64(topK)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query knowledge: %w", err)
	}
	defer rows.Close()

	var results []models.RetrievedPassage
	for rows.Next() {
		var (
			passage  models.RetrievedPassage
			category string
			distance float64
		)
		if err := rows.Scan(&passage.Content, &category, &distance); err != nil {
			return nil, err
		}
		passage.Category = models.Category(category)
		passage.Score = 1 - distance
		results = append(results, passage)
	}

	return results, rows.Err()
}

// Count reports how many passages the index currently holds.
func (r *KnowledgeRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT count(*) FROM weather_knowledge").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count knowledge: %w", err)
	}
	return count, nil
}
