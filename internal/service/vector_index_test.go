package service

import (
	"context"
	"errors"
	"testing"

	"weather-rag/internal/models"
	"weather-rag/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	schemaErr error
	upsertErr error
	searchErr error
	passages  []models.RetrievedPassage
	upserts   int
	searches  int
}

func (f *fakeStore) EnsureSchema(ctx context.Context, dimension int) error {
	return f.schemaErr
}

func (f *fakeStore) Upsert(ctx context.Context, entries []repository.VectorEntry) error {
	f.upserts++
	return f.upsertErr
}

func (f *fakeStore) SearchSimilar(ctx context.Context, embedding []float32, topK int) ([]models.RetrievedPassage, error) {
	f.searches++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.passages, nil
}

func TestVectorIndexUnconfiguredShortCircuits(t *testing.T) {
	index := NewVectorIndexService(context.Background(), nil, 768, zap.NewNop())

	assert.False(t, index.Available())
	assert.Empty(t, index.Query(context.Background(), []float32{1}, 3))
	assert.False(t, index.Upsert(context.Background(), nil))
}

func TestVectorIndexDegradesPermanentlyOnSchemaFailure(t *testing.T) {
	store := &fakeStore{schemaErr: errors.New("no database")}
	index := NewVectorIndexService(context.Background(), store, 768, zap.NewNop())

	assert.False(t, index.Available())

	// Disabled for the process lifetime: no store I/O on later calls.
	index.Query(context.Background(), []float32{1}, 3)
	index.Upsert(context.Background(), []repository.VectorEntry{{ID: "a"}})
	assert.Zero(t, store.searches)
	assert.Zero(t, store.upserts)
}

func TestVectorIndexQueryReturnsStoreResults(t *testing.T) {
	store := &fakeStore{passages: []models.RetrievedPassage{
		{Content: "top", Score: 0.91},
		{Content: "next", Score: 0.85},
	}}
	index := NewVectorIndexService(context.Background(), store, 768, zap.NewNop())
	require.True(t, index.Available())

	results := index.Query(context.Background(), []float32{1, 2}, 3)

	require.Len(t, results, 2)
	assert.Equal(t, "top", results[0].Content)
}

func TestVectorIndexQueryFailureYieldsEmpty(t *testing.T) {
	store := &fakeStore{searchErr: errors.New("connection reset")}
	index := NewVectorIndexService(context.Background(), store, 768, zap.NewNop())

	results := index.Query(context.Background(), []float32{1}, 3)

	assert.Empty(t, results)
	// A transient query failure does not disable the index.
	assert.True(t, index.Available())
	index.Query(context.Background(), []float32{1}, 3)
	assert.Equal(t, 2, store.searches)
}

func TestVectorIndexUpsertReportsFailureAsFalse(t *testing.T) {
	store := &fakeStore{upsertErr: errors.New("disk full")}
	index := NewVectorIndexService(context.Background(), store, 768, zap.NewNop())

	ok := index.Upsert(context.Background(), []repository.VectorEntry{{ID: "a"}})

	assert.False(t, ok)
	assert.True(t, index.Available())
}

func TestVectorIndexUpsertSucceeds(t *testing.T) {
	store := &fakeStore{}
	index := NewVectorIndexService(context.Background(), store, 768, zap.NewNop())

	ok := index.Upsert(context.Background(), []repository.VectorEntry{{ID: "a"}, {ID: "b"}})

	assert.True(t, ok)
	assert.Equal(t, 1, store.upserts)
}
