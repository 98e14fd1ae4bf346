package repository

import (
	"strings"
	"testing"

	"weather-rag/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry() VectorEntry {
	return VectorEntry{
		ID:        "denver_altitude",
		Content:   "Denver sits at high altitude.",
		Category:  models.CategoryLocationSpecific,
		Tags:      map[string]string{"location": "denver"},
		Embedding: []float32{0.1, 0.2, 0.3},
	}
}

func TestUpsertQueryOverwritesOnConflict(t *testing.T) {
	sql, args, err := buildUpsertQuery(testEntry())

	require.NoError(t, err)
	assert.Contains(t, sql, "INSERT INTO weather_knowledge")
	assert.Contains(t, sql, "ON CONFLICT (id) DO UPDATE SET")
	// Every stored column is replaced from the incoming row, so re-seeding
	// the same id leaves one record, not duplicates.
	for _, column := range []string{"content", "category", "metadata", "embedding", "updated_at"} {
		assert.Contains(t, sql, column+" = EXCLUDED."+column)
	}

	// id, content, category, metadata, embedding; updated_at is inlined SQL.
	require.Len(t, args, 5)
	assert.Equal(t, "denver_altitude", args[0])
	assert.True(t, strings.Contains(sql, "$5") && !strings.Contains(sql, "$6"))
}

func TestUpsertQueryIsStablePerEntry(t *testing.T) {
	first, firstArgs, err := buildUpsertQuery(testEntry())
	require.NoError(t, err)
	second, secondArgs, err := buildUpsertQuery(testEntry())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstArgs[0], secondArgs[0])
}
