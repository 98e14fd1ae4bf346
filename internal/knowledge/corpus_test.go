package knowledge

import (
	"testing"

	"weather-rag/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpusItemsAreWellFormed(t *testing.T) {
	corpus := NewCorpus()
	items := corpus.Items()
	require.NotEmpty(t, items)

	validCategories := map[models.Category]bool{
		models.CategoryClothing:         true,
		models.CategorySafety:           true,
		models.CategoryWeatherScience:   true,
		models.CategoryLocationSpecific: true,
	}

	seen := make(map[string]bool)
	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Content, "item %s has empty content", item.ID)
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		assert.True(t, validCategories[item.Category], "item %s has unknown category %s", item.ID, item.Category)
		seen[item.ID] = true
	}
}

func TestCorpusIsStableAcrossCalls(t *testing.T) {
	corpus := NewCorpus()

	first := corpus.Items()
	second := corpus.Items()

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestCorpusCoversScenarioEntries(t *testing.T) {
	corpus := NewCorpus()

	ids := make(map[string]models.KnowledgeItem)
	for _, item := range corpus.Items() {
		ids[item.ID] = item
	}

	cold, ok := ids["temp_clothing_cold"]
	require.True(t, ok)
	assert.Equal(t, models.CategoryClothing, cold.Category)

	denver, ok := ids["denver_altitude"]
	require.True(t, ok)
	assert.Equal(t, models.CategoryLocationSpecific, denver.Category)
	assert.Equal(t, "denver", denver.Tags["location"])
}
