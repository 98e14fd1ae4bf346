// Package knowledge holds the curated weather knowledge base. The corpus is
// compiled-in static data: updates ship with a new deployment, there is no
// runtime admin path.
package knowledge

import "weather-rag/internal/models"

type Corpus struct {
	items []models.KnowledgeItem
}

// NewCorpus returns the full corpus. Construction never fails.
func NewCorpus() *Corpus {
	return &Corpus{items: weatherKnowledge()}
}

// Items returns the corpus in its fixed order. Callers must not mutate the
// returned slice.
func (c *Corpus) Items() []models.KnowledgeItem {
	return c.items
}

func weatherKnowledge() []models.KnowledgeItem {
	return []models.KnowledgeItem{
		{
			ID:       "temp_clothing_cold",
			Content:  "When temperatures are below 32°F (0°C), wear insulated layers, warm coat, gloves, hat, and waterproof boots. Consider thermal underwear for extended outdoor exposure.",
			Category: models.CategoryClothing,
			Tags:     map[string]string{"temperature_range": "below_freezing"},
		},
		{
			ID:       "temp_clothing_cool",
			Content:  "For temperatures 32-60°F (0-15°C), wear a light jacket or sweater, long pants, and closed-toe shoes. Layers are recommended for temperature changes.",
			Category: models.CategoryClothing,
			Tags:     map[string]string{"temperature_range": "cool"},
		},
		{
			ID:       "temp_clothing_mild",
			Content:  "At 60-75°F (15-24°C), light clothing like t-shirts, light sweaters, jeans or light pants work well. Perfect for most outdoor activities.",
			Category: models.CategoryClothing,
			Tags:     map[string]string{"temperature_range": "mild"},
		},
		{
			ID:       "temp_clothing_warm",
			Content:  "For 75-85°F (24-29°C), wear light, breathable clothing like cotton t-shirts, shorts, sundresses, and sandals. Stay hydrated.",
			Category: models.CategoryClothing,
			Tags:     map[string]string{"temperature_range": "warm"},
		},
		{
			ID:       "temp_clothing_hot",
			Content:  "Above 85°F (29°C), wear minimal, light-colored, loose-fitting clothing. Use sun protection, stay in shade when possible, and drink plenty of water.",
			Category: models.CategoryClothing,
			Tags:     map[string]string{"temperature_range": "hot"},
		},
		{
			ID:       "rain_safety",
			Content:  "During rain, carry an umbrella or wear waterproof clothing. Drive carefully with reduced speed and increased following distance. Avoid flooded roads.",
			Category: models.CategorySafety,
			Tags:     map[string]string{"weather_condition": "rain"},
		},
		{
			ID:       "snow_safety",
			Content:  "In snow conditions, wear appropriate footwear with good traction. Drive slowly and keep emergency supplies in your car. Clear snow from vehicle before driving.",
			Category: models.CategorySafety,
			Tags:     map[string]string{"weather_condition": "snow"},
		},
		{
			ID:       "humidity_effects",
			Content:  "High humidity (above 60%) makes temperatures feel warmer and can cause discomfort. Low humidity (below 30%) can cause dry skin and respiratory irritation.",
			Category: models.CategoryWeatherScience,
			Tags:     map[string]string{"topic": "humidity"},
		},
		{
			ID:       "wind_chill",
			Content:  "Wind chill occurs when wind speed combines with cold temperatures to make it feel colder than actual temperature. Important for exposed skin safety.",
			Category: models.CategoryWeatherScience,
			Tags:     map[string]string{"topic": "wind_chill"},
		},
		{
			ID:       "heat_index",
			Content:  "Heat index combines air temperature and humidity to determine perceived temperature. Values above 90°F indicate caution needed for outdoor activities.",
			Category: models.CategoryWeatherScience,
			Tags:     map[string]string{"topic": "heat_index"},
		},
		{
			ID:       "denver_altitude",
			Content:  "Denver's high altitude (5,280 feet) affects weather: lower air pressure, intense UV rays, rapid temperature changes, and dry air. Stay hydrated and use sun protection.",
			Category: models.CategoryLocationSpecific,
			Tags:     map[string]string{"location": "denver"},
		},
		{
			ID:       "chicago_lake_effect",
			Content:  "Chicago experiences lake effect from Lake Michigan, creating cooler summers and moderating winter temperatures. Can cause sudden weather changes.",
			Category: models.CategoryLocationSpecific,
			Tags:     map[string]string{"location": "chicago"},
		},
		{
			ID:       "los_angeles_marine_layer",
			Content:  "Los Angeles often has marine layer fog in mornings, especially in summer. Creates overcast conditions that typically clear by afternoon.",
			Category: models.CategoryLocationSpecific,
			Tags:     map[string]string{"location": "los_angeles"},
		},
	}
}
