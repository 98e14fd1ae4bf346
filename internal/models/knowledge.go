package models

type Category string

const (
	CategoryClothing         Category = "clothing"
	CategorySafety           Category = "safety"
	CategoryWeatherScience   Category = "weather_science"
	CategoryLocationSpecific Category = "location_specific"
)

// KnowledgeItem is a single curated passage. Items are compiled into the
// binary and never change at runtime.
type KnowledgeItem struct {
	ID       string
	Content  string
	Category Category
	Tags     map[string]string // temperature_range, weather_condition, topic, location
}

// RetrievedPassage is the per-query retrieval result. Score is a cosine
// similarity on the vector path and a fixed constant on the keyword path.
type RetrievedPassage struct {
	Content  string   `json:"content"`
	Category Category `json:"category"`
	Score    float64  `json:"score"`
}
