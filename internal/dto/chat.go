package dto

type ChatRequest struct {
	Message  string `json:"message" validate:"required"`
	Timezone string `json:"timezone"`
}

type ChatResponse struct {
	ID        string `json:"id"`
	Response  string `json:"response"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

type HealthResponse struct {
	Status               string `json:"status"`
	GeneratorConfigured  bool   `json:"generator_configured"`
	VectorIndexAvailable bool   `json:"vector_index_available"`
}
