package service

import (
	"strings"

	"weather-rag/internal/models"
)

// keywordScore is assigned to every keyword match. The keyword path is
// boolean matching, not ranked retrieval, so there is no relevance gradient
// to express.
const keywordScore = 0.8

// KeywordSearch is the always-available retrieval fallback: it scans the
// in-process corpus with case-insensitive substring matching and performs no
// network I/O. Matches come back in corpus order, truncated to topK.
func KeywordSearch(query string, items []models.KnowledgeItem, topK int) []models.RetrievedPassage {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil
	}

	var results []models.RetrievedPassage
	for _, item := range items {
		if len(results) >= topK {
			break
		}

		content := strings.ToLower(item.Content)
		category := strings.ToLower(string(item.Category))

		for _, token := range tokens {
			if strings.Contains(content, token) || strings.Contains(category, token) {
				results = append(results, models.RetrievedPassage{
					Content:  item.Content,
					Category: item.Category,
					Score:    keywordScore,
				})
				break
			}
		}
	}

	return results
}
