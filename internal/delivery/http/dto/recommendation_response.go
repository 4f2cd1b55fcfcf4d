package dto

import "github.com/google/uuid"

type SemanticRecommendationResponse struct {
	JobID      uuid.UUID `json:"job_id"`
	Title      string    `json:"title"`
	Department string    `json:"department"`
	Location   string    `json:"location"`
	Similarity float64   `json:"similarity"`
	MatchScore float64   `json:"match_score"`
}

type HeuristicRecommendationResponse struct {
	JobID      uuid.UUID `json:"job_id"`
	Title      string    `json:"title"`
	Department string    `json:"department"`
	Location   string    `json:"location"`
	Similarity float64   `json:"similarity"`
}
