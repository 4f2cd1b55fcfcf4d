package dto

import (
	"time"

	"github.com/google/uuid"
)

type ApplicantRankingResponse struct {
	JobID      uuid.UUID             `json:"job_id"`
	JobTitle   string                `json:"job_title"`
	Applicants []RankedApplicantItem `json:"applicants"`
	Stats      RankingStatsItem      `json:"stats"`
}

type RankedApplicantItem struct {
	ApplicationID uuid.UUID          `json:"application_id"`
	UserID        uuid.UUID          `json:"user_id"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Status        string             `json:"status"`
	AppliedAt     time.Time          `json:"applied_at"`
	Score         float64            `json:"score"`
	Breakdown     map[string]float64 `json:"breakdown,omitempty"`
	Weights       map[string]float64 `json:"weights,omitempty"`
	Summary       MatchSummaryItem   `json:"summary"`
}

type MatchSummaryItem struct {
	Strengths       []string `json:"strengths"`
	Concerns        []string `json:"concerns"`
	ExperienceYears float64  `json:"experience_years"`
	TopSkills       []string `json:"top_skills"`
	Role            string   `json:"role"`
}

type RankingStatsItem struct {
	TotalApplicants     int     `json:"total_applicants"`
	QualifiedApplicants int     `json:"qualified_applicants"`
	AverageScore        float64 `json:"average_score"`
	TopScore            float64 `json:"top_score"`
	MinScoreFilter      float64 `json:"min_score_filter"`
}

type ShortlistResponse struct {
	JobID          uuid.UUID   `json:"job_id"`
	ApplicationIDs []uuid.UUID `json:"application_ids"`
	Shortlisted    int64       `json:"shortlisted"`
	AverageScore   float64     `json:"average_score"`
}
