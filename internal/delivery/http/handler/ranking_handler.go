package handler

import (
	"errors"
	"strconv"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/scoring"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RankingHandler struct {
	uc usecase.ApplicantRankingUsecase
}

func NewRankingHandler(uc usecase.ApplicantRankingUsecase) *RankingHandler {
	return &RankingHandler{uc: uc}
}

func (h *RankingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/:job_id/applicants/ranking", h.GetRanking)
	grp.Post("/:job_id/applicants/shortlist", h.AutoShortlist)
}

func (h *RankingHandler) GetRanking(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	params := usecase.RankingParams{
		SortBy:        c.Query("sort_by"),
		ShowBreakdown: parseQueryBool(c, "show_breakdown"),
		Limit:         parseQueryInt(c, "limit", 0),
	}
	if raw := c.Query("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_score", nil, err)
		}
		params.MinScore = &v
	}

	res, err := h.uc.RankApplicants(c.Context(), jobID, params)
	if err != nil {
		return mapRankingUsecaseError(err)
	}

	applicants := make([]dto.RankedApplicantItem, 0, len(res.Applicants))
	for _, a := range res.Applicants {
		applicants = append(applicants, dto.RankedApplicantItem{
			ApplicationID: a.ApplicationID,
			UserID:        a.UserID,
			Name:          a.Name,
			Email:         a.Email,
			Status:        a.Status,
			AppliedAt:     a.AppliedAt,
			Score:         a.Score,
			Breakdown:     criterionMap(a.Breakdown),
			Weights:       criterionMap(a.Weights),
			Summary: dto.MatchSummaryItem{
				Strengths:       a.Summary.Strengths,
				Concerns:        a.Summary.Concerns,
				ExperienceYears: a.Summary.ExperienceYears,
				TopSkills:       a.Summary.TopSkills,
				Role:            a.Summary.Role,
			},
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ApplicantRankingResponse{
		JobID:      res.JobID,
		JobTitle:   res.JobTitle,
		Applicants: applicants,
		Stats: dto.RankingStatsItem{
			TotalApplicants:     res.Stats.TotalApplicants,
			QualifiedApplicants: res.Stats.QualifiedApplicants,
			AverageScore:        res.Stats.AverageScore,
			TopScore:            res.Stats.TopScore,
			MinScoreFilter:      res.Stats.MinScoreFilter,
		},
	})
}

func (h *RankingHandler) AutoShortlist(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	params := usecase.ShortlistParams{
		Max: parseQueryInt(c, "max_shortlist", 0),
	}
	if raw := c.Query("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_score", nil, err)
		}
		params.MinScore = &v
	}

	res, err := h.uc.AutoShortlist(c.Context(), jobID, params)
	if err != nil {
		return mapRankingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ShortlistResponse{
		JobID:          res.JobID,
		ApplicationIDs: res.ApplicationIDs,
		Shortlisted:    res.Shortlisted,
		AverageScore:   res.AverageScore,
	})
}

func criterionMap(in map[scoring.Criterion]float64) map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func parseQueryBool(c fiber.Ctx, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	if err != nil {
		return false
	}
	return v
}

func mapRankingUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid ranking parameters", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
