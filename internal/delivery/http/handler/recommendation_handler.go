package handler

import (
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	semantic  usecase.SemanticRecommendationUsecase
	heuristic usecase.HeuristicRecommendationUsecase
}

func NewRecommendationHandler(semantic usecase.SemanticRecommendationUsecase, heuristic usecase.HeuristicRecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{semantic: semantic, heuristic: heuristic}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/users")
	grp.Get("/:user_id/recommendations", h.GetSemantic)
	grp.Get("/:user_id/recommendations/heuristic", h.GetHeuristic)
}

func (h *RecommendationHandler) GetSemantic(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	items, err := h.semantic.GetRecommendations(c.Context(), userID)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	out := make([]dto.SemanticRecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.SemanticRecommendationResponse{
			JobID:      it.JobID,
			Title:      it.Title,
			Department: it.Department,
			Location:   it.Location,
			Similarity: it.Similarity,
			MatchScore: it.MatchScore,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *RecommendationHandler) GetHeuristic(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	items, err := h.heuristic.GetRecommendations(c.Context(), userID)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	out := make([]dto.HeuristicRecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.HeuristicRecommendationResponse{
			JobID:      it.JobID,
			Title:      it.Title,
			Department: it.Department,
			Location:   it.Location,
			Similarity: it.Similarity,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapRecommendationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid recommendation parameters", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrModelLoad):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Recommendation model unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
