package handler

import (
	"context"

	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Get)
}

func (h *HealthHandler) Get(c fiber.Ctx) error {
	status := "ok"
	dbStatus := "ok"
	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			status = "degraded"
			dbStatus = "unreachable"
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"status":   status,
		"database": dbStatus,
	})
}
