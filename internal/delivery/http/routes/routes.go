package routes

import (
	"talent-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health         *handler.HealthHandler
	ranking        *handler.RankingHandler
	recommendation *handler.RecommendationHandler
}

func NewRegistry(health *handler.HealthHandler, ranking *handler.RankingHandler, recommendation *handler.RecommendationHandler) *Registry {
	return &Registry{health: health, ranking: ranking, recommendation: recommendation}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	v1 := app.Group("/api").Group("/v1")
	r.ranking.RegisterRoutes(v1)
	r.recommendation.RegisterRoutes(v1)
}
