package app

import (
	"context"
	"log"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/database"
	"talent-match/internal/database/migration"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/embedding"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"
	"talent-match/internal/ws"
)

// Container owns every long-lived dependency: the connection pool, the cache,
// the embedding provider, the websocket hub and the wired usecases.
type Container struct {
	Config config.Config
	DB     database.DB
	Logger *log.Logger

	Hub       *ws.Hub
	WSHandler *ws.Handler

	Health         *handler.HealthHandler
	Ranking        *handler.RankingHandler
	Recommendation *handler.RecommendationHandler
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.RunMigrations {
		if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	redisCache := cache.NewRedis(logger)

	jobRepo := repository.NewPostgresJobRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)
	savedJobRepo := repository.NewPostgresSavedJobRepository(db)

	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewShortlistNotifier(hub, logger)

	provider := embedding.NewGeminiProvider(cfg.Embedding)

	rankingUC := usecase.NewApplicantRankingUsecase(jobRepo, applicationRepo, notifier, logger, cfg.Matching)
	semanticUC := usecase.NewSemanticRecommendationUsecase(
		userRepo, jobRepo, applicationRepo, provider, redisCache, logger, cfg.Matching, cfg.Embedding,
	)
	heuristicUC := usecase.NewHeuristicRecommendationUsecase(
		userRepo, jobRepo, applicationRepo, savedJobRepo, logger, cfg.Matching,
	)

	return &Container{
		Config:         cfg,
		DB:             db,
		Logger:         logger,
		Hub:            hub,
		WSHandler:      ws.NewHandler(hub, logger),
		Health:         handler.NewHealthHandler(db),
		Ranking:        handler.NewRankingHandler(rankingUC),
		Recommendation: handler.NewRecommendationHandler(semanticUC, heuristicUC),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
