package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"

	"talent-match/internal/config"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/semantic"
	"talent-match/internal/embedding"
	"talent-match/internal/pkg/similarity"
	"talent-match/internal/pkg/workerpool"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type SemanticRecommendationItem struct {
	JobID      uuid.UUID
	Title      string
	Department string
	Location   string
	Similarity float64
	MatchScore float64
}

type SemanticRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID) ([]SemanticRecommendationItem, error)
}

type SemanticRecommendation struct {
	users        repository.UserRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	provider     embedding.Provider
	cache        VectorCache
	logger       *log.Logger
	matching     config.MatchingConfig
	workers      int
	rateLimitRPS int
}

func NewSemanticRecommendationUsecase(
	users repository.UserRepository,
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
	provider embedding.Provider,
	cache VectorCache,
	logger *log.Logger,
	matching config.MatchingConfig,
	embeddingCfg config.EmbeddingConfig,
) *SemanticRecommendation {
	return &SemanticRecommendation{
		users:        users,
		jobs:         jobs,
		applications: applications,
		provider:     provider,
		cache:        cache,
		logger:       logger,
		matching:     matching,
		workers:      embeddingCfg.Workers,
		rateLimitRPS: embeddingCfg.RateLimitRPS,
	}
}

func (u *SemanticRecommendation) GetRecommendations(ctx context.Context, userID uuid.UUID) ([]SemanticRecommendationItem, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	usr, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}

	// An incomplete or skill-less profile yields nothing to embed; bail out
	// before touching the model.
	if !usr.ProfileCompleted || usr.Profile == nil || len(usr.Profile.Skills) == 0 {
		return []SemanticRecommendationItem{}, nil
	}

	jobs, err := u.openUnappliedJobs(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	if len(jobs) == 0 {
		return []SemanticRecommendationItem{}, nil
	}

	embedder, err := u.provider.Embedder(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Semantic] Embedding model load failed: %v", err)
		}
		return nil, ErrModelLoad
	}

	profileVec, err := embedder.Embed(ctx, semantic.ProfileText(*usr.Profile))
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Semantic] Profile embedding failed user=%s: %v", userID, err)
		}
		return nil, ErrInternal
	}

	jobVecs := u.embedJobs(ctx, embedder, jobs)

	out := make([]SemanticRecommendationItem, 0, len(jobs))
	for i, j := range jobs {
		sim := 0.0
		if jobVecs[i] != nil {
			sim = similarity.Cosine(profileVec, jobVecs[i])
		}
		if sim < u.matching.SemanticCutoff {
			continue
		}
		sim = roundTo(sim, 4)
		out = append(out, SemanticRecommendationItem{
			JobID:      j.ID,
			Title:      j.Title,
			Department: j.Department,
			Location:   j.Location,
			Similarity: sim,
			MatchScore: roundTo(sim*100, 2),
		})
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].Similarity > out[k].Similarity
	})
	if len(out) > u.matching.MaxResults {
		out = out[:u.matching.MaxResults]
	}
	return out, nil
}

func (u *SemanticRecommendation) openUnappliedJobs(ctx context.Context, userID uuid.UUID) ([]job.Posting, error) {
	jobs, err := u.jobs.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	appliedIDs, err := u.applications.AppliedJobIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	applied := make(map[uuid.UUID]struct{}, len(appliedIDs))
	for _, id := range appliedIDs {
		applied[id] = struct{}{}
	}

	out := make([]job.Posting, 0, len(jobs))
	for _, j := range jobs {
		if _, ok := applied[j.ID]; ok {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

// embedJobs resolves one vector per posting, cache first, then the model
// through a bounded worker pool. A posting whose embedding fails stays nil and
// scores zero; one bad row never sinks the batch.
func (u *SemanticRecommendation) embedJobs(ctx context.Context, embedder embedding.Embedder, jobs []job.Posting) [][]float64 {
	vecs := make([][]float64, len(jobs))
	var mu sync.Mutex

	pool := workerpool.New(u.workers, len(jobs))
	if u.rateLimitRPS > 0 {
		pool.SetRateLimit(u.rateLimitRPS)
	}

	go func() {
		for i := range jobs {
			i := i
			j := jobs[i]
			pool.Submit(func(taskCtx context.Context) error {
				key := JobVectorCacheKey(j)
				if u.cache != nil {
					var cached []float64
					if hit, err := u.cache.GetJSON(taskCtx, key, &cached); err == nil && hit && len(cached) > 0 {
						mu.Lock()
						vecs[i] = cached
						mu.Unlock()
						return nil
					}
				}

				vec, err := embedder.Embed(taskCtx, semantic.JobText(j))
				if err != nil {
					if u.logger != nil {
						u.logger.Printf("[Semantic] Job embedding failed job=%s: %v", j.ID, err)
					}
					return nil
				}
				mu.Lock()
				vecs[i] = vec
				mu.Unlock()
				if u.cache != nil {
					_ = u.cache.SetJSON(taskCtx, key, vec, 0)
				}
				return nil
			})
		}
		pool.Close()
	}()

	for range pool.Run(ctx) {
	}
	return vecs
}
