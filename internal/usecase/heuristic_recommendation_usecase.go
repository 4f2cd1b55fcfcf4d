package usecase

import (
	"context"
	"log"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/domain/recommend"
	"talent-match/internal/domain/scoring"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type HeuristicRecommendationItem struct {
	JobID      uuid.UUID
	Title      string
	Department string
	Location   string
	Similarity float64
}

type HeuristicRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID) ([]HeuristicRecommendationItem, error)
}

// HeuristicRecommendation is the cheap fallback ranker. Past input
// validation it is best effort: any repository failure is logged and
// surfaces as an empty list, never as an error to the caller.
type HeuristicRecommendation struct {
	users        repository.UserRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	saved        repository.SavedJobRepository
	logger       *log.Logger
	matching     config.MatchingConfig
	now          func() time.Time
}

func NewHeuristicRecommendationUsecase(
	users repository.UserRepository,
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
	saved repository.SavedJobRepository,
	logger *log.Logger,
	matching config.MatchingConfig,
) *HeuristicRecommendation {
	return &HeuristicRecommendation{
		users:        users,
		jobs:         jobs,
		applications: applications,
		saved:        saved,
		logger:       logger,
		matching:     matching,
		now:          time.Now,
	}
}

func (u *HeuristicRecommendation) GetRecommendations(ctx context.Context, userID uuid.UUID) ([]HeuristicRecommendationItem, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	empty := []HeuristicRecommendationItem{}

	usr, err := u.users.FindByID(ctx, userID)
	if err != nil {
		u.logf("user lookup failed user=%s: %v", userID, err)
		return empty, nil
	}
	if !usr.ProfileCompleted || usr.Profile == nil || len(usr.Profile.Skills) == 0 {
		return empty, nil
	}

	jobs, err := u.jobs.ListOpen(ctx)
	if err != nil {
		u.logf("job listing failed: %v", err)
		return empty, nil
	}
	appliedIDs, err := u.applications.AppliedJobIDs(ctx, userID)
	if err != nil {
		u.logf("applied jobs lookup failed user=%s: %v", userID, err)
		return empty, nil
	}
	applied := make(map[uuid.UUID]struct{}, len(appliedIDs))
	for _, id := range appliedIDs {
		applied[id] = struct{}{}
	}
	candidates := jobs[:0:0]
	for _, j := range jobs {
		if _, ok := applied[j.ID]; ok {
			continue
		}
		candidates = append(candidates, j)
	}
	if len(candidates) == 0 {
		return empty, nil
	}

	saved, err := u.saved.ListByUser(ctx, userID)
	if err != nil {
		u.logf("saved jobs lookup failed user=%s: %v", userID, err)
		saved = nil
	}

	years := scoring.TotalExperienceYears(usr.Profile.Experience, u.now())
	ranked := recommend.Rank(*usr.Profile, years, saved, candidates, u.matching.HeuristicCutoff)
	if len(ranked) > u.matching.MaxResults {
		ranked = ranked[:u.matching.MaxResults]
	}

	out := make([]HeuristicRecommendationItem, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, HeuristicRecommendationItem{
			JobID:      r.Job.ID,
			Title:      r.Job.Title,
			Department: r.Job.Department,
			Location:   r.Job.Location,
			Similarity: roundTo(r.Similarity, 4),
		})
	}
	return out, nil
}

func (u *HeuristicRecommendation) logf(format string, args ...any) {
	if u.logger == nil {
		return
	}
	u.logger.Printf("[Heuristic] "+format, args...)
}
