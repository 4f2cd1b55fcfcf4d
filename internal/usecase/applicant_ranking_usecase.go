package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/scoring"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

const (
	SortByScore = "score"
	SortByDate  = "date"
)

type RankingParams struct {
	MinScore      *float64
	SortBy        string
	ShowBreakdown bool
	Limit         int
}

type RankedApplicant struct {
	ApplicationID uuid.UUID
	UserID        uuid.UUID
	Name          string
	Email         string
	Status        string
	AppliedAt     time.Time
	Score         float64
	Breakdown     map[scoring.Criterion]float64
	Weights       map[scoring.Criterion]float64
	Summary       scoring.Summary
}

// RankingStats aggregates over every scored applicant for the job, not just
// the ones that survive the minScore filter.
type RankingStats struct {
	TotalApplicants     int
	QualifiedApplicants int
	AverageScore        float64
	TopScore            float64
	MinScoreFilter      float64
}

type RankingResult struct {
	JobID      uuid.UUID
	JobTitle   string
	Applicants []RankedApplicant
	Stats      RankingStats
}

// ShortlistParams optionally override the configured shortlist threshold and
// cap for one run.
type ShortlistParams struct {
	MinScore *float64
	Max      int
}

// ShortlistResult reports the chosen set, how many records actually changed
// and the mean score of the chosen applicants (0 when none qualify).
type ShortlistResult struct {
	JobID          uuid.UUID
	ApplicationIDs []uuid.UUID
	Shortlisted    int64
	AverageScore   float64
}

type ApplicantRankingUsecase interface {
	RankApplicants(ctx context.Context, jobID uuid.UUID, params RankingParams) (RankingResult, error)
	AutoShortlist(ctx context.Context, jobID uuid.UUID, params ShortlistParams) (ShortlistResult, error)
}

// ShortlistNotifier fans a shortlist update out to connected employer clients.
// Delivery is best effort.
type ShortlistNotifier interface {
	ShortlistUpdated(jobID uuid.UUID, applicationIDs []uuid.UUID)
}

type ApplicantRanking struct {
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	notifier     ShortlistNotifier
	logger       *log.Logger
	cfg          config.MatchingConfig
	now          func() time.Time
}

func NewApplicantRankingUsecase(jobs repository.JobRepository, applications repository.ApplicationRepository, notifier ShortlistNotifier, logger *log.Logger, cfg config.MatchingConfig) *ApplicantRanking {
	return &ApplicantRanking{
		jobs:         jobs,
		applications: applications,
		notifier:     notifier,
		logger:       logger,
		cfg:          cfg,
		now:          time.Now,
	}
}

func (u *ApplicantRanking) RankApplicants(ctx context.Context, jobID uuid.UUID, params RankingParams) (RankingResult, error) {
	if jobID == uuid.Nil {
		return RankingResult{}, ErrInvalidInput
	}

	minScore := u.cfg.MinScore
	if params.MinScore != nil {
		minScore = *params.MinScore
	}
	if minScore < 0 || minScore > 1 {
		return RankingResult{}, ErrInvalidInput
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = SortByScore
	}
	if sortBy != SortByScore && sortBy != SortByDate {
		return RankingResult{}, ErrInvalidInput
	}

	limit := params.Limit
	if limit <= 0 || limit > u.cfg.MaxResults {
		limit = u.cfg.MaxResults
	}

	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return RankingResult{}, ErrJobNotFound
		}
		return RankingResult{}, ErrInternal
	}

	applicants, err := u.applications.ListByJob(ctx, jobID)
	if err != nil {
		return RankingResult{}, ErrInternal
	}

	now := u.now()
	scored := u.scoreAll(applicants, j, now, params.ShowBreakdown)

	stats := RankingStats{
		TotalApplicants: len(scored),
		MinScoreFilter:  minScore,
	}
	sum := 0.0
	for _, a := range scored {
		sum += a.Score
		if a.Score > stats.TopScore {
			stats.TopScore = a.Score
		}
	}
	if len(scored) > 0 {
		stats.AverageScore = roundTo(sum/float64(len(scored)), 4)
	}
	stats.TopScore = roundTo(stats.TopScore, 4)

	qualified := make([]RankedApplicant, 0, len(scored))
	for _, a := range scored {
		if a.Score >= minScore {
			qualified = append(qualified, a)
		}
	}
	stats.QualifiedApplicants = len(qualified)

	switch sortBy {
	case SortByDate:
		sort.SliceStable(qualified, func(i, k int) bool {
			return qualified[i].AppliedAt.After(qualified[k].AppliedAt)
		})
	default:
		sort.SliceStable(qualified, func(i, k int) bool {
			return qualified[i].Score > qualified[k].Score
		})
	}

	if len(qualified) > limit {
		qualified = qualified[:limit]
	}

	return RankingResult{
		JobID:      j.ID,
		JobTitle:   j.Title,
		Applicants: qualified,
		Stats:      stats,
	}, nil
}

func (u *ApplicantRanking) AutoShortlist(ctx context.Context, jobID uuid.UUID, params ShortlistParams) (ShortlistResult, error) {
	if jobID == uuid.Nil {
		return ShortlistResult{}, ErrInvalidInput
	}

	minScore := u.cfg.ShortlistMinScore
	if params.MinScore != nil {
		minScore = *params.MinScore
	}
	if minScore < 0 || minScore > 1 {
		return ShortlistResult{}, ErrInvalidInput
	}
	max := params.Max
	if max <= 0 || max > u.cfg.ShortlistMax {
		max = u.cfg.ShortlistMax
	}

	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ShortlistResult{}, ErrJobNotFound
		}
		return ShortlistResult{}, ErrInternal
	}

	applicants, err := u.applications.ListByJob(ctx, jobID)
	if err != nil {
		return ShortlistResult{}, ErrInternal
	}

	scored := u.scoreAll(applicants, j, u.now(), false)

	eligible := make([]RankedApplicant, 0, len(scored))
	for _, a := range scored {
		if a.Score >= minScore {
			eligible = append(eligible, a)
		}
	}
	sort.SliceStable(eligible, func(i, k int) bool {
		return eligible[i].Score > eligible[k].Score
	})
	if len(eligible) > max {
		eligible = eligible[:max]
	}

	ids := make([]uuid.UUID, 0, len(eligible))
	sum := 0.0
	for _, a := range eligible {
		ids = append(ids, a.ApplicationID)
		sum += a.Score
	}
	avg := 0.0
	if len(eligible) > 0 {
		avg = roundTo(sum/float64(len(eligible)), 4)
	}

	changed, err := u.applications.Shortlist(ctx, ids)
	if err != nil {
		return ShortlistResult{}, ErrInternal
	}

	if changed > 0 && u.notifier != nil {
		u.notifier.ShortlistUpdated(jobID, ids)
	}
	if u.logger != nil {
		u.logger.Printf("[Ranking] Shortlist job=%s eligible=%d changed=%d", jobID, len(ids), changed)
	}

	return ShortlistResult{JobID: jobID, ApplicationIDs: ids, Shortlisted: changed, AverageScore: avg}, nil
}

func (u *ApplicantRanking) scoreAll(applicants []repository.Applicant, j job.Posting, now time.Time, withBreakdown bool) []RankedApplicant {
	out := make([]RankedApplicant, 0, len(applicants))
	for _, a := range applicants {
		res := scoring.Score(a.Profile, j, now)

		item := RankedApplicant{
			ApplicationID: a.Application.ID,
			UserID:        a.Application.UserID,
			Name:          a.Name,
			Email:         a.Email,
			Status:        a.Application.Status,
			AppliedAt:     a.Application.AppliedAt,
			Score:         roundTo(res.Total, 4),
			Summary:       scoring.BuildSummary(res, a.Profile, now),
		}
		if withBreakdown {
			item.Breakdown = res.Breakdown
			item.Weights = res.Weights
		}
		out = append(out, item)
	}
	return out
}
