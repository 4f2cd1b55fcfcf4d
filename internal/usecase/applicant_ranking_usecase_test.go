package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/domain/application"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/user"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

func matchingCfg() config.MatchingConfig {
	return config.MatchingConfig{
		MinScore:          0.3,
		MaxResults:        50,
		ShortlistMinScore: 0.7,
		ShortlistMax:      10,
		SemanticCutoff:    0.6,
		HeuristicCutoff:   0.15,
	}
}

func backendJob(id uuid.UUID) job.Posting {
	return job.Posting{
		ID:       id,
		Title:    "Backend Engineer",
		Location: "Jakarta",
		Skills:   []string{"Go", "PostgreSQL"},
		Status:   job.StatusOpen,
	}
}

func strongProfile() *user.Profile {
	start := time.Now().AddDate(-4, 0, 0)
	return &user.Profile{
		Designation: "Backend Engineer",
		City:        "Jakarta",
		Skills:      []string{"Go", "PostgreSQL", "Docker"},
		Education:   []user.Education{{Degree: "Computer Science", Institution: "UI"}},
		Experience: []user.Experience{{
			Title:     "Backend Engineer",
			Company:   "Acme",
			StartDate: &start,
			Current:   true,
		}},
		Projects: []user.Project{{
			Title:       "Job board",
			Description: "Built Go services backed by PostgreSQL",
		}},
	}
}

func applicantFixture(jobID uuid.UUID, p *user.Profile, appliedAt time.Time) repository.Applicant {
	return repository.Applicant{
		Application: application.Application{
			ID:        uuid.New(),
			JobID:     jobID,
			UserID:    uuid.New(),
			Status:    application.StatusNew,
			AppliedAt: appliedAt,
		},
		Name:    "Alice",
		Email:   "alice@example.com",
		Profile: p,
	}
}

func TestApplicantRanking_JobNotFound(t *testing.T) {
	uc := NewApplicantRankingUsecase(mockJobRepo{}, &mockApplicationRepo{}, nil, nil, matchingCfg())
	_, err := uc.RankApplicants(context.Background(), uuid.New(), RankingParams{})
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicantRanking_InvalidParams(t *testing.T) {
	uc := NewApplicantRankingUsecase(mockJobRepo{}, &mockApplicationRepo{}, nil, nil, matchingCfg())

	bad := 1.5
	_, err := uc.RankApplicants(context.Background(), uuid.New(), RankingParams{MinScore: &bad})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for out-of-range minScore, got %v", err)
	}

	_, err = uc.RankApplicants(context.Background(), uuid.New(), RankingParams{SortBy: "salary"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown sortBy, got %v", err)
	}
}

func TestApplicantRanking_FiltersAndStats(t *testing.T) {
	jobID := uuid.New()
	now := time.Now()
	apps := &mockApplicationRepo{applicants: []repository.Applicant{
		applicantFixture(jobID, strongProfile(), now.Add(-time.Hour)),
		applicantFixture(jobID, nil, now),
	}}
	uc := NewApplicantRankingUsecase(mockJobRepo{jobs: map[uuid.UUID]job.Posting{jobID: backendJob(jobID)}}, apps, nil, nil, matchingCfg())

	res, err := uc.RankApplicants(context.Background(), jobID, RankingParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if res.Stats.TotalApplicants != 2 {
		t.Fatalf("expected 2 total applicants, got %d", res.Stats.TotalApplicants)
	}
	if res.Stats.QualifiedApplicants != 1 {
		t.Fatalf("expected 1 qualified applicant, got %d", res.Stats.QualifiedApplicants)
	}
	if len(res.Applicants) != 1 {
		t.Fatalf("expected 1 ranked applicant, got %d", len(res.Applicants))
	}

	top := res.Applicants[0]
	if top.Score < 0.7 {
		t.Fatalf("expected strong applicant to score above 0.7, got %v", top.Score)
	}
	if top.Breakdown != nil {
		t.Fatalf("expected no breakdown without showBreakdown")
	}
	if res.Stats.TopScore != top.Score {
		t.Fatalf("top score %v does not match best applicant %v", res.Stats.TopScore, top.Score)
	}
	// The nil-profile applicant scores zero, so the average is half the top.
	wantAvg := roundTo(top.Score/2, 4)
	if diff := res.Stats.AverageScore - wantAvg; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected average %v, got %v", wantAvg, res.Stats.AverageScore)
	}
}

func TestApplicantRanking_ShowBreakdown(t *testing.T) {
	jobID := uuid.New()
	apps := &mockApplicationRepo{applicants: []repository.Applicant{
		applicantFixture(jobID, strongProfile(), time.Now()),
	}}
	uc := NewApplicantRankingUsecase(mockJobRepo{jobs: map[uuid.UUID]job.Posting{jobID: backendJob(jobID)}}, apps, nil, nil, matchingCfg())

	res, err := uc.RankApplicants(context.Background(), jobID, RankingParams{ShowBreakdown: true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Applicants) != 1 {
		t.Fatalf("expected 1 applicant, got %d", len(res.Applicants))
	}
	if len(res.Applicants[0].Breakdown) != 6 {
		t.Fatalf("expected 6 criteria in breakdown, got %d", len(res.Applicants[0].Breakdown))
	}
	if len(res.Applicants[0].Weights) != 6 {
		t.Fatalf("expected 6 criteria weights, got %d", len(res.Applicants[0].Weights))
	}
}

func TestApplicantRanking_SortByDate(t *testing.T) {
	jobID := uuid.New()
	now := time.Now()
	older := applicantFixture(jobID, strongProfile(), now.Add(-48*time.Hour))
	newer := applicantFixture(jobID, strongProfile(), now)
	apps := &mockApplicationRepo{applicants: []repository.Applicant{older, newer}}
	uc := NewApplicantRankingUsecase(mockJobRepo{jobs: map[uuid.UUID]job.Posting{jobID: backendJob(jobID)}}, apps, nil, nil, matchingCfg())

	res, err := uc.RankApplicants(context.Background(), jobID, RankingParams{SortBy: SortByDate})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Applicants) != 2 {
		t.Fatalf("expected 2 applicants, got %d", len(res.Applicants))
	}
	if res.Applicants[0].ApplicationID != newer.Application.ID {
		t.Fatalf("expected newest application first")
	}
}

func TestAutoShortlist_ShortlistsAndNotifies(t *testing.T) {
	jobID := uuid.New()
	strong := applicantFixture(jobID, strongProfile(), time.Now())
	weak := applicantFixture(jobID, nil, time.Now())
	apps := &mockApplicationRepo{applicants: []repository.Applicant{strong, weak}, changed: 1}
	notifier := &mockNotifier{}
	uc := NewApplicantRankingUsecase(mockJobRepo{jobs: map[uuid.UUID]job.Posting{jobID: backendJob(jobID)}}, apps, notifier, nil, matchingCfg())

	res, err := uc.AutoShortlist(context.Background(), jobID, ShortlistParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Shortlisted != 1 {
		t.Fatalf("expected 1 shortlisted, got %d", res.Shortlisted)
	}
	if len(apps.shortlisted) != 1 || len(apps.shortlisted[0]) != 1 {
		t.Fatalf("expected one shortlist call with one id, got %v", apps.shortlisted)
	}
	if apps.shortlisted[0][0] != strong.Application.ID {
		t.Fatalf("expected the strong applicant shortlisted")
	}
	if notifier.calls != 1 || notifier.jobID != jobID {
		t.Fatalf("expected one notification for job %s", jobID)
	}
	// Only the strong applicant qualifies, so the set average is its score.
	if res.AverageScore < 0.7 {
		t.Fatalf("expected average of the shortlisted set above 0.7, got %v", res.AverageScore)
	}
}

func TestAutoShortlist_AverageScoreZeroWhenNoneQualify(t *testing.T) {
	jobID := uuid.New()
	apps := &mockApplicationRepo{applicants: []repository.Applicant{
		applicantFixture(jobID, strongProfile(), time.Now()),
	}}
	uc := NewApplicantRankingUsecase(mockJobRepo{jobs: map[uuid.UUID]job.Posting{jobID: backendJob(jobID)}}, apps, nil, nil, matchingCfg())

	strict := 0.99
	res, err := uc.AutoShortlist(context.Background(), jobID, ShortlistParams{MinScore: &strict})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.ApplicationIDs) != 0 {
		t.Fatalf("expected no applicants above %v, got %d", strict, len(res.ApplicationIDs))
	}
	if res.AverageScore != 0 {
		t.Fatalf("expected average 0 for an empty shortlist, got %v", res.AverageScore)
	}
}

func TestAutoShortlist_IdempotentRunSkipsNotification(t *testing.T) {
	jobID := uuid.New()
	apps := &mockApplicationRepo{
		applicants: []repository.Applicant{applicantFixture(jobID, strongProfile(), time.Now())},
		changed:    0,
	}
	notifier := &mockNotifier{}
	uc := NewApplicantRankingUsecase(mockJobRepo{jobs: map[uuid.UUID]job.Posting{jobID: backendJob(jobID)}}, apps, notifier, nil, matchingCfg())

	res, err := uc.AutoShortlist(context.Background(), jobID, ShortlistParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Shortlisted != 0 {
		t.Fatalf("expected 0 newly shortlisted, got %d", res.Shortlisted)
	}
	if notifier.calls != 0 {
		t.Fatalf("expected no notification when nothing changed")
	}
}

func TestAutoShortlist_CapsCandidates(t *testing.T) {
	jobID := uuid.New()
	apps := &mockApplicationRepo{changed: 10}
	for i := 0; i < 15; i++ {
		apps.applicants = append(apps.applicants, applicantFixture(jobID, strongProfile(), time.Now()))
	}
	uc := NewApplicantRankingUsecase(mockJobRepo{jobs: map[uuid.UUID]job.Posting{jobID: backendJob(jobID)}}, apps, nil, nil, matchingCfg())

	res, err := uc.AutoShortlist(context.Background(), jobID, ShortlistParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.ApplicationIDs) != 10 {
		t.Fatalf("expected shortlist capped at 10, got %d", len(res.ApplicationIDs))
	}
}
