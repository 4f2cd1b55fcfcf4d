package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/recommend"

	"github.com/google/uuid"
)

func TestHeuristicRecommendation_NilUserID(t *testing.T) {
	uc := NewHeuristicRecommendationUsecase(
		mockUserRepo{}, mockJobRepo{}, &mockApplicationRepo{}, mockSavedJobRepo{},
		nil, matchingCfg(),
	)
	_, err := uc.GetRecommendations(context.Background(), uuid.Nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestHeuristicRecommendation_RepoFailureYieldsEmptyList(t *testing.T) {
	uc := NewHeuristicRecommendationUsecase(
		mockUserRepo{err: errors.New("db down")},
		mockJobRepo{}, &mockApplicationRepo{}, mockSavedJobRepo{},
		nil, matchingCfg(),
	)
	items, err := uc.GetRecommendations(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected best-effort nil error, got %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", items)
	}
}

func TestHeuristicRecommendation_IncompleteProfile(t *testing.T) {
	u := completedUser()
	u.ProfileCompleted = false
	uc := NewHeuristicRecommendationUsecase(
		mockUserRepo{user: u},
		mockJobRepo{open: []job.Posting{semanticJob("Backend Engineer", []string{"Go"})}},
		&mockApplicationRepo{}, mockSavedJobRepo{},
		nil, matchingCfg(),
	)
	items, err := uc.GetRecommendations(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d", len(items))
	}
}

func TestHeuristicRecommendation_RanksSharedSkillFirst(t *testing.T) {
	u := completedUser()
	match := semanticJob("Backend Engineer", []string{"Go", "PostgreSQL"})
	unrelated := semanticJob("Sales Associate", []string{"CRM"})
	appliedJob := semanticJob("Platform Engineer", []string{"Go"})

	uc := NewHeuristicRecommendationUsecase(
		mockUserRepo{user: u},
		mockJobRepo{open: []job.Posting{unrelated, match, appliedJob}},
		&mockApplicationRepo{applied: []uuid.UUID{appliedJob.ID}},
		mockSavedJobRepo{},
		nil, matchingCfg(),
	)
	items, err := uc.GetRecommendations(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(items))
	}
	if items[0].JobID != match.ID {
		t.Fatalf("expected the shared-skill posting first")
	}
	// No shared skills lands on the fixed floor, which clears the cutoff.
	if items[1].JobID != unrelated.ID || items[1].Similarity != 0.3 {
		t.Fatalf("expected floor score 0.3 for the unrelated posting, got %+v", items[1])
	}
}

func TestHeuristicRecommendation_SavedJobBoostBreaksTie(t *testing.T) {
	u := completedUser()
	a := semanticJob("Backend Engineer", []string{"Go", "PostgreSQL"})
	a.Department = "Engineering"
	b := semanticJob("Backend Engineer", []string{"Go", "PostgreSQL"})
	b.Department = "Platform"

	uc := NewHeuristicRecommendationUsecase(
		mockUserRepo{user: u},
		mockJobRepo{open: []job.Posting{a, b}},
		&mockApplicationRepo{},
		mockSavedJobRepo{saved: []recommend.SavedJob{{Title: "SRE", Department: "Platform"}}},
		nil, matchingCfg(),
	)
	items, err := uc.GetRecommendations(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(items))
	}
	if items[0].JobID != b.ID {
		t.Fatalf("expected the boosted posting first")
	}
	if items[0].Similarity <= items[1].Similarity {
		t.Fatalf("expected a strictly higher score for the boosted posting")
	}
}
