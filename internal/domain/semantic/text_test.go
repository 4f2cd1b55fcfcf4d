package semantic

import (
	"strings"
	"testing"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/user"
)

func TestProfileText_OmitsAbsentSegments(t *testing.T) {
	p := user.Profile{
		Skills: []string{"Go", "PostgreSQL"},
		City:   "Jakarta",
	}

	got := ProfileText(p)
	want := "Skills: Go, PostgreSQL. City: Jakarta"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if strings.Contains(got, "Designation") || strings.Contains(got, "Sectors") {
		t.Fatalf("absent segments must be omitted: %q", got)
	}
}

func TestProfileText_FullProfile(t *testing.T) {
	p := user.Profile{
		Designation: "Backend Developer",
		Sectors:     []string{"Fintech"},
		City:        "Jakarta",
		Skills:      []string{"Go"},
		Experience:  []user.Experience{{Title: "Backend Developer"}, {Title: "Intern"}},
		Education:   []user.Education{{Degree: "BSc Computer Science"}},
	}

	got := ProfileText(p)
	for _, part := range []string{
		"Skills: Go",
		"Designation: Backend Developer",
		"Sectors: Fintech",
		"City: Jakarta",
		"Experience: Backend Developer, Intern",
		"Education: BSc Computer Science",
	} {
		if !strings.Contains(got, part) {
			t.Fatalf("expected %q in %q", part, got)
		}
	}
}

func TestProfileText_Empty(t *testing.T) {
	if got := ProfileText(user.Profile{}); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}

func TestJobText_CapsDescription(t *testing.T) {
	long := strings.Repeat("x", 2000)
	j := job.Posting{
		Title:       "Backend Engineer",
		Skills:      []string{"go"},
		Description: long,
		Location:    "Remote",
	}

	got := JobText(j)
	if !strings.Contains(got, "Title: Backend Engineer") {
		t.Fatalf("missing title segment: %q", got)
	}
	if strings.Contains(got, strings.Repeat("x", 501)) {
		t.Fatalf("description not capped")
	}
	if !strings.Contains(got, strings.Repeat("x", 500)) {
		t.Fatalf("description excerpt missing")
	}
}
