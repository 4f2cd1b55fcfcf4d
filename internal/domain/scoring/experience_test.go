package scoring

import (
	"math"
	"testing"
	"time"

	"talent-match/internal/domain/user"
)

func date(y int, m time.Month) *time.Time {
	t := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestRequiredYears(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"3+ years", 3},
		{"minimum 5 yrs in backend", 5},
		{"senior", 0},
		{"", 0},
		{"10 years, ideally 12", 10},
	}
	for _, tc := range cases {
		if got := RequiredYears(tc.text); got != tc.want {
			t.Fatalf("%q: expected %d, got %d", tc.text, tc.want, got)
		}
	}
}

func TestTotalExperienceYears(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	entries := []user.Experience{
		{Title: "Dev", StartDate: date(2020, time.June), EndDate: date(2022, time.June)},  // 2y
		{Title: "Dev", StartDate: date(2024, time.June), Current: true},                   // 2y to now
		{Title: "Dev", StartDate: nil, EndDate: date(2021, time.January)},                 // unparsable start
		{Title: "Dev", StartDate: date(2019, time.January)},                               // no end, not current
		{Title: "Dev", StartDate: date(2025, time.June), EndDate: date(2025, time.March)}, // negative, floored
	}

	got := TotalExperienceYears(entries, now)
	if math.Abs(got-4.0) > 1e-9 {
		t.Fatalf("expected 4.0 years, got %v", got)
	}
}

func TestTotalExperienceYears_MonotonicInEndDate(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	start := date(2022, time.January)

	short := []user.Experience{{StartDate: start, EndDate: date(2023, time.January)}}
	long := []user.Experience{{StartDate: start, EndDate: date(2024, time.June)}}
	current := []user.Experience{{StartDate: start, Current: true}}

	a := TotalExperienceYears(short, now)
	b := TotalExperienceYears(long, now)
	c := TotalExperienceYears(current, now)
	if b < a || c < b {
		t.Fatalf("expected monotonic totals, got %v, %v, %v", a, b, c)
	}
}

func TestExperienceScore_NoEntries(t *testing.T) {
	now := time.Now()
	if got := ExperienceScore(nil, "3+ years", "Backend Engineer", now); got != 0 {
		t.Fatalf("required experience with none: expected 0, got %v", got)
	}
	if got := ExperienceScore(nil, "no experience needed", "Backend Engineer", now); got != 0.5 {
		t.Fatalf("no requirement with no entries: expected 0.5, got %v", got)
	}
}

func TestExperienceScore_Tiers(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	mk := func(years int) []user.Experience {
		start := time.Date(2026-years, time.June, 1, 0, 0, 0, 0, time.UTC)
		return []user.Experience{{Title: "Accountant", StartDate: &start, Current: true}}
	}

	cases := []struct {
		name    string
		entries []user.Experience
		want    float64
	}{
		{"meets requirement", mk(5), 0.7},
		{"80 percent", mk(4), 0.5},
		{"60 percent", mk(3), 0.3},
		{"below 60 percent", mk(1), 0.1},
	}
	for _, tc := range cases {
		got := ExperienceScore(tc.entries, "5+ years", "Backend Engineer", now)
		if got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestExperienceScore_TitleBonusAndCap(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC)

	entries := []user.Experience{{Title: "Senior Software Engineer", StartDate: &start, Current: true}}
	got := ExperienceScore(entries, "3 years", "Platform Engineer", now)
	if got != 1.0 {
		t.Fatalf("expected 0.7 base + 0.3 bonus capped at 1.0, got %v", got)
	}

	noBonus := []user.Experience{{Title: "Accountant", StartDate: &start, Current: true}}
	if got := ExperienceScore(noBonus, "3 years", "Platform Engineer", now); got != 0.7 {
		t.Fatalf("expected 0.7 without title bonus, got %v", got)
	}
}

func TestTitlesResemble(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Backend Engineer", "Engineer", true},
		{"Senior Developer", "Frontend Developer", true}, // shared "developer"
		{"Engineering Manager", "Product Manager", true}, // shared "manager"
		{"Accountant", "Backend Engineer", false},
		{"", "Backend Engineer", false},
	}
	for _, tc := range cases {
		if got := titlesResemble(tc.a, tc.b); got != tc.want {
			t.Fatalf("titlesResemble(%q, %q): expected %v, got %v", tc.a, tc.b, tc.want, got)
		}
	}
}
