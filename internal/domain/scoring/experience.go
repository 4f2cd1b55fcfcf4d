package scoring

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"talent-match/internal/domain/user"
)

var firstIntRe = regexp.MustCompile(`\d+`)

// RequiredYears extracts the first integer from a free-text experience
// requirement ("3+ years", "minimum 5 yrs"). Returns 0 when none is found.
func RequiredYears(text string) int {
	m := firstIntRe.FindString(text)
	if m == "" {
		return 0
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return v
}

// TotalExperienceYears sums, over all entries with a parsable start date, the
// month difference between start and end (or now for ongoing roles), floored
// at zero per entry. Entries without a usable end and not marked current count
// as zero duration. Extending any entry's end date never decreases the total.
func TotalExperienceYears(entries []user.Experience, now time.Time) float64 {
	totalMonths := 0
	for _, e := range entries {
		if e.StartDate == nil {
			continue
		}
		var end time.Time
		switch {
		case e.Current:
			end = now
		case e.EndDate != nil:
			end = *e.EndDate
		default:
			continue
		}
		m := monthsBetween(*e.StartDate, end)
		if m > 0 {
			totalMonths += m
		}
	}
	return float64(totalMonths) / 12.0
}

func monthsBetween(start, end time.Time) int {
	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	return years*12 + months
}

// ExperienceScore awards tiered base credit for total years against the job's
// stated requirement, plus a flat bonus when any past role title resembles the
// job title, capped at 1. An applicant with no experience entries scores 0
// against a job that requires experience and 0.5 (neutral) otherwise.
func ExperienceScore(entries []user.Experience, requirementText, jobTitle string, now time.Time) float64 {
	required := RequiredYears(requirementText)

	if len(entries) == 0 {
		if required > 0 {
			return 0
		}
		return 0.5
	}

	total := TotalExperienceYears(entries, now)
	req := float64(required)

	base := 0.0
	switch {
	case total >= req:
		base = 0.7
	case total >= 0.8*req:
		base = 0.5
	case total >= 0.6*req:
		base = 0.3
	case total > 0:
		base = 0.1
	}

	for _, e := range entries {
		if titlesResemble(e.Title, jobTitle) {
			base += 0.3
			break
		}
	}

	return math.Min(base, 1)
}

// pairedTitleKeywords fuzzy-link titles that share a role family even when
// neither string contains the other ("Backend Developer" vs "Software
// Development Engineer").
var pairedTitleKeywords = []string{"developer", "engineer", "manager"}

func titlesResemble(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	for _, kw := range pairedTitleKeywords {
		if strings.Contains(a, kw) && strings.Contains(b, kw) {
			return true
		}
	}
	return false
}
