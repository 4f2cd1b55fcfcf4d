package semantic

import (
	"strings"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/user"
)

// descriptionExcerptLen caps how much of a job description feeds the
// embedding; sentence models truncate long inputs anyway and the head of a
// posting carries most of the signal.
const descriptionExcerptLen = 500

// ProfileText synthesizes a single labeled text blob for an applicant.
// Absent segments are omitted entirely so empty fields add no noise.
func ProfileText(p user.Profile) string {
	segments := make([]string, 0, 6)
	add := func(label, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		segments = append(segments, label+": "+value)
	}

	add("Skills", joinPresent(p.Skills))
	add("Designation", p.Designation)
	add("Sectors", joinPresent(p.Sectors))
	add("City", p.City)

	titles := make([]string, 0, len(p.Experience))
	for _, e := range p.Experience {
		titles = append(titles, e.Title)
	}
	add("Experience", joinPresent(titles))

	degrees := make([]string, 0, len(p.Education))
	for _, e := range p.Education {
		degrees = append(degrees, e.Degree)
	}
	add("Education", joinPresent(degrees))

	return strings.Join(segments, ". ")
}

// JobText synthesizes the analogous blob for a posting, with the description
// trimmed to a fixed excerpt.
func JobText(j job.Posting) string {
	segments := make([]string, 0, 7)
	add := func(label, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		segments = append(segments, label+": "+value)
	}

	add("Title", j.Title)
	add("Skills", joinPresent(j.Skills))
	add("Department", j.Department)
	add("Description", excerpt(j.Description, descriptionExcerptLen))
	add("Location", j.Location)
	add("Type", j.EmploymentType)
	add("Experience", j.ExperienceLevel)

	return strings.Join(segments, ". ")
}

func joinPresent(values []string) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return strings.Join(out, ", ")
}

func excerpt(s string, limit int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
