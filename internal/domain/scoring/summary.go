package scoring

import (
	"time"

	"talent-match/internal/domain/user"
)

// Summary is the human-readable classification of a Result for employer
// review screens.
type Summary struct {
	Strengths       []string
	Concerns        []string
	ExperienceYears float64
	TopSkills       []string
	Role            string
}

// BuildSummary classifies each sub-score against fixed thresholds into
// strengths and concerns. Pure; recomputed per request alongside the Result.
func BuildSummary(res Result, p *user.Profile, now time.Time) Summary {
	s := Summary{
		Strengths: make([]string, 0, 4),
		Concerns:  make([]string, 0, 4),
	}
	if p != nil {
		s.Role = p.Designation
		s.ExperienceYears = TotalExperienceYears(p.Experience, now)
		s.TopSkills = topSkills(p.Skills, 5)
	}

	if v, ok := res.Breakdown[CriterionSkills]; ok {
		if v > 0.8 {
			s.Strengths = append(s.Strengths, "Strong skill match with the role requirements")
		} else if v < 0.3 {
			s.Concerns = append(s.Concerns, "Few of the required skills are present")
		}
	}
	if v, ok := res.Breakdown[CriterionExperience]; ok {
		if v > 0.7 {
			s.Strengths = append(s.Strengths, "Experience meets or exceeds the requirement")
		} else if v < 0.3 {
			s.Concerns = append(s.Concerns, "Experience falls short of the requirement")
		}
	}
	if v, ok := res.Breakdown[CriterionEducation]; ok && v > 0.8 {
		s.Strengths = append(s.Strengths, "Relevant educational background")
	}
	if v, ok := res.Breakdown[CriterionLocation]; ok {
		if v > 0.8 {
			s.Strengths = append(s.Strengths, "Located in or near the job location")
		} else if v < 0.3 {
			s.Concerns = append(s.Concerns, "Location differs from the job location")
		}
	}
	if v, ok := res.Breakdown[CriterionProjects]; ok && v > 0.6 {
		s.Strengths = append(s.Strengths, "Project work covers the required skills")
	}
	if v, ok := res.Breakdown[CriterionCertifications]; ok && v > 0.6 {
		s.Strengths = append(s.Strengths, "Certifications cover the required skills")
	}

	return s
}

func topSkills(skills []string, limit int) []string {
	out := make([]string, 0, limit)
	for _, sk := range skills {
		if sk == "" {
			continue
		}
		out = append(out, sk)
		if len(out) >= limit {
			break
		}
	}
	return out
}
