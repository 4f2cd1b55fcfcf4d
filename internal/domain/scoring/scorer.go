package scoring

import (
	"math"
	"strings"
	"time"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/user"
)

type Criterion string

const (
	CriterionSkills         Criterion = "skills"
	CriterionExperience     Criterion = "experience"
	CriterionEducation      Criterion = "education"
	CriterionLocation       Criterion = "location"
	CriterionProjects       Criterion = "projects"
	CriterionCertifications Criterion = "certifications"
)

// Weights is the fixed criterion weight table. It must sum to exactly 1.0 so
// the weighted total stays in [0,1].
var Weights = map[Criterion]float64{
	CriterionSkills:         0.40,
	CriterionExperience:     0.25,
	CriterionEducation:      0.15,
	CriterionLocation:       0.10,
	CriterionProjects:       0.05,
	CriterionCertifications: 0.05,
}

// Result is transient: produced fresh on every call, never stored.
type Result struct {
	Total     float64
	Breakdown map[Criterion]float64
	Weights   map[Criterion]float64
}

// Score compares one applicant profile against one job posting. A nil profile
// yields total 0 with an empty breakdown; missing optional fields degrade the
// affected sub-scores toward neutral or zero.
func Score(p *user.Profile, j job.Posting, now time.Time) Result {
	if p == nil {
		return Result{Total: 0, Breakdown: map[Criterion]float64{}, Weights: Weights}
	}

	breakdown := map[Criterion]float64{
		CriterionSkills:         SkillsScore(p.Skills, j.Skills),
		CriterionExperience:     ExperienceScore(p.Experience, experienceRequirement(j), j.Title, now),
		CriterionEducation:      EducationScore(p.Education, j.Requirements),
		CriterionLocation:       LocationScore(p.City, j.Location),
		CriterionProjects:       ProjectsScore(p.Projects, j.Skills),
		CriterionCertifications: CertificatesScore(p.Certificates, j.Skills),
	}

	total := 0.0
	for c, s := range breakdown {
		total += Weights[c] * s
	}

	return Result{Total: clamp01(total), Breakdown: breakdown, Weights: Weights}
}

// SkillsScore matches applicant skills against required skills by trimmed,
// case-insensitive substring containment in either direction. Coverage is the
// fraction of required skills matched; a breadth bonus of up to 1.5x rewards
// applicants whose skill list outsizes the requirement. Short skill names can
// substring-match unrelated skills ("C" vs "C++"); that imprecision is part of
// the scoring contract and is kept as is.
func SkillsScore(applicantSkills, requiredSkills []string) float64 {
	applicant := normalizeSkills(applicantSkills)
	required := normalizeSkills(requiredSkills)
	if len(applicant) == 0 || len(required) == 0 {
		return 0
	}

	matched := 0
	for _, req := range required {
		for _, have := range applicant {
			if skillMatches(have, req) {
				matched++
				break
			}
		}
	}

	coverage := float64(matched) / float64(len(required))
	bonus := math.Min(float64(len(applicant))/float64(len(required))*1.5, 1.5)
	return math.Min(coverage*bonus, 1)
}

// EducationScore gives full credit when any degree overlaps the job's
// requirements text or carries a generically relevant keyword, a 0.3 baseline
// when the applicant lists no education, and 0.5 when the job states no
// requirements.
func EducationScore(education []user.Education, requirements string) float64 {
	if len(education) == 0 {
		return 0.3
	}
	reqText := strings.ToLower(strings.TrimSpace(requirements))
	if reqText == "" {
		return 0.5
	}

	for _, e := range education {
		degree := strings.ToLower(strings.TrimSpace(e.Degree))
		if degree == "" {
			continue
		}
		if strings.Contains(reqText, degree) {
			return 1.0
		}
		for _, kw := range relevantDegreeKeywords {
			if strings.Contains(degree, kw) {
				return 1.0
			}
		}
	}
	return 0.5
}

var relevantDegreeKeywords = []string{
	"computer", "engineering", "science", "technology", "business", "management",
}

// LocationScore: 0.5 when either side is missing, 1.0 on an exact
// case-insensitive match, 0.8 when one contains the other, 0.2 otherwise.
func LocationScore(applicantCity, jobLocation string) float64 {
	a := strings.ToLower(strings.TrimSpace(applicantCity))
	b := strings.ToLower(strings.TrimSpace(jobLocation))
	if a == "" || b == "" {
		return 0.5
	}
	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.8
	}
	return 0.2
}

// ProjectsScore is the fraction of the job's required skills found anywhere in
// the applicant's project text.
func ProjectsScore(projects []user.Project, requiredSkills []string) float64 {
	if len(projects) == 0 {
		return 0
	}
	var sb strings.Builder
	for _, p := range projects {
		sb.WriteString(p.Title)
		sb.WriteString(" ")
		sb.WriteString(p.Description)
		sb.WriteString(" ")
	}
	return skillCoverageInText(sb.String(), requiredSkills)
}

// CertificatesScore is the fraction of the job's required skills found in the
// concatenated certificate title and issuer text.
func CertificatesScore(certs []user.Certificate, requiredSkills []string) float64 {
	if len(certs) == 0 {
		return 0
	}
	var sb strings.Builder
	for _, c := range certs {
		sb.WriteString(c.Title)
		sb.WriteString(" ")
		sb.WriteString(c.Issuer)
		sb.WriteString(" ")
	}
	return skillCoverageInText(sb.String(), requiredSkills)
}

func skillCoverageInText(text string, requiredSkills []string) float64 {
	required := normalizeSkills(requiredSkills)
	if len(required) == 0 {
		return 0
	}
	haystack := strings.ToLower(text)

	found := 0
	for _, req := range required {
		if strings.Contains(haystack, req) {
			found++
		}
	}
	return math.Min(float64(found)/float64(len(required)), 1)
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// experienceRequirement selects the text the years requirement is parsed
// from. The experience level field is authoritative ("3+ years", "senior");
// when it carries no digits the requirements text is scanned as a fallback.
func experienceRequirement(j job.Posting) string {
	if firstIntRe.MatchString(j.ExperienceLevel) {
		return j.ExperienceLevel
	}
	return j.Requirements
}

func skillMatches(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
