package recommend

import (
	"strings"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/user"
)

// Feature weights for the sparse job encoding.
const (
	jobSkillWeight      = 1.5
	jobDepartmentWeight = 1.0
	jobTitleWeight      = 0.5
	jobLocationWeight   = 0.3
	jobTypeWeight       = 0.2

	userFeatureWeight = 1.0
	userCityWeight    = 0.7
)

// BuildVocabulary collects the discrete feature space shared by the user and
// the candidate jobs. It is rebuilt per request on purpose: the space depends
// on the live candidate set.
func BuildVocabulary(p user.Profile, jobs []job.Posting) map[string]struct{} {
	vocab := make(map[string]struct{})
	add := func(features ...string) {
		for _, f := range features {
			f = normalizeFeature(f)
			if f == "" {
				continue
			}
			vocab[f] = struct{}{}
		}
	}

	add(p.Skills...)
	add(p.Sectors...)
	add(p.Designation, p.City)

	for _, j := range jobs {
		add(j.Skills...)
		add(j.Department, j.Title, j.Location, j.EmploymentType, j.ExperienceLevel)
	}
	return vocab
}

// EncodeUser maps the profile onto the vocabulary: 1.0 for skills, sectors and
// designation, 0.7 for the city.
func EncodeUser(p user.Profile, vocab map[string]struct{}) map[string]float64 {
	vec := make(map[string]float64)
	set := func(f string, w float64) {
		f = normalizeFeature(f)
		if f == "" {
			return
		}
		if _, ok := vocab[f]; !ok {
			return
		}
		if w > vec[f] {
			vec[f] = w
		}
	}

	for _, s := range p.Skills {
		set(s, userFeatureWeight)
	}
	for _, s := range p.Sectors {
		set(s, userFeatureWeight)
	}
	set(p.Designation, userFeatureWeight)
	set(p.City, userCityWeight)
	return vec
}

// EncodeJob maps a posting onto the vocabulary with differentiated weights so
// that skill overlap dominates department, title, location and type overlap.
func EncodeJob(j job.Posting, vocab map[string]struct{}) map[string]float64 {
	vec := make(map[string]float64)
	set := func(f string, w float64) {
		f = normalizeFeature(f)
		if f == "" {
			return
		}
		if _, ok := vocab[f]; !ok {
			return
		}
		if w > vec[f] {
			vec[f] = w
		}
	}

	for _, s := range j.Skills {
		set(s, jobSkillWeight)
	}
	set(j.Department, jobDepartmentWeight)
	set(j.Title, jobTitleWeight)
	set(j.Location, jobLocationWeight)
	set(j.EmploymentType, jobTypeWeight)
	return vec
}

// experienceLevelYears maps a job's experience-level keyword to a numeric
// requirement in years. Unrecognized levels require nothing.
var experienceLevelYears = []struct {
	keyword string
	years   float64
}{
	{"executive", 10},
	{"senior", 5},
	{"mid", 3},
	{"junior", 1},
	{"entry", 0},
}

func RequiredYearsForLevel(level string) float64 {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return 0
	}
	for _, lv := range experienceLevelYears {
		if strings.Contains(level, lv.keyword) {
			return lv.years
		}
	}
	return 0
}

func normalizeFeature(f string) string {
	return strings.ToLower(strings.TrimSpace(f))
}
