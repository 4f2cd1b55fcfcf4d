package recommend

import (
	"sort"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/user"
	"talent-match/internal/pkg/similarity"
)

const (
	// Jobs sharing no skills with the user get this fixed floor score instead
	// of the vector math, keeping zero-similarity noise out of the ranking.
	noSharedSkillScore = 0.3

	cosineWeight   = 0.7
	expMatchWeight = 0.3

	savedDepartmentBoost = 0.1
	savedTitleBoost      = 0.1
)

// SavedJob is the slice of a previously saved posting the affinity boost
// looks at.
type SavedJob struct {
	Title      string
	Department string
}

type RankedJob struct {
	Job        job.Posting
	Similarity float64
}

// Rank scores candidate jobs for a user over a shared discrete feature space
// and returns those at or above cutoff, sorted descending. userYears is the
// user's total years of experience; ties keep candidate order.
func Rank(p user.Profile, userYears float64, saved []SavedJob, jobs []job.Posting, cutoff float64) []RankedJob {
	if len(jobs) == 0 {
		return []RankedJob{}
	}

	vocab := BuildVocabulary(p, jobs)
	userVec := EncodeUser(p, vocab)
	userSkills := featureSet(p.Skills)

	savedDepartments := make(map[string]struct{}, len(saved))
	savedTitles := make(map[string]struct{}, len(saved))
	for _, s := range saved {
		if d := normalizeFeature(s.Department); d != "" {
			savedDepartments[d] = struct{}{}
		}
		if t := normalizeFeature(s.Title); t != "" {
			savedTitles[t] = struct{}{}
		}
	}

	out := make([]RankedJob, 0, len(jobs))
	for _, j := range jobs {
		score := scoreJob(j, userVec, userSkills, userYears, vocab)

		if _, ok := savedDepartments[normalizeFeature(j.Department)]; ok {
			score += savedDepartmentBoost
		}
		if _, ok := savedTitles[normalizeFeature(j.Title)]; ok {
			score += savedTitleBoost
		}
		if score > 1 {
			score = 1
		}

		if score >= cutoff {
			out = append(out, RankedJob{Job: j, Similarity: score})
		}
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].Similarity > out[k].Similarity
	})
	return out
}

func scoreJob(j job.Posting, userVec map[string]float64, userSkills map[string]struct{}, userYears float64, vocab map[string]struct{}) float64 {
	if !sharesSkill(userSkills, j.Skills) {
		return noSharedSkillScore
	}

	jobVec := EncodeJob(j, vocab)
	cos := similarity.CosineSparse(userVec, jobVec)

	expMatch := 0.0
	if userYears >= RequiredYearsForLevel(j.ExperienceLevel) {
		expMatch = 1.0
	}

	return cos*cosineWeight + expMatch*expMatchWeight
}

func sharesSkill(userSkills map[string]struct{}, jobSkills []string) bool {
	for _, s := range jobSkills {
		if _, ok := userSkills[normalizeFeature(s)]; ok {
			return true
		}
	}
	return false
}

func featureSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = normalizeFeature(v)
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}
