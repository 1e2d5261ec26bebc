package ranking

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Readiness component caps: experience 30, skill match 40, education 15,
// technical depth 15.
const (
	readyExperienceMax = 30
	readyMatchMax      = 40
	readyEducationMax  = 15
	readyTechDepthMax  = 15
)

// EvaluateReadiness rates interview readiness for the matched role from
// experience, match strength, education, and breadth of technical skills.
func EvaluateReadiness(reg *knowledge.Registry, profile *types.ExtractedProfile, match *types.MatchResult) types.Readiness {
	var r types.Readiness

	years := profile.Years()
	switch {
	case years >= 5:
		r.Score += 30
		r.Strengths = append(r.Strengths, fmt.Sprintf("%d years of experience", years))
	case years >= 2:
		r.Score += 20
	case years >= 1:
		r.Score += 10
	default:
		r.Concerns = append(r.Concerns, "little or no stated experience")
	}

	switch pct := match.MatchPercent; {
	case pct >= 90:
		r.Score += 40
		r.Strengths = append(r.Strengths, "near-complete skill coverage for the role")
	case pct >= 70:
		r.Score += 30
		r.Strengths = append(r.Strengths, "strong skill coverage for the role")
	case pct >= 50:
		r.Score += 20
	case len(match.Matched) > 0:
		r.Score += 10
		r.Concerns = append(r.Concerns, "large skill gaps for the role")
	default:
		r.Concerns = append(r.Concerns, "no matching skills for the role")
	}
	if len(match.MissingCritical) > 0 {
		r.Concerns = append(r.Concerns, fmt.Sprintf("missing %d critical skills", len(match.MissingCritical)))
	}

	switch profile.Education {
	case types.EducationDoctorate, types.EducationMaster:
		r.Score += 15
		r.Strengths = append(r.Strengths, "advanced degree")
	case types.EducationBachelor:
		r.Score += 10
	}

	tech := 0
	for _, name := range profile.Skills {
		if s, ok := reg.Resolve(name); ok && s.Technical() {
			tech++
		}
	}
	switch {
	case tech >= 10:
		r.Score += 15
		r.Strengths = append(r.Strengths, "deep technical toolbox")
	case tech >= 5:
		r.Score += 10
	case tech >= 1:
		r.Score += 5
	}

	r.Score = clamp(r.Score, 0, 100)
	r.Level = readinessLevel(r.Score)
	return r
}

func readinessLevel(score float64) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 75:
		return "Very Good"
	case score >= 60:
		return "Good"
	default:
		return "Fair"
	}
}
