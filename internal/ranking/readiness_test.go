package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestEvaluateReadiness_StrongCandidate(t *testing.T) {
	reg := testRegistry(t)
	profile := strongProfile()
	match := &types.MatchResult{
		MatchPercent: 95,
		Matched:      []string{"Python", "AWS"},
	}

	r := EvaluateReadiness(reg, profile, match)

	// 30 experience + 40 match + 15 education + 15 tech depth.
	assert.InDelta(t, 100.0, r.Score, 0.001)
	assert.Equal(t, "Excellent", r.Level)
	assert.NotEmpty(t, r.Strengths)
	assert.Empty(t, r.Concerns)
}

func TestEvaluateReadiness_WeakCandidate(t *testing.T) {
	reg := testRegistry(t)
	profile := &types.ExtractedProfile{}
	match := &types.MatchResult{MissingCritical: []string{"Python"}}

	r := EvaluateReadiness(reg, profile, match)

	assert.Equal(t, 0.0, r.Score)
	assert.Equal(t, "Fair", r.Level)
	assert.NotEmpty(t, r.Concerns)
}

func TestEvaluateReadiness_Levels(t *testing.T) {
	assert.Equal(t, "Excellent", readinessLevel(85))
	assert.Equal(t, "Very Good", readinessLevel(75))
	assert.Equal(t, "Good", readinessLevel(60))
	assert.Equal(t, "Fair", readinessLevel(59))
}

func TestEvaluateReadiness_TechDepthCountsTechnicalOnly(t *testing.T) {
	reg := testRegistry(t)
	soft := &types.ExtractedProfile{
		Skills:          []string{"Communication", "Leadership", "Teamwork", "Mentoring", "Creativity"},
		ExperienceYears: intPtr(5),
	}
	match := &types.MatchResult{MatchPercent: 95, Matched: []string{"Communication"}}

	r := EvaluateReadiness(reg, soft, match)

	// 30 experience + 40 match, no education, no technical depth.
	assert.InDelta(t, 70.0, r.Score, 0.001)
}
