package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func testRegistry(t *testing.T) *knowledge.Registry {
	t.Helper()
	reg, err := knowledge.Load(nil)
	require.NoError(t, err)
	return reg
}

func TestMatch_FullCriticalCoverageScoresHigh(t *testing.T) {
	reg := testRegistry(t)
	job := &types.JobProfile{
		Role:          "Senior Python/AWS Developer",
		Critical:      []string{"Python", "AWS"},
		MinExperience: 5,
	}

	result := Match(reg, []string{"Python", "AWS"}, job)

	assert.Greater(t, result.MatchPercent, 80.0)
	assert.Empty(t, result.MissingCritical)
	assert.ElementsMatch(t, []string{"Python", "AWS"}, result.Matched)
}

func TestMatch_TierAndImportanceWeighting(t *testing.T) {
	reg := testRegistry(t)
	job, ok := reg.Profile("Senior Python Developer")
	require.True(t, ok)

	result := Match(reg, []string{"Python", "AWS", "SQL", "Docker"}, job)

	// Critical Python (3x1.5) + AWS (3x1.6), required SQL (2x1.5) + Docker
	// (2x1.5) earned; required REST API + System Design and all preferred
	// skills missed.
	assert.InDelta(t, 57.74, result.MatchPercent, 0.1)
	assert.Empty(t, result.MissingCritical)
	assert.Contains(t, result.MissingRequired, "REST API")
	assert.Contains(t, result.MissingRequired, "System Design")
	assert.Len(t, result.MissingPreferred, 4)
}

func TestMatch_MissingCriticalOutweighsMissingPreferred(t *testing.T) {
	reg := testRegistry(t)
	job := &types.JobProfile{
		Role:      "x",
		Critical:  []string{"Python"},
		Preferred: []string{"Terraform"},
	}

	missingCritical := Match(reg, []string{"Terraform"}, job)
	missingPreferred := Match(reg, []string{"Python"}, job)

	assert.Greater(t, missingPreferred.MatchPercent, missingCritical.MatchPercent)
}

func TestMatch_NoRequirements(t *testing.T) {
	reg := testRegistry(t)
	job := &types.JobProfile{Role: "x"}

	result := Match(reg, []string{"Python"}, job)

	assert.Zero(t, result.MatchPercent)
	assert.Empty(t, result.Matched)
}

func TestMatch_NoSkills(t *testing.T) {
	reg := testRegistry(t)
	job := &types.JobProfile{Role: "x", Critical: []string{"Python"}}

	result := Match(reg, nil, job)

	assert.Zero(t, result.MatchPercent)
	assert.Equal(t, []string{"Python"}, result.MissingCritical)
}

func TestMatch_ScoreNeverDropsAsSkillsAreAdded(t *testing.T) {
	reg := testRegistry(t)
	job, ok := reg.Profile("Senior Python Developer")
	require.True(t, ok)

	var wanted []string
	wanted = append(wanted, job.Critical...)
	wanted = append(wanted, job.Required...)
	wanted = append(wanted, job.Preferred...)

	var candidate []string
	prev := Match(reg, candidate, job).MatchPercent
	for _, skill := range wanted {
		candidate = append(candidate, skill)
		score := Match(reg, candidate, job).MatchPercent
		assert.GreaterOrEqual(t, score, prev, "adding %q lowered the score", skill)
		prev = score
	}
	assert.InDelta(t, 100.0, prev, 0.001)

	// Skills the job never asked for change nothing.
	withExtra := Match(reg, append(candidate, "Haskell"), job).MatchPercent
	assert.InDelta(t, prev, withExtra, 0.001)
}

func TestMatch_CaseInsensitiveSkillNames(t *testing.T) {
	reg := testRegistry(t)
	job := &types.JobProfile{Role: "x", Critical: []string{"Python"}}

	result := Match(reg, []string{"python"}, job)

	assert.InDelta(t, 100.0, result.MatchPercent, 0.001)
}
