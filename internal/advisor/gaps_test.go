package advisor

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

func TestSkillGaps_TierOrderBeforeDemand(t *testing.T) {
	reg := testRegistry(t)
	match := &types.MatchResult{
		MissingCritical: []string{"SQL", "Kubernetes"},
		MissingRequired: []string{"Terraform"},
	}

	gaps := SkillGaps(reg, match)
	require.Len(t, gaps, 3)

	// Both critical gaps come before the required one; Kubernetes leads SQL
	// on growth within the same demand rank.
	assert.Equal(t, "Kubernetes", gaps[0].Skill)
	assert.Equal(t, "SQL", gaps[1].Skill)
	assert.Equal(t, "Terraform", gaps[2].Skill)
	assert.Equal(t, types.TierCritical, gaps[0].Tier)
	assert.Equal(t, types.TierRequired, gaps[2].Tier)
}

func TestSkillGaps_CapsAtEight(t *testing.T) {
	reg := testRegistry(t)
	match := &types.MatchResult{
		MissingCritical: []string{"SQL", "Kubernetes", "Docker", "AWS"},
		MissingRequired: []string{"Terraform", "Linux", "Git", "React", "Kafka", "Redis"},
	}

	gaps := SkillGaps(reg, match)

	assert.Len(t, gaps, 8)
}

func TestSkillGaps_UnknownSkillGetsDefaults(t *testing.T) {
	reg := testRegistry(t)
	match := &types.MatchResult{MissingCritical: []string{"Quantum Basket Weaving"}}

	gaps := SkillGaps(reg, match)
	require.Len(t, gaps, 1)

	assert.Equal(t, "Quantum Basket Weaving", gaps[0].Skill)
	assert.Equal(t, defaultLearningWeeks, gaps[0].LearningWeeks)
	assert.Empty(t, gaps[0].Demand)
}

func TestSkillGaps_NoMissingSkills(t *testing.T) {
	reg := testRegistry(t)

	assert.Empty(t, SkillGaps(reg, &types.MatchResult{}))
}
