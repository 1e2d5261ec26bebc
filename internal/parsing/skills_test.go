package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
)

func testRegistry(t *testing.T) *knowledge.Registry {
	t.Helper()
	reg, err := knowledge.Load(nil)
	require.NoError(t, err)
	return reg
}

func TestExtractSkills_CanonicalNames(t *testing.T) {
	reg := testRegistry(t)

	skills := ExtractSkills(reg, "Built services in Python and deployed on AWS with Docker")

	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "AWS")
	assert.Contains(t, skills, "Docker")
}

func TestExtractSkills_AliasesResolveToCanonical(t *testing.T) {
	reg := testRegistry(t)

	skills := ExtractSkills(reg, "Experienced with JS, k8s and postgres")

	assert.Contains(t, skills, "JavaScript")
	assert.Contains(t, skills, "Kubernetes")
	assert.Contains(t, skills, "PostgreSQL")
	assert.NotContains(t, skills, "js")
}

func TestExtractSkills_NoSubstringFalsePositives(t *testing.T) {
	reg := testRegistry(t)

	skills := ExtractSkills(reg, "JavaScript specialist")

	assert.Contains(t, skills, "JavaScript")
	assert.NotContains(t, skills, "Java")
}

func TestExtractSkills_DeduplicatesAcrossAliases(t *testing.T) {
	reg := testRegistry(t)

	skills := ExtractSkills(reg, "Python, python3 and py scripts")

	count := 0
	for _, s := range skills {
		if s == "Python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractSkills_EmptyText(t *testing.T) {
	reg := testRegistry(t)

	assert.Empty(t, ExtractSkills(reg, ""))
}
