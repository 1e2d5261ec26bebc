package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildProfileFromPosting_TiersFromHeadings(t *testing.T) {
	reg := testRegistry(t)

	posting := `Senior Backend Engineer

Requirements:
- Python and AWS
- 5+ years of experience

Nice to have:
- Kubernetes
`
	profile := BuildProfileFromPosting(reg, posting)

	assert.Contains(t, profile.Critical, "Python")
	assert.Contains(t, profile.Critical, "AWS")
	assert.Contains(t, profile.Preferred, "Kubernetes")
	assert.Equal(t, 5, profile.MinExperience)
}

func TestBuildProfileFromPosting_NoHeadingsPromotesToCritical(t *testing.T) {
	reg := testRegistry(t)

	profile := BuildProfileFromPosting(reg, "Looking for a Python and SQL developer")

	assert.Contains(t, profile.Critical, "Python")
	assert.Contains(t, profile.Critical, "SQL")
	assert.Empty(t, profile.Required)
}

func TestBuildProfileFromPosting_EducationDemand(t *testing.T) {
	reg := testRegistry(t)

	profile := BuildProfileFromPosting(reg, "Requirements: Python. Master's degree required.")

	assert.Equal(t, "master", profile.Education)
}

func TestBuildProfileFromPosting_SkillDeduplication(t *testing.T) {
	reg := testRegistry(t)

	posting := "Requirements:\nPython\nMore Python and python3"
	profile := BuildProfileFromPosting(reg, posting)

	count := 0
	for _, s := range profile.Critical {
		if s == "Python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
