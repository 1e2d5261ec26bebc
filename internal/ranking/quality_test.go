package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func strongProfile() *types.ExtractedProfile {
	return &types.ExtractedProfile{
		Skills: []string{
			"Python", "AWS", "Docker", "Kubernetes", "SQL", "Git",
			"Terraform", "Linux", "CI/CD", "React", "Go", "Kafka",
		},
		ExperienceYears: intPtr(6),
		Education:       types.EducationMaster,
		Contact: types.ContactInfo{
			Email:       strPtr("a@b.com"),
			Phone:       strPtr("555-123-4567"),
			ProfileLink: strPtr("github.com/ab"),
		},
		Sections:   []string{"experience", "education", "skills"},
		TextLength: 900,
	}
}

// Eight distinct action verbs and five quantified figures.
const strongText = `Led the platform team. Built pipelines. Created tooling.
Designed the architecture. Implemented rollouts. Launched three products.
Improved latency by 40%. Reduced costs by 30%, saving $50,000 and $20,000
while making deploys 3x faster.`

func TestEvaluateQuality_PerfectScore(t *testing.T) {
	report := EvaluateQuality(strongProfile(), strongText)

	assert.InDelta(t, 100.0, report.Total, 0.001)
	assert.Len(t, report.Breakdown, 8)
	assert.Empty(t, report.Issues)
}

func TestEvaluateQuality_CriteriaSumToTotal(t *testing.T) {
	report := EvaluateQuality(strongProfile(), strongText)

	sum := 0.0
	maxSum := 0.0
	for _, c := range report.Breakdown {
		sum += c.Points
		maxSum += c.Max
	}
	assert.InDelta(t, report.Total, sum, 0.001)
	assert.InDelta(t, 100.0, maxSum, 0.001)
}

func TestEvaluateQuality_EmptyTextScoresZero(t *testing.T) {
	report := EvaluateQuality(&types.ExtractedProfile{}, "")

	assert.Equal(t, 0.0, report.Total)
	assert.Len(t, report.Breakdown, 8)
	for name, c := range report.Breakdown {
		assert.Equal(t, 0.0, c.Points, name)
	}
}

func TestEvaluateQuality_WeakResumeCollectsIssues(t *testing.T) {
	profile := &types.ExtractedProfile{TextLength: 50}
	report := EvaluateQuality(profile, "short note")

	assert.Less(t, report.Total, 30.0)
	assert.NotEmpty(t, report.Issues)
	assert.Equal(t, 0.0, report.Breakdown["experience"].Points)
	assert.Equal(t, 0.0, report.Breakdown["education"].Points)
	assert.Equal(t, 0.0, report.Breakdown["contact"].Points)
}

func TestEvaluateQuality_MissingExperienceIsZeroNotEntry(t *testing.T) {
	withZero := strongProfile()
	withZero.ExperienceYears = intPtr(0)
	withNil := strongProfile()
	withNil.ExperienceYears = nil

	zeroReport := EvaluateQuality(withZero, strongText)
	nilReport := EvaluateQuality(withNil, strongText)

	assert.Equal(t, 5.0, zeroReport.Breakdown["experience"].Points)
	assert.Equal(t, 0.0, nilReport.Breakdown["experience"].Points)
}
