package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestAdvise_FullReport(t *testing.T) {
	reg := testRegistry(t)
	profile := &types.ExtractedProfile{
		Skills:          []string{"Python", "SQL"},
		ExperienceYears: func() *int { n := 3; return &n }(),
	}
	match := &types.MatchResult{
		Role:            "Senior Python Developer",
		Matched:         []string{"Python", "SQL"},
		MissingCritical: []string{"AWS"},
		MissingRequired: []string{"Docker"},
		Quality: types.QualityReport{
			Issues: []string{"add an education section with your degree"},
		},
	}

	report := Advise(reg, profile, match, 6)
	require.NotNil(t, report)

	assert.NotEmpty(t, report.Gaps)
	assert.Equal(t, "AWS", report.Gaps[0].Skill)
	require.NotNil(t, report.Roadmap)
	assert.Equal(t, 6, report.Roadmap.TimeframeMonths)
	assert.NotEmpty(t, report.Certifications)
	assert.NotEmpty(t, report.Progression)

	require.NotEmpty(t, report.Suggestions)
	assert.Contains(t, report.Suggestions[0], "AWS")
	assert.Contains(t, report.Suggestions, "add an education section with your degree")
}

func TestAdvise_DefaultTimeframe(t *testing.T) {
	reg := testRegistry(t)
	match := &types.MatchResult{MissingCritical: []string{"AWS"}}

	report := Advise(reg, &types.ExtractedProfile{}, match, 0)

	require.NotNil(t, report.Roadmap)
	assert.Equal(t, DefaultTimeframeMonths, report.Roadmap.TimeframeMonths)
}
