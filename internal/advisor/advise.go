package advisor

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultTimeframeMonths is the roadmap horizon used when the caller does
// not specify one.
const DefaultTimeframeMonths = 6

const maxSuggestions = 5

// Advise assembles the full guidance report for one scored candidate.
func Advise(reg *knowledge.Registry, profile *types.ExtractedProfile, match *types.MatchResult, timeframeMonths int) *types.AdvisorReport {
	if timeframeMonths <= 0 {
		timeframeMonths = DefaultTimeframeMonths
	}

	gaps := SkillGaps(reg, match)
	report := &types.AdvisorReport{
		Gaps:           gaps,
		Roadmap:        BuildRoadmap(gaps, timeframeMonths),
		Certifications: RecommendCerts(reg, gaps, match.Role),
		Progression:    ProgressionPath(reg, profile.Skills, profile.Years()),
	}

	if len(match.MissingCritical) > 0 {
		report.Suggestions = append(report.Suggestions,
			fmt.Sprintf("close the critical gaps first: %s", strings.Join(match.MissingCritical, ", ")))
	}
	report.Suggestions = append(report.Suggestions, match.Quality.Issues...)
	if len(report.Suggestions) > maxSuggestions {
		report.Suggestions = report.Suggestions[:maxSuggestions]
	}
	return report
}
