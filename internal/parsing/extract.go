package parsing

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Extract runs the full extraction pass over one resume text. Empty or
// whitespace-only input yields an empty profile rather than an error; the
// caller decides how to flag it.
func Extract(reg *knowledge.Registry, text string) *types.ExtractedProfile {
	trimmed := strings.TrimSpace(text)
	profile := &types.ExtractedProfile{
		TextLength: len(trimmed),
	}
	if trimmed == "" {
		return profile
	}

	profile.Skills = ExtractSkills(reg, trimmed)
	profile.ExperienceYears = ExtractExperienceYears(trimmed)
	profile.Education = ExtractEducation(trimmed)
	profile.Contact = ExtractContact(trimmed)
	profile.Sections = ExtractSections(trimmed)
	return profile
}
