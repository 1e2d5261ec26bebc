package parsing

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	criticalMarkers  = []string{"must have", "required", "requirements", "essential"}
	preferredMarkers = []string{"nice to have", "preferred", "bonus", "a plus", "desirable"}
)

// BuildProfileFromPosting derives an ad-hoc job profile from free job
// posting text. Skills mentioned under a requirements heading become
// critical, skills under a preferred heading become preferred, and the
// rest land in the required tier. Experience and education demands are
// read from the full text.
func BuildProfileFromPosting(reg *knowledge.Registry, text string) *types.JobProfile {
	profile := &types.JobProfile{}

	if years := ExtractExperienceYears(text); years != nil {
		profile.MinExperience = *years
	}
	if level := ExtractEducation(text); level != types.EducationNone {
		profile.Education = level.String()
	}

	seen := make(map[string]struct{})
	tier := types.TierRequired
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if hasAnyMarker(lower, preferredMarkers) {
			tier = types.TierPreferred
		} else if hasAnyMarker(lower, criticalMarkers) {
			tier = types.TierCritical
		}

		for _, skill := range ExtractSkills(reg, line) {
			if _, dup := seen[skill]; dup {
				continue
			}
			seen[skill] = struct{}{}
			switch tier {
			case types.TierCritical:
				profile.Critical = append(profile.Critical, skill)
			case types.TierPreferred:
				profile.Preferred = append(profile.Preferred, skill)
			default:
				profile.Required = append(profile.Required, skill)
			}
		}
	}

	// A posting with no requirements heading treats every skill as required;
	// promote them so the profile always has a critical tier to score.
	if len(profile.Critical) == 0 && len(profile.Required) > 0 {
		profile.Critical = profile.Required
		profile.Required = nil
	}
	return profile
}

func hasAnyMarker(line string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}
