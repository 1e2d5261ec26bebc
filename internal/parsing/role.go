package parsing

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// roleThreshold is the minimum fraction of a profile's critical and
// required skills a candidate must cover before the role is considered
// detected.
const roleThreshold = 0.30

// DetectRole picks the registry profile whose critical and required skills
// best overlap the candidate's. Ties keep the earlier profile in registry
// order, so detection is deterministic. Returns false when no profile
// clears the threshold.
func DetectRole(reg *knowledge.Registry, skills []string) (*types.JobProfile, bool) {
	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[strings.ToLower(s)] = struct{}{}
	}

	var best *types.JobProfile
	bestRatio := 0.0
	profiles := reg.Profiles()
	for i := range profiles {
		p := &profiles[i]
		wanted := p.AllRequired()
		if len(wanted) == 0 {
			continue
		}
		overlap := 0
		for _, skill := range wanted {
			if _, ok := have[strings.ToLower(skill)]; ok {
				overlap++
			}
		}
		ratio := float64(overlap) / float64(len(wanted))
		if ratio > bestRatio {
			bestRatio = ratio
			best = p
		}
	}

	if best == nil || bestRatio < roleThreshold {
		return nil, false
	}
	return best, true
}
