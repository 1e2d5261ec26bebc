// Package ranking scores an extracted resume profile against a job
// profile: tier- and importance-weighted skill match, the quality rubric,
// the screening score, and interview readiness. All scores floor at zero
// and cap at their rubric maximum.
package ranking

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Match computes the weighted skill match between a candidate and a job.
// Each required skill contributes its tier weight times its taxonomy
// importance; the percentage is earned weight over total weight. A job
// with no skill requirements scores zero.
func Match(reg *knowledge.Registry, candidate []string, job *types.JobProfile) *types.MatchResult {
	have := make(map[string]struct{}, len(candidate))
	for _, s := range candidate {
		have[strings.ToLower(s)] = struct{}{}
	}

	result := &types.MatchResult{Role: job.Role}
	totalWeight := 0.0
	earnedWeight := 0.0

	for _, tier := range []types.RequirementTier{types.TierCritical, types.TierRequired, types.TierPreferred} {
		tierWeight := types.TierWeight(tier)
		for _, skill := range job.SkillsForTier(tier) {
			weight := tierWeight * reg.Importance(skill)
			totalWeight += weight
			if _, ok := have[strings.ToLower(skill)]; ok {
				earnedWeight += weight
				result.Matched = append(result.Matched, skill)
				continue
			}
			switch tier {
			case types.TierCritical:
				result.MissingCritical = append(result.MissingCritical, skill)
			case types.TierRequired:
				result.MissingRequired = append(result.MissingRequired, skill)
			case types.TierPreferred:
				result.MissingPreferred = append(result.MissingPreferred, skill)
			}
		}
	}

	if totalWeight > 0 {
		result.MatchPercent = clamp(earnedWeight/totalWeight*100, 0, 100)
	}
	return result
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
