// Package advisor turns a match result into actionable career guidance:
// ranked skill gaps, a phased learning roadmap, certification picks, and a
// progression path.
package advisor

import (
	"sort"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	maxGaps = 8
	// Fallback learning estimate for skills the taxonomy has no entry for.
	defaultLearningWeeks = 8
)

// SkillGaps ranks the missing skills worth closing first: critical tier
// before required before preferred, and within a tier by market demand
// then growth. At most maxGaps entries are returned.
func SkillGaps(reg *knowledge.Registry, match *types.MatchResult) []types.SkillGap {
	var gaps []types.SkillGap
	appendTier := func(tier types.RequirementTier, names []string) {
		start := len(gaps)
		for _, name := range names {
			gaps = append(gaps, buildGap(reg, name, tier))
		}
		tierGaps := gaps[start:]
		sort.SliceStable(tierGaps, func(i, j int) bool {
			ri, rj := types.DemandRank(tierGaps[i].Demand), types.DemandRank(tierGaps[j].Demand)
			if ri != rj {
				return ri > rj
			}
			return tierGaps[i].GrowthRate > tierGaps[j].GrowthRate
		})
	}

	appendTier(types.TierCritical, match.MissingCritical)
	appendTier(types.TierRequired, match.MissingRequired)
	appendTier(types.TierPreferred, match.MissingPreferred)

	if len(gaps) > maxGaps {
		gaps = gaps[:maxGaps]
	}
	return gaps
}

func buildGap(reg *knowledge.Registry, name string, tier types.RequirementTier) types.SkillGap {
	gap := types.SkillGap{
		Skill:         name,
		Tier:          tier,
		LearningWeeks: defaultLearningWeeks,
	}
	if skill, ok := reg.Resolve(name); ok {
		gap.Skill = skill.Name
		gap.Demand = skill.Demand
		gap.GrowthRate = skill.GrowthRate
		gap.Resources = skill.Resources
		if skill.LearningWeeks > 0 {
			gap.LearningWeeks = skill.LearningWeeks
		}
	}
	return gap
}
