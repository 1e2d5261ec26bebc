package advisor

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// Phases cover roughly three months of learning each.
	phaseWeeks    = 12
	weeksPerMonth = 4
)

// BuildRoadmap packs the ranked gaps into learning phases within the
// requested timeframe. Gap order is preserved, so higher-priority skills
// land in earlier phases. Skills that do not fit the timeframe go to
// Beyond instead of being dropped. A single skill longer than phaseWeeks
// gets a phase to itself that runs past the nominal phase length; only
// the overall timeframe budget is a hard limit.
func BuildRoadmap(gaps []types.SkillGap, timeframeMonths int) *types.Roadmap {
	if timeframeMonths <= 0 || len(gaps) == 0 {
		return nil
	}

	roadmap := &types.Roadmap{TimeframeMonths: timeframeMonths}
	budget := timeframeMonths * weeksPerMonth
	spent := 0

	var current *types.RoadmapPhase
	for _, gap := range gaps {
		if spent+gap.LearningWeeks > budget {
			roadmap.Beyond = append(roadmap.Beyond, gap)
			continue
		}
		if current == nil || current.Weeks+gap.LearningWeeks > phaseWeeks {
			roadmap.Phases = append(roadmap.Phases, types.RoadmapPhase{
				Name: fmt.Sprintf("Phase %d", len(roadmap.Phases)+1),
			})
			current = &roadmap.Phases[len(roadmap.Phases)-1]
		}
		current.Skills = append(current.Skills, gap)
		current.Weeks += gap.LearningWeeks
		spent += gap.LearningWeeks
	}
	return roadmap
}
