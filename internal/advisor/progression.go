package advisor

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ProgressionPath selects the career track whose trigger skills best
// overlap the candidate's, then returns the rungs still ahead of them
// given their experience. With no overlapping track, the fallback
// milestone is returned alone.
func ProgressionPath(reg *knowledge.Registry, skills []string, years int) []types.Milestone {
	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[strings.ToLower(s)] = struct{}{}
	}

	prog := reg.Progression()
	var best *knowledge.ProgressionTrack
	bestOverlap := 0
	for i := range prog.Tracks {
		track := &prog.Tracks[i]
		overlap := 0
		for _, trigger := range track.Triggers {
			if _, ok := have[strings.ToLower(trigger)]; ok {
				overlap++
			}
		}
		if overlap > bestOverlap {
			bestOverlap = overlap
			best = track
		}
	}

	if best == nil {
		return []types.Milestone{prog.Default.Milestone()}
	}

	var path []types.Milestone
	for _, level := range best.Levels {
		if level.MaxYears > years {
			path = append(path, level.Milestone())
		}
	}
	if len(path) == 0 {
		// Already past the track's top rung.
		path = append(path, prog.Default.Milestone())
	}
	return path
}
