package analyzer

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultBatchWorkers bounds batch concurrency when the caller passes
// zero.
const DefaultBatchWorkers = 4

// Ranked is one batch entry with its rank position, best candidate first.
type Ranked struct {
	Rank     int             `json:"rank"`
	Analysis *types.Analysis `json:"analysis"`
}

// AnalyzeBatch scores every request concurrently and returns the analyses
// ranked by screening score, highest first. Ties keep input order, so
// ranking is deterministic. A single failing request fails the batch.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, reqs []Request, workers int) ([]Ranked, error) {
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}

	results := make([]*types.Analysis, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, req := range reqs {
		g.Go(func() error {
			analysis, err := a.Analyze(ctx, req)
			if err != nil {
				return err
			}
			results[i] = analysis
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// SliceStable keeps input order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Match.ATSScore > results[j].Match.ATSScore
	})

	ranked := make([]Ranked, len(results))
	for i, analysis := range results {
		ranked[i] = Ranked{Rank: i + 1, Analysis: analysis}
	}
	return ranked, nil
}
