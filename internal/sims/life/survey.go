package life

import (
	"context"

	"lifegrid/internal/patterns"

	"golang.org/x/sync/errgroup"
)

// SurveyResult summarizes one seeded run.
type SurveyResult struct {
	Seed        int64
	Generations int
	Population  int
	Census      map[string]int
}

// Survey evolves one random board per seed for steps generations and records
// the patterns recognized in the final generation. Runs execute on at most
// workers goroutines; results keep the order of seeds.
func Survey(ctx context.Context, cfg Config, steps int, seeds []int64, workers int, catalog *patterns.Catalog) ([]SurveyResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]SurveyResult, len(seeds))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, seed := range seeds {
		eg.Go(func() error {
			run := cfg
			run.Seed = seed
			l := NewWithConfig(run)
			l.Reset(seed)
			for s := 0; s < steps; s++ {
				if s%64 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				l.Step()
			}
			results[i] = SurveyResult{
				Seed:        seed,
				Generations: l.Generation(),
				Population:  l.Population(),
				Census:      patterns.Detect(l.Grid(), catalog).Census(),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MergeCensus sums the per-run censuses.
func MergeCensus(results []SurveyResult) map[string]int {
	out := make(map[string]int)
	for _, r := range results {
		for name, n := range r.Census {
			out[name] += n
		}
	}
	return out
}
