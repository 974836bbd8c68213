// Package sweep evaluates a grid of padding scenarios in parallel.
package sweep

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/observe-l/xorpad/internal/analysis"
)

// Grid lists the axes to combine. Every block size is paired with every
// padding count and every block count.
type Grid struct {
	BlockSizes  []int
	PaddingBits []int
	Blocks      []int
	Terms       int
	// Workers bounds concurrent evaluations; <= 0 uses GOMAXPROCS.
	Workers int
}

// Scenarios expands g in block size, padding, block count order.
func (g Grid) Scenarios() []analysis.Scenario {
	out := make([]analysis.Scenario, 0, len(g.BlockSizes)*len(g.PaddingBits)*len(g.Blocks))
	for _, size := range g.BlockSizes {
		for _, pad := range g.PaddingBits {
			for _, blocks := range g.Blocks {
				out = append(out, analysis.Scenario{
					BlockSize:   size,
					PaddingBits: pad,
					Blocks:      blocks,
					Terms:       g.Terms,
				})
			}
		}
	}
	return out
}

// Observer is told about each finished evaluation. Calls may come from
// several goroutines.
type Observer func(analysis.Result)

// Run evaluates every scenario of g. Results keep the order of
// g.Scenarios(); the first error cancels the remaining work.
func Run(ctx context.Context, g Grid, observe Observer) ([]analysis.Result, error) {
	scenarios := g.Scenarios()
	results := make([]analysis.Result, len(scenarios))

	workers := g.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, s := range scenarios {
		i, s := i, s
		eg.Go(func() error {
			res, err := analysis.Evaluate(ctx, s)
			if err != nil {
				return fmt.Errorf("block size %d, padding %d, blocks %d: %w", s.BlockSize, s.PaddingBits, s.Blocks, err)
			}
			results[i] = res
			if observe != nil {
				observe(res)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
