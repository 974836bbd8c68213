// Package analysis answers the sizing questions asked when padding data
// blocks before an XOR embed: how reliable a block is, how many extra rows
// several blocks need, and how much keystream that padding costs.
package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/observe-l/xorpad/internal/dist"
	"github.com/observe-l/xorpad/padding"
)

// KeystreamBlockBytes is the Salsa20 block size padding bits are drawn from.
const KeystreamBlockBytes = 64

// Scenario is one padding configuration. PaddingBits is the reference
// single-block padding whose success probability the multi-block minimum
// has to match.
type Scenario struct {
	BlockSize   int
	PaddingBits int
	Blocks      int
	Terms       int
}

// Result is the evaluation of a Scenario.
type Result struct {
	Scenario

	// NonSingular is FullRankProbability(BlockSize, BlockSize).
	NonSingular float64
	// Success is FullRankProbability(BlockSize, BlockSize+PaddingBits).
	Success float64
	// MinimumBits is the padding shared by Blocks blocks reaching Success,
	// -1 when the truncated distribution cannot reach it.
	MinimumBits int
	// Reachable is false when MinimumBits could not be determined.
	Reachable bool
	// Achieved is the success probability MinimumBits actually yields.
	Achieved float64
	// KeystreamBlocks is the keystream needed to source MinimumBits.
	KeystreamBlocks int
}

// Overhead is the extra padding per block compared to padding each block on
// its own with PaddingBits.
func (r Result) Overhead() float64 {
	if !r.Reachable || r.Blocks == 0 {
		return 0
	}
	return float64(r.MinimumBits)/float64(r.Blocks) - float64(r.PaddingBits)
}

func (s Scenario) terms() int {
	if s.Terms <= 0 {
		return padding.DefaultTerms
	}
	return s.Terms
}

// Validate reports whether s describes a computable scenario.
func (s Scenario) Validate() error {
	switch {
	case s.BlockSize < 0:
		return fmt.Errorf("block size %d: %w", s.BlockSize, padding.ErrNegativeDimension)
	case s.PaddingBits < 0:
		return fmt.Errorf("padding bits %d: %w", s.PaddingBits, padding.ErrNegativeDimension)
	case s.Blocks < 0:
		return fmt.Errorf("blocks %d: %w", s.Blocks, padding.ErrNegativeBlockCount)
	}
	return nil
}

// Evaluate computes every figure of Result for s. An unreachable minimum is
// reported through Result.Reachable, not as an error.
func Evaluate(ctx context.Context, s Scenario) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res := Result{
		Scenario:    s,
		NonSingular: padding.FullRankProbability(s.BlockSize, s.BlockSize),
		Success:     padding.FullRankProbability(s.BlockSize, s.BlockSize+s.PaddingBits),
		MinimumBits: -1,
	}
	n, err := padding.MinimumPaddingBits(s.BlockSize, s.Blocks, res.Success, padding.WithTerms(s.terms()))
	switch {
	case errors.Is(err, padding.ErrTargetUnreachable):
		return res, nil
	case err != nil:
		return Result{}, err
	}
	res.MinimumBits = n
	res.Reachable = true
	res.Achieved = SuccessProbability(s.BlockSize, s.Blocks, n, s.terms())
	res.KeystreamBlocks = KeystreamBlocks(n, KeystreamBlockBytes)
	return res, nil
}

// HeightDistribution returns P(exactly i extra rows) for i < terms.
func HeightDistribution(order, terms int) []float64 {
	if terms < 1 {
		return nil
	}
	a := make([]float64, terms)
	for i := range a {
		a[i] = padding.AdditionalHeightProbability(order, i)
	}
	return a
}

// SuccessProbability is the probability that blocks independent blocks of
// blockSize bits all become invertible with paddingBits extra rows in total.
func SuccessProbability(blockSize, blocks, paddingBits, terms int) float64 {
	if terms <= 0 {
		terms = padding.DefaultTerms
	}
	cdf := dist.Cumulative(dist.SumOf(HeightDistribution(blockSize, terms), blocks))
	return dist.At(cdf, paddingBits)
}

// KeystreamBlocks returns how many blockBytes-sized keystream blocks hold
// paddingBits bits.
func KeystreamBlocks(paddingBits, blockBytes int) int {
	if paddingBits <= 0 || blockBytes <= 0 {
		return 0
	}
	per := 8 * blockBytes
	return (paddingBits + per - 1) / per
}
