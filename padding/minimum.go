package padding

import (
	"fmt"
	"math"

	"github.com/observe-l/xorpad/internal/dist"
)

// MinimumPaddingBits returns the fewest padding bits that, spread over
// blockCount independent blocks of blockSize bits, make every block
// invertible with probability at least target.
//
// The per-block "extra rows needed" distribution is truncated at
// DefaultTerms terms (see WithTerms). If the truncated sum never reaches
// target, it returns -1 and an error wrapping ErrTargetUnreachable.
func MinimumPaddingBits(blockSize, blockCount int, target float64, opts ...Option) (int, error) {
	o := buildOptions(opts)
	switch {
	case blockSize < 0:
		return -1, fmt.Errorf("%w: %d", ErrNegativeDimension, blockSize)
	case blockCount < 0:
		return -1, fmt.Errorf("%w: %d", ErrNegativeBlockCount, blockCount)
	case math.IsNaN(target) || target < 0 || target > 1:
		return -1, fmt.Errorf("%w: %v", ErrProbabilityRange, target)
	case o.terms < 1:
		return -1, fmt.Errorf("%w: %d", ErrTerms, o.terms)
	}

	a := make([]float64, o.terms)
	for i := range a {
		a[i] = AdditionalHeightProbability(blockSize, i)
	}
	cdf := dist.Cumulative(dist.SumOf(a, blockCount))
	n, ok := dist.FirstReaching(cdf, target)
	if !ok {
		return -1, fmt.Errorf("%w: %v over %d blocks of %d bits, best %v at %d padding bits; %d terms hold mass %v",
			ErrTargetUnreachable, target, blockCount, blockSize, cdf[len(cdf)-1],
			dist.Len(o.terms, blockCount)-1, o.terms, dist.Total(a))
	}
	return n, nil
}
