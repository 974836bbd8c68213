package padding

import "errors"

var (
	// ErrNegativeDimension indicates a negative block size.
	ErrNegativeDimension = errors.New("padding: block size must be non-negative")
	// ErrNegativeBlockCount indicates a negative number of blocks.
	ErrNegativeBlockCount = errors.New("padding: block count must be non-negative")
	// ErrProbabilityRange indicates a target outside [0, 1] or NaN.
	ErrProbabilityRange = errors.New("padding: target probability must be within [0, 1]")
	// ErrTerms indicates a truncation length below one term.
	ErrTerms = errors.New("padding: distribution needs at least one term")
	// ErrTargetUnreachable indicates the truncated distribution never
	// accumulates the requested probability.
	ErrTargetUnreachable = errors.New("padding: target probability unreachable")
)
