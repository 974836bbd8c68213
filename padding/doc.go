// Package padding estimates how many random padding rows a binary (XOR)
// matrix needs before it becomes invertible.
//
// A data block of n bits is recovered by solving an n-column system over
// GF(2). Each equation is a random row; the system is solvable once the rows
// reach rank n. Appending extra random rows ("padding bits") raises the
// probability of that happening, and across several independent blocks the
// extra rows needed add up.
//
// The package answers three questions:
//
//   - FullRankProbability: how likely a random height x width matrix has
//     full rank.
//   - AdditionalHeightProbability: how likely a square matrix of a given
//     order needs exactly k extra rows.
//   - MinimumPaddingBits: how many padding bits, shared across blockCount
//     blocks, reach a target success probability.
//
// Usage:
//
//	p := padding.FullRankProbability(1024, 1024+24)
//	n, err := padding.MinimumPaddingBits(1024, 2, p)
//	if errors.Is(err, padding.ErrTargetUnreachable) {
//		// raise the truncation with padding.WithTerms
//	}
//
// All functions are pure and safe for concurrent use.
package padding
