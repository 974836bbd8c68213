package padding

import "math"

// FullRankProbability returns the probability that a random height x width
// matrix over GF(2) has rank min(width, height).
//
// The shorter side's vectors are added one at a time to the space of the
// longer side; a vector arriving while the span is s dimensions short of the
// whole space falls inside it with probability 2^-s. p accumulates the
// probability that at least one vector fell inside. Zero dimensions return 1.
func FullRankProbability(width, height int) float64 {
	hi, lo := width, height
	if lo > hi {
		hi, lo = lo, hi
	}
	p := 0.0
	for s := hi; s > hi-lo; s-- {
		l := math.Ldexp(1, -s)
		p = p*(1-l) + l
	}
	return 1 - p
}

// AdditionalHeightProbability returns the probability that an order x order
// matrix needs exactly extra appended random rows to reach full rank.
func AdditionalHeightProbability(order, extra int) float64 {
	p := FullRankProbability(order, order+extra)
	if extra == 0 {
		return p
	}
	return p - FullRankProbability(order, order+extra-1)
}
