// Package dist holds the discrete probability-mass helpers shared by the
// padding calculations: convolution of independent PMFs and CDF lookups.
package dist

import (
	"gonum.org/v1/gonum/floats"
)

// Convolve returns the PMF of X+Y for independent X~a and Y~b.
// out[j+k] accumulates a[j]*b[k] with j as the outer index, so the rounding
// matches the plain nested loop.
func Convolve(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]float64, len(a)+len(b)-1)
	for j, aj := range a {
		floats.AddScaled(out[j:j+len(b)], aj, b)
	}
	return out
}

// SumOf returns the PMF of the sum of count independent copies of a.
// count == 0 yields the point mass at zero.
func SumOf(a []float64, count int) []float64 {
	m := []float64{1}
	for i := 0; i < count; i++ {
		m = Convolve(a, m)
	}
	return m
}

// Len is the length of SumOf(a, count) for a of length terms, count >= 1.
func Len(terms, count int) int {
	if count <= 0 {
		return 1
	}
	return terms + (count-1)*(terms-1)
}

// Cumulative returns the running sums of a, added strictly left to right.
// floats.CumSum is not used: its assembly kernel groups the additions
// differently and can end a full distribution below 1.
func Cumulative(a []float64) []float64 {
	if len(a) == 0 {
		return nil
	}
	out := make([]float64, len(a))
	var p float64
	for i, v := range a {
		p += v
		out[i] = p
	}
	return out
}

// FirstReaching returns the first index whose cumulative value is >= target.
func FirstReaching(cdf []float64, target float64) (int, bool) {
	for i, p := range cdf {
		if p >= target {
			return i, true
		}
	}
	return -1, false
}

// At returns cdf[i], saturating to the last value past the end and to 0
// below the start.
func At(cdf []float64, i int) float64 {
	if i < 0 || len(cdf) == 0 {
		return 0
	}
	if i >= len(cdf) {
		return cdf[len(cdf)-1]
	}
	return cdf[i]
}

// Total is the mass held by a; 1 for a proper, untruncated distribution.
func Total(a []float64) float64 {
	return floats.Sum(a)
}
