package padding_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/observe-l/xorpad/padding"
)

func TestFullRankProbability_SmallCases(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          float64
	}{
		{"1x1", 1, 1, 0.5},
		{"empty", 0, 0, 1},
		{"zero width", 0, 7, 1},
		{"zero height", 7, 0, 1},
		// (1-1/2)(1-1/4)
		{"2x2", 2, 2, 0.375},
		// only the all-zero column fails
		{"1 col 2 rows", 1, 2, 0.75},
		{"2 cols 1 row", 2, 1, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, padding.FullRankProbability(tt.width, tt.height), 1e-15)
		})
	}
}

// Square matrices follow prod_{i=1..n} (1 - 2^-i).
func TestFullRankProbability_SquareProduct(t *testing.T) {
	for _, n := range []int{1, 3, 8, 20, 64} {
		want := 1.0
		for i := 1; i <= n; i++ {
			want *= 1 - math.Ldexp(1, -i)
		}
		assert.InDelta(t, want, padding.FullRankProbability(n, n), 1e-12, "n=%d", n)
	}
}

func TestFullRankProbability_Symmetric(t *testing.T) {
	for w := 0; w < 12; w++ {
		for h := 0; h < 12; h++ {
			assert.Equal(t, padding.FullRankProbability(w, h), padding.FullRankProbability(h, w), "w=%d h=%d", w, h)
		}
	}
}

func TestFullRankProbability_Monotone(t *testing.T) {
	const eps = 1e-12
	for w := 1; w <= 40; w++ {
		prev := padding.FullRankProbability(w, w)
		for h := w + 1; h <= w+60; h++ {
			cur := padding.FullRankProbability(w, h)
			require.GreaterOrEqual(t, cur+eps, prev, "height growth must not hurt: w=%d h=%d", w, h)
			prev = cur
		}
	}
	for h := 1; h <= 40; h++ {
		prev := padding.FullRankProbability(1, h)
		for w := 2; w <= h; w++ {
			cur := padding.FullRankProbability(w, h)
			require.LessOrEqual(t, cur, prev+eps, "width growth must not help: w=%d h=%d", w, h)
			prev = cur
		}
	}
}

func TestFullRankProbability_ApproachesOne(t *testing.T) {
	assert.Equal(t, 1.0, padding.FullRankProbability(64, 64+80))
	assert.Less(t, padding.FullRankProbability(64, 64+10), 1.0)
}

func TestFullRankProbability_Scenarios(t *testing.T) {
	square := padding.FullRankProbability(1024, 1024)
	assert.InDelta(t, 0.2888, square, 1e-4)

	padded := padding.FullRankProbability(1024, 1024+24)
	assert.InDelta(t, 0.99999994, padded, 1e-8)
	assert.GreaterOrEqual(t, padded, 1-math.Ldexp(1, -24))
}

func TestAdditionalHeightProbability(t *testing.T) {
	assert.Equal(t, padding.FullRankProbability(16, 16), padding.AdditionalHeightProbability(16, 0))

	// 1x1: needs no extra row with 1/2, exactly k extra rows with 2^-(k+1).
	for k := 0; k < 20; k++ {
		assert.InDelta(t, math.Ldexp(1, -(k+1)), padding.AdditionalHeightProbability(1, k), 1e-15, "k=%d", k)
	}
}

func TestAdditionalHeightProbability_NonNegative(t *testing.T) {
	for _, order := range []int{1, 2, 5, 32, 256, 1024} {
		for extra := 0; extra < padding.DefaultTerms+8; extra++ {
			assert.GreaterOrEqual(t, padding.AdditionalHeightProbability(order, extra), -1e-15,
				"order=%d extra=%d", order, extra)
		}
	}
}

func TestAdditionalHeightProbability_Normalized(t *testing.T) {
	for _, order := range []int{1, 16, 1024} {
		sum := 0.0
		for i := 0; i < padding.DefaultTerms; i++ {
			sum += padding.AdditionalHeightProbability(order, i)
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "order=%d", order)
	}
}
