package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvolve(t *testing.T) {
	// two fair coins
	coin := []float64{0.5, 0.5}
	assert.Equal(t, []float64{0.25, 0.5, 0.25}, Convolve(coin, coin))

	assert.Nil(t, Convolve(nil, coin))
	assert.Nil(t, Convolve(coin, []float64{}))
}

func TestConvolve_PointMassIsIdentity(t *testing.T) {
	a := []float64{0.1, 0.2, 0.3, 0.4}
	assert.Equal(t, a, Convolve(a, []float64{1}))
	assert.Equal(t, a, Convolve([]float64{1}, a))

	shifted := Convolve(a, []float64{0, 1})
	assert.Equal(t, []float64{0, 0.1, 0.2, 0.3, 0.4}, shifted)
}

func TestSumOf(t *testing.T) {
	a := []float64{0.5, 0.25, 0.125, 0.125}

	assert.Equal(t, []float64{1}, SumOf(a, 0))
	assert.Equal(t, a, SumOf(a, 1), "one block leaves the distribution unchanged")

	for count := 1; count <= 5; count++ {
		got := SumOf(a, count)
		require.Len(t, got, Len(len(a), count), "count=%d", count)
		assert.InDelta(t, 1.0, Total(got), 1e-12, "count=%d", count)
	}
}

func TestLen(t *testing.T) {
	assert.Equal(t, 1, Len(56, 0))
	assert.Equal(t, 56, Len(56, 1))
	assert.Equal(t, 111, Len(56, 2))
	assert.Equal(t, 56+9*55, Len(56, 10))
}

func TestCumulativeAndFirstReaching(t *testing.T) {
	cdf := Cumulative([]float64{0.5, 0.25, 0.125, 0.0625})
	assert.Equal(t, []float64{0.5, 0.75, 0.875, 0.9375}, cdf)
	assert.Nil(t, Cumulative(nil))

	i, ok := FirstReaching(cdf, 0.75)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = FirstReaching(cdf, 0)
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = FirstReaching(cdf, 0.99)
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}

func TestCumulative_LeftToRight(t *testing.T) {
	// Each 1e-16 is lost against 1; summing the tail first would keep it.
	cdf := Cumulative([]float64{1, 1e-16, 1e-16, 1e-16, 1e-16})
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, cdf)

	cdf = Cumulative([]float64{1e-16, 1e-16, 1})
	assert.Equal(t, 1.0000000000000002, cdf[2])
}

func TestAt(t *testing.T) {
	cdf := []float64{0.5, 0.75, 0.875}
	assert.Equal(t, 0.0, At(cdf, -1))
	assert.Equal(t, 0.75, At(cdf, 1))
	assert.Equal(t, 0.875, At(cdf, 10))
	assert.Equal(t, 0.0, At(nil, 3))
}
