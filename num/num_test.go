package num_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-handy-utils/num"
)

func TestRandomIntInclusiveRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		n := num.RandomInt(3, 7)
		require.GreaterOrEqual(t, n, 3)
		require.LessOrEqual(t, n, 7)
	}
	assert.Equal(t, 5, num.RandomInt(5, 5))
	// reversed bounds are swapped, not an error
	n := num.RandomInt(7, 3)
	assert.GreaterOrEqual(t, n, 3)
	assert.LessOrEqual(t, n, 7)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, num.Clamp(10, 0, 5))
	assert.Equal(t, 0, num.Clamp(-3, 0, 5))
	assert.Equal(t, 3, num.Clamp(3, 0, 5))
	assert.Equal(t, 2.5, num.Clamp(2.5, 1.0, 4.0))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 3.14, num.RoundTo(3.14159, 2))
	assert.Equal(t, 3.0, num.RoundTo(3.14159, 0))
	assert.Equal(t, 3.0, num.RoundTo(3.14159, -2))
	assert.Equal(t, 1.57, num.RoundTo(1.567, 2))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 12.5, num.Percentage(25, 200))
	assert.Equal(t, 33.33, num.Percentage(1, 3))
	assert.Equal(t, 33.3, num.Percentage(1, 3, 1))
	assert.Equal(t, 0.0, num.Percentage(5, 0))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1,234,567.5", num.Format(1234567.5))
	assert.Equal(t, "-4,200", num.Format(-4200))
	assert.Equal(t, "999", num.Format(999))
	assert.Equal(t, "1,000", num.Format(1000))
	assert.Equal(t, "0", num.Format(0))
}

func TestAggregations(t *testing.T) {
	assert.Equal(t, 15, num.Sum([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 0, num.Sum([]int{}))
	assert.Equal(t, 3.0, num.Average([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 0.0, num.Average([]float64{}))
	assert.Equal(t, 3.0, num.Median([]int{5, 1, 3, 2, 4}))
	assert.Equal(t, 2.5, num.Median([]int{1, 2, 3, 4}))
	assert.Equal(t, 0.0, num.Median([]int{}))
	assert.Equal(t, 1.0, num.Min([]int{3, 1, 4}))
	assert.Equal(t, 4.0, num.Max([]int{3, 1, 4}))
	assert.True(t, math.IsInf(num.Min([]int{}), 1))
	assert.True(t, math.IsInf(num.Max([]int{}), -1))
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	in := []int{5, 1, 3}
	num.Median(in)
	assert.Equal(t, []int{5, 1, 3}, in)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 Bytes", num.FormatBytes(0))
	assert.Equal(t, "512 Bytes", num.FormatBytes(512))
	assert.Equal(t, "1 KB", num.FormatBytes(1024))
	assert.Equal(t, "1.5 KB", num.FormatBytes(1536))
	assert.Equal(t, "1 MB", num.FormatBytes(1048576))
	assert.Equal(t, "1.18 MB", num.FormatBytes(1234567))
	assert.Equal(t, "1.2 MB", num.FormatBytes(1234567, 1))
	assert.Equal(t, "1 KB", num.FormatBytes(1025, -3))
}

func TestToBytes(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.5 KB", 1536},
		{"1 MB", 1048576},
		{"10", 10},
		{"512 Bytes", 512},
		{"2 gb", 2 * 1024 * 1024 * 1024},
	}
	for _, c := range cases {
		got, ok := num.ToBytes(c.in)
		require.True(t, ok, "ToBytes(%q)", c.in)
		assert.Equal(t, c.want, got, "ToBytes(%q)", c.in)
	}
	for _, bad := range []string{"", "oops", "12 XB", "KB"} {
		_, ok := num.ToBytes(bad)
		assert.False(t, ok, "ToBytes(%q) should fail", bad)
	}
}

func TestFormatToBytesRoundTripAtBoundaries(t *testing.T) {
	for _, n := range []float64{1, 1024, 1024 * 1024, 1024 * 1024 * 1024} {
		got, ok := num.ToBytes(num.FormatBytes(n))
		require.True(t, ok)
		assert.Equal(t, n, got)
	}
}
