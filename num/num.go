package num

import (
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

// Number is the constraint shared by all aggregation helpers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ─────────────────────────────────────────────────────────────────────────────
// Ranges & rounding
// ─────────────────────────────────────────────────────────────────────────────

// RandomInt returns a uniformly random integer in the inclusive range
// [min, max]. Reversed bounds are swapped.
func RandomInt(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + rand.Intn(max-min+1)
}

// Clamp limits n to the inclusive range [lo, hi].
func Clamp[T Number](n, lo, hi T) T {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// RoundTo rounds n to the given number of decimal places. Negative
// decimals are treated as zero.
//
//	RoundTo(3.14159, 2) // → 3.14
func RoundTo(n float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	pow := math.Pow(10, float64(decimals))
	return math.Round(n*pow) / pow
}

// Percentage returns part as a percentage of total, rounded to
// decimals[0] places (default 2). A zero total yields 0.
//
//	Percentage(25, 200) // → 12.5
func Percentage(part, total float64, decimals ...int) float64 {
	if total == 0 {
		return 0
	}
	d := 2
	if len(decimals) > 0 {
		d = decimals[0]
	}
	return RoundTo(part/total*100, d)
}

// ─────────────────────────────────────────────────────────────────────────────
// Formatting
// ─────────────────────────────────────────────────────────────────────────────

// Format renders n with comma thousands separators, keeping any fractional
// digits as-is.
//
//	Format(1234567.5) // → "1,234,567.5"
//	Format(-4200)     // → "-4,200"
func Format(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	b.Grow(len(intPart) + len(intPart)/3)
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	out := b.String()
	if hasFrac {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of items; 0 when items is empty.
func Sum[T Number](items []T) T {
	var total T
	for _, n := range items {
		total += n
	}
	return total
}

// Average returns the arithmetic mean of items; 0 when items is empty.
func Average[T Number](items []T) float64 {
	if len(items) == 0 {
		return 0
	}
	return float64(Sum(items)) / float64(len(items))
}

// Median returns the median of items (mean of the middle pair for even
// lengths); 0 when items is empty. The input is not mutated.
func Median[T Number](items []T) float64 {
	if len(items) == 0 {
		return 0
	}
	sorted := make([]float64, len(items))
	for i, n := range items {
		sorted[i] = float64(n)
	}
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// Min returns the smallest value in items; +Inf when items is empty.
func Min[T Number](items []T) float64 {
	if len(items) == 0 {
		return math.Inf(1)
	}
	m := float64(items[0])
	for _, n := range items[1:] {
		if v := float64(n); v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest value in items; -Inf when items is empty.
func Max[T Number](items []T) float64 {
	if len(items) == 0 {
		return math.Inf(-1)
	}
	m := float64(items[0])
	for _, n := range items[1:] {
		if v := float64(n); v > m {
			m = v
		}
	}
	return m
}
