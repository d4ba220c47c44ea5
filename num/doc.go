// Package num provides small numeric helpers: bounded random integers,
// percentages, clamping, thousands-separated formatting, aggregation over
// numeric slices, decimal rounding, and base-1024 byte-size formatting and
// parsing.
//
//	num.Percentage(25, 200)      // → 12.5
//	num.Format(1234567.5)        // → "1,234,567.5"
//	num.FormatBytes(1536)        // → "1.5 KB"
//	num.ToBytes("1.5 KB")        // → 1536, true
//
// Aggregations follow fixed conventions on empty input: Sum and Average
// and Median yield 0, Min yields +Inf, Max yields -Inf.
package num
