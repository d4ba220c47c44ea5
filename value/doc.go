// Package value classifies arbitrary runtime values and normalizes
// "semantically empty" ones.
//
// Dynamic any-typed data (decoded JSON, loosely typed configuration) arrives
// without useful static types; this package provides the tagged dispatch
// over a closed set of recognized categories — string, number, boolean,
// nil, date, slice, mapping, function, regexp — plus emptiness testing,
// canonical normalization, and recursive structural equality:
//
//	value.IsNumber(3.14)            // → true
//	value.IsNumber(math.NaN())      // → false (finite numbers only)
//	value.IsEmpty(map[string]any{}) // → true
//	value.Normalize("")             // → nil
//	value.Normalize(0)              // → 0 (falsy but meaningful)
//	value.Equal([]any{1}, []any{1}) // → true
package value
