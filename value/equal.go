package value

import "reflect"

// Equal reports recursive structural equality between two any-typed values.
// map[string]any and []any values are walked element by element; every
// other pair falls back to reflect.DeepEqual, so mixed numeric types
// compare unequal (1 != 1.0) just as they do under ==.
//
// Self-referential structures are NOT supported: Equal performs plain
// recursion with no visited-set and will not terminate on a cycle.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return IsNil(a) && IsNil(b)
	}
	am, aIsMap := a.(map[string]any)
	bm, bIsMap := b.(map[string]any)
	if aIsMap || bIsMap {
		if !aIsMap || !bIsMap || len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	as, aIsSlice := a.([]any)
	bs, bIsSlice := b.([]any)
	if aIsSlice || bIsSlice {
		if !aIsSlice || !bIsSlice || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !Equal(as[i], bs[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}
