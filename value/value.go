package value

import (
	"math"
	"reflect"
	"regexp"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Type predicates
// ─────────────────────────────────────────────────────────────────────────────

// IsNil reports whether v is nil, either the untyped nil interface or a
// typed nil pointer, map, slice, channel, function, or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsString reports whether v is a string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsBool reports whether v is a bool.
func IsBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsNumber reports whether v is a finite number of any built-in numeric
// type. NaN and infinities are not numbers here.
func IsNumber(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return !math.IsNaN(float64(n)) && !math.IsInf(float64(n), 0)
	case float64:
		return !math.IsNaN(n) && !math.IsInf(n, 0)
	}
	return false
}

// IsPrimitive reports whether v is a string, finite number, bool, or nil.
func IsPrimitive(v any) bool {
	return IsNil(v) || IsString(v) || IsBool(v) || IsNumber(v)
}

// IsMap reports whether v is a plain mapping (any map kind).
func IsMap(v any) bool {
	return v != nil && reflect.ValueOf(v).Kind() == reflect.Map
}

// IsSlice reports whether v is a slice or array.
func IsSlice(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsFunc reports whether v is a function.
func IsFunc(v any) bool {
	return v != nil && reflect.ValueOf(v).Kind() == reflect.Func
}

// IsValidDate reports whether v is a non-zero time.Time.
func IsValidDate(v any) bool {
	t, ok := v.(time.Time)
	return ok && !t.IsZero()
}

// IsRegex reports whether v is a compiled *regexp.Regexp.
func IsRegex(v any) bool {
	r, ok := v.(*regexp.Regexp)
	return ok && r != nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Emptiness & normalization
// ─────────────────────────────────────────────────────────────────────────────

// IsEmpty reports whether v has zero length or zero keys: nil, "", empty
// slices/arrays/maps/channels, zero time.Time, and nil pointers count as
// empty. Numbers and booleans are never empty (0 and false are meaningful).
func IsEmpty(v any) bool {
	if IsNil(v) {
		return true
	}
	if t, ok := v.(time.Time); ok {
		return t.IsZero()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	}
	return false
}

// Normalize maps semantically empty values — nil (typed or untyped), empty
// strings, NaN, zero time.Time, and zero-length slices/arrays/maps — to a
// canonical nil. Everything else passes through unchanged, including the
// falsy-but-meaningful 0 and false.
func Normalize(v any) any {
	switch n := v.(type) {
	case nil:
		return nil
	case string:
		if n == "" {
			return nil
		}
		return v
	case float32:
		if math.IsNaN(float64(n)) {
			return nil
		}
		return v
	case float64:
		if math.IsNaN(n) {
			return nil
		}
		return v
	case time.Time:
		if n.IsZero() {
			return nil
		}
		return v
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Chan, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
	case reflect.Slice, reflect.Map:
		if rv.IsNil() || rv.Len() == 0 {
			return nil
		}
	case reflect.Array:
		if rv.Len() == 0 {
			return nil
		}
	}
	return v
}
