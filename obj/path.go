package obj

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-path access
//
// Paths are dot-separated key sequences into nested map[string]any values:
// "user.address.city". Keys containing literal dots cannot be addressed.
// ─────────────────────────────────────────────────────────────────────────────

// Flatten collapses a nested mapping into a single-level map with dot-path
// keys. [Flatten] and [Unflatten] are mutual inverses for mappings whose
// keys contain no literal dots and whose leaf values are not plain mappings.
//
//	Flatten(map[string]any{"a": map[string]any{"b": 1}})
//	// → {"a.b": 1}
func Flatten(m map[string]any) map[string]any {
	out := make(map[string]any)
	flattenInto("", m, out)
	return out
}

func flattenInto(prefix string, m, out map[string]any) {
	for k, v := range m {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(path, nested, out)
			continue
		}
		out[path] = v
	}
}

// Unflatten expands a flat dot-path map back into a nested mapping.
//
//	Unflatten(map[string]any{"a.b": 1, "a.c": 2})
//	// → {"a": {"b": 1, "c": 2}}
func Unflatten(flat map[string]any) map[string]any {
	out := make(map[string]any)
	for path, v := range flat {
		Set(out, path, v)
	}
	return out
}

// Get retrieves the value at the dot path, or def[0] (nil when absent) if
// the path does not resolve.
//
//	Get(m, "user.address.city")       // → "London"
//	Get(m, "user.missing", "default") // → "default"
func Get(m map[string]any, path string, def ...any) any {
	miss := func() any {
		if len(def) > 0 {
			return def[0]
		}
		return nil
	}
	segs := strings.Split(path, ".")
	for i, seg := range segs {
		v, ok := m[seg]
		if !ok {
			return miss()
		}
		if i == len(segs)-1 {
			return v
		}
		if m, ok = v.(map[string]any); !ok {
			return miss()
		}
	}
	return miss()
}

// Set writes value at the dot path, creating intermediate maps as needed.
// Intermediate non-map values are overwritten.
func Set(m map[string]any, path string, value any) {
	segs := strings.Split(path, ".")
	for _, seg := range segs[:len(segs)-1] {
		nested, ok := m[seg].(map[string]any)
		if !ok {
			nested = make(map[string]any)
			m[seg] = nested
		}
		m = nested
	}
	m[segs[len(segs)-1]] = value
}

// Has reports whether the dot path resolves in m.
func Has(m map[string]any, path string) bool {
	segs := strings.Split(path, ".")
	for i, seg := range segs {
		v, ok := m[seg]
		if !ok {
			return false
		}
		if i == len(segs)-1 {
			return true
		}
		if m, ok = v.(map[string]any); !ok {
			return false
		}
	}
	return false
}

// HasAll reports whether every dot path resolves in m.
func HasAll(m map[string]any, paths ...string) bool {
	for _, p := range paths {
		if !Has(m, p) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one dot path resolves in m.
func HasAny(m map[string]any, paths ...string) bool {
	for _, p := range paths {
		if Has(m, p) {
			return true
		}
	}
	return false
}

// Forget removes the dot path from m. Emptied intermediate maps are left
// in place.
func Forget(m map[string]any, path string) {
	segs := strings.Split(path, ".")
	for _, seg := range segs[:len(segs)-1] {
		nested, ok := m[seg].(map[string]any)
		if !ok {
			return
		}
		m = nested
	}
	delete(m, segs[len(segs)-1])
}
