package obj

import "reflect"

// ─────────────────────────────────────────────────────────────────────────────
// Key selection
// ─────────────────────────────────────────────────────────────────────────────

// Pick returns a new map containing only the specified top-level keys.
// Missing keys are skipped.
func Pick(m map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit returns a shallow copy of m without the specified top-level keys.
func Omit(m map[string]any, keys ...string) map[string]any {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Merge & diff
// ─────────────────────────────────────────────────────────────────────────────

// Merge combines maps left to right into a new map. Nested plain mappings
// merge recursively; every other value type — slices included — is replaced
// wholesale by the later source. Inputs are never mutated.
//
//	Merge(map[string]any{"a": 1, "b": map[string]any{"c": 2}},
//	      map[string]any{"b": map[string]any{"d": 3}})
//	// → {"a": 1, "b": {"c": 2, "d": 3}}
func Merge(maps ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, m := range maps {
		mergeInto(out, m)
	}
	return out
}

// mergeInto assumes every nested map reachable from dst is owned by the
// merge (freshly allocated here), so it may write into them freely.
func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		if !srcIsMap {
			dst[k] = v
			continue
		}
		dstMap, dstIsMap := dst[k].(map[string]any)
		if !dstIsMap {
			dstMap = make(map[string]any, len(srcMap))
			dst[k] = dstMap
		}
		mergeInto(dstMap, srcMap)
	}
}

// Diff returns the nested mapping of paths whose values differ between old
// and new, keyed from new's perspective. For differing nested mappings it
// recurses and keeps only the differing sub-paths; for differing slices or
// scalars the entire new value is returned. Keys present only in new are
// included; keys removed in new are not reported.
//
//	Diff(map[string]any{"tags": []any{1, 2}}, map[string]any{"tags": []any{1, 3}})
//	// → {"tags": [1 3]}
func Diff(old, new map[string]any) map[string]any {
	out := make(map[string]any)
	for k, nv := range new {
		ov, ok := old[k]
		if !ok {
			out[k] = nv
			continue
		}
		om, oIsMap := ov.(map[string]any)
		nm, nIsMap := nv.(map[string]any)
		if oIsMap && nIsMap {
			if sub := Diff(om, nm); len(sub) > 0 {
				out[k] = sub
			}
			continue
		}
		if !reflect.DeepEqual(ov, nv) {
			out[k] = nv
		}
	}
	return out
}
