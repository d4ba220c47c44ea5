// Package obj provides helpers for plain map[string]any mappings: key
// selection, recursive merge, structural diff, and dot-path access.
//
// A "plain mapping" here is a map[string]any whose nested mappings are also
// map[string]any — the shape produced by encoding/json unmarshalling into
// any. Only values of exactly that type participate in recursion; slices and
// every other value type are treated as opaque leaves.
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name":    "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	obj.Get(m, "user.address.city")            // → "London"
//	obj.Flatten(m)                             // → {"user.name": "Alice", "user.address.city": "London"}
//	obj.Merge(m, map[string]any{"user": map[string]any{"age": 30}})
//
// # Mutation
//
// Pick, Omit, Merge, Diff, Flatten, and Unflatten never mutate their inputs.
// Get, Set, Has, and Forget operate on the given map in place — Set and
// Forget exist precisely to mutate. Leaf values are shared, not cloned;
// callers needing isolation clone leaves themselves.
package obj
