package arr

import (
	"math/rand"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Duplicates & uniqueness
// ─────────────────────────────────────────────────────────────────────────────

// HasDuplicates reports whether items contains at least one repeated value.
func HasDuplicates[T comparable](items []T) bool {
	seen := make(map[T]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			return true
		}
		seen[item] = struct{}{}
	}
	return false
}

// HasDuplicatesBy reports whether two elements share the same key
// extracted by fn.
func HasDuplicatesBy[T any, K comparable](items []T, fn func(T) K) bool {
	seen := make(map[K]struct{}, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; ok {
			return true
		}
		seen[k] = struct{}{}
	}
	return false
}

// Unique returns a new slice with duplicate values removed, preserving the
// first occurrence of each value.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// UniqueBy removes elements whose key (extracted by fn) was already seen.
// On a key collision the LAST element wins, but it keeps the position of
// the key's first occurrence:
//
//	UniqueBy([]user{{1, "a"}, {2, "b"}, {1, "c"}}, func(u user) int { return u.ID })
//	// → [{1 "c"} {2 "b"}]
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	at := make(map[K]int, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if i, ok := at[k]; ok {
			out[i] = item
			continue
		}
		at[k] = len(out)
		out = append(out, item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size. The last group may
// contain fewer than size elements. A non-positive size yields an empty
// result.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// GroupBy groups items into label→list by the key extracted by fn.
// Elements keep their relative order within each group.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// Compact returns items without its zero values ("", 0, false, nil, ...).
func Compact[T comparable](items []T) []T {
	var zero T
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item != zero {
			out = append(out, item)
		}
	}
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Partition splits items into two slices: those satisfying fn and the rest.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// Range generates the half-open arithmetic sequence [start, end) advancing
// by step. A non-positive step yields an empty result.
//
//	Range(0, 10, 2) // → [0 2 4 6 8]
//	Range(5, 5, 1)  // → []
func Range(start, end, step int) []int {
	if step <= 0 || end <= start {
		return []int{}
	}
	out := make([]int, 0, (end-start+step-1)/step)
	for n := start; n < end; n += step {
		out = append(out, n)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Intersect returns the elements of first that appear in every other
// sequence, preserving first's order.
func Intersect[T comparable](first []T, rest ...[]T) []T {
	out := make([]T, len(first))
	copy(out, first)
	for _, other := range rest {
		set := make(map[T]struct{}, len(other))
		for _, v := range other {
			set[v] = struct{}{}
		}
		kept := make([]T, 0, len(out))
		for _, v := range out {
			if _, ok := set[v]; ok {
				kept = append(kept, v)
			}
		}
		out = kept
	}
	return out
}

// Diff returns the elements of first that appear in none of the other
// sequences, preserving first's order.
func Diff[T comparable](first []T, rest ...[]T) []T {
	drop := make(map[T]struct{})
	for _, other := range rest {
		for _, v := range other {
			drop[v] = struct{}{}
		}
	}
	out := make([]T, 0, len(first))
	for _, v := range first {
		if _, ok := drop[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & randomisation
// ─────────────────────────────────────────────────────────────────────────────

// SortBy returns a copy of items stably sorted ascending by the key
// extracted by fn.
func SortBy[T any](items []T, fn func(T) float64) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return fn(out[i]) < fn(out[j]) })
	return out
}

// SortByDesc returns a copy of items stably sorted descending by the key
// extracted by fn.
func SortByDesc[T any](items []T, fn func(T) float64) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return fn(out[i]) > fn(out[j]) })
	return out
}

// Shuffle returns a Fisher–Yates shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns one uniformly random element of items.
// Returns the zero value and false when items is empty.
func Sample[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[rand.Intn(len(items))], true
}

// ─────────────────────────────────────────────────────────────────────────────
// Access & searching
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element. Returns the zero value and false when
// items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element. Returns the zero value and false when
// items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Contains reports whether at least one element satisfies fn.
func Contains[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if fn(item) {
			return true
		}
	}
	return false
}

// ContainsValue reports whether items contains value.
func ContainsValue[T comparable](items []T, value T) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns the elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reduce reduces items to a single value of type U.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// Pluck extracts a value of type U from each element of type T.
func Pluck[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}
