// Package arr provides standalone, framework-agnostic helper functions for
// Go slices: duplicate detection, de-duplication, chunking, grouping,
// set-style intersection and difference, range generation, stable key
// sorting, sampling, and the usual map/filter/reduce core.
//
// All helpers are generic (Go 1.18+) and operate on plain []T values — no
// wrapper type required:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	ids   := arr.Unique([]int{1, 1, 2, 3, 3})   // → [1 2 3]
//	rows  := arr.Chunk([]int{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
//	nums  := arr.Range(0, 10, 2)                // → [0 2 4 6 8]
//
// # Immutability
//
// Every helper that filters, reorders, or restructures returns a new slice;
// input slices are never mutated. This makes results safe to retain and
// inputs safe to share.
//
// # Key extractors
//
// Helpers suffixed By accept a caller-supplied key extractor deriving a
// comparable key from each element, customizing uniqueness, duplicate, and
// grouping logic:
//
//	byID := arr.UniqueBy(users, func(u User) int { return u.ID })
package arr
