package timing

import "sync"

// Once returns a function that invokes f on its first call only, caching
// and returning that first result — zero values included — on every
// subsequent call.
func Once[T any](f func() T) func() T {
	var once sync.Once
	var result T
	return func() T {
		once.Do(func() { result = f() })
		return result
	}
}

// OnceFunc is [Once] for functions with no result.
func OnceFunc(f func()) func() {
	var once sync.Once
	return func() { once.Do(f) }
}
