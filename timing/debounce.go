package timing

import (
	"sync"
	"time"
)

// Debounce returns a wrapper that delays invoking f until wait has elapsed
// since the wrapper's last call. Each call replaces the pending timer and
// the pending argument, so a burst of calls delivers only the final call's
// argument, once. cancel discards any pending invocation and is safe to
// call repeatedly, with or without anything pending.
//
// f runs on a timer goroutine once the quiet period ends.
func Debounce[T any](wait time.Duration, f func(T)) (call func(T), cancel func()) {
	var mu sync.Mutex
	var timer *time.Timer
	var pending T

	call = func(arg T) {
		mu.Lock()
		defer mu.Unlock()
		pending = arg
		if timer != nil {
			timer.Stop()
		}
		var t *time.Timer
		t = time.AfterFunc(wait, func() {
			mu.Lock()
			if timer != t {
				// superseded or cancelled between firing and locking
				mu.Unlock()
				return
			}
			arg := pending
			timer = nil
			mu.Unlock()
			f(arg)
		})
		timer = t
	}
	cancel = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
			timer = nil
		}
	}
	return call, cancel
}

// DebounceFunc is [Debounce] for argument-less functions.
func DebounceFunc(wait time.Duration, f func()) (call func(), cancel func()) {
	debounced, cancel := Debounce(wait, func(struct{}) { f() })
	return func() { debounced(struct{}{}) }, cancel
}
