package timing

import (
	"sync"
	"time"
)

// Throttle returns a wrapper that lets at most one call through per
// interval. The first call in an interval invokes f synchronously;
// later calls within the same interval are absorbed into a single
// trailing invocation that fires at the end of the interval with the
// most recent argument. A trailing invocation opens a fresh interval.
// cancel discards a pending trailing call and is idempotent.
func Throttle[T any](interval time.Duration, f func(T)) (call func(T), cancel func()) {
	var mu sync.Mutex
	var timer *time.Timer
	var pending T
	var windowEnd time.Time

	call = func(arg T) {
		mu.Lock()
		now := time.Now()
		if now.After(windowEnd) {
			windowEnd = now.Add(interval)
			mu.Unlock()
			f(arg) // leading call, synchronous
			return
		}
		pending = arg
		if timer == nil {
			var t *time.Timer
			t = time.AfterFunc(time.Until(windowEnd), func() {
				mu.Lock()
				if timer != t {
					mu.Unlock()
					return
				}
				arg := pending
				timer = nil
				windowEnd = time.Now().Add(interval)
				mu.Unlock()
				f(arg)
			})
			timer = t
		}
		mu.Unlock()
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

// ThrottleFunc is [Throttle] for argument-less functions.
func ThrottleFunc(interval time.Duration, f func()) (call func(), cancel func()) {
	throttled, cancel := Throttle(interval, func(struct{}) { f() })
	return func() { throttled(struct{}{}) }, cancel
}
