// Package timing provides timer-driven function wrappers: debouncing,
// throttling, single execution, retry with optional exponential backoff,
// timeouts, and context-aware sleep.
//
// # Debounce and throttle
//
// Both wrappers return a call function and an idempotent cancel function:
//
//	save, cancel := timing.Debounce(300*time.Millisecond, persist)
//	save(doc)   // schedules persist(doc)
//	save(doc2)  // replaces the pending call; only doc2 is delivered
//	cancel()    // discards anything still pending
//
// Each wrapper owns exactly one pending timer; it is cleared on fire and on
// cancel, so no callback can leak past cancellation. Wrappers are safe for
// concurrent use.
//
// # Retry and timeout
//
//	err := timing.Retry(ctx, ping) // 4 total attempts, 1s apart
//	v, err := timing.Timeout(ctx, 2*time.Second, fetch)
//
// Retry propagates the final attempt's error; Timeout fails with
// [*TimeoutError] when the timer wins the race. Timeout does NOT cancel
// the racing operation — callers cancel upstream work themselves.
package timing
