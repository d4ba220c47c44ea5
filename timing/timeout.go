package timing

import (
	"context"
	"fmt"
	"time"
)

// TimeoutError is returned by [Timeout] when the timer wins the race.
type TimeoutError struct {
	// After is the elapsed limit that was exceeded.
	After time.Duration
	// Message overrides the default error text when non-empty.
	Message string
}

func (e *TimeoutError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("timed out after %s", e.After)
}

// Timeout races op against a timer of duration d. If op finishes first its
// result and error are returned as-is; if the timer elapses first a
// [*TimeoutError] is returned, carrying message[0] when given. The racing
// operation is NOT cancelled when the timer wins — it keeps running on its
// goroutine, and callers who need it stopped must cancel upstream work
// themselves (typically via ctx).
func Timeout[T any](ctx context.Context, d time.Duration, op func(context.Context) (T, error), message ...string) (T, error) {
	type outcome struct {
		v   T
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		v, err := op(ctx)
		done <- outcome{v, err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	var zero T
	select {
	case out := <-done:
		return out.v, out.err
	case <-timer.C:
		msg := ""
		if len(message) > 0 {
			msg = message[0]
		}
		return zero, &TimeoutError{After: d, Message: msg}
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Sleep suspends for d, returning early with ctx.Err() when ctx is done
// first. A non-positive d returns immediately.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
