package timing

import (
	"context"
	"time"
)

// Options configures [Retry] and [RetryValue].
type Options struct {
	// Retries is the number of additional attempts after the first
	// failure; total attempts = Retries + 1.
	Retries int
	// Delay is the wait between attempts.
	Delay time.Duration
	// Backoff doubles the wait per failed attempt: the wait after
	// failed attempt i (0-based) is Delay * 2^i.
	Backoff bool
}

// DefaultOptions is used when Retry is called without options:
// 4 total attempts, one second apart, no backoff.
var DefaultOptions = Options{Retries: 3, Delay: time.Second}

// Retry invokes op, retrying on failure per opts (or [DefaultOptions]
// when omitted; passing explicit options uses them verbatim, so
// Options{} means a single attempt). The first success wins; when every
// attempt fails, the last attempt's error is returned. The wait between
// attempts aborts with ctx.Err() if ctx is done.
func Retry(ctx context.Context, op func(context.Context) error, opts ...Options) error {
	_, err := RetryValue(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	}, opts...)
	return err
}

// RetryValue is [Retry] for operations producing a value.
func RetryValue[T any](ctx context.Context, op func(context.Context) (T, error), opts ...Options) (T, error) {
	o := DefaultOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	var zero T
	var lastErr error
	for attempt := 0; attempt <= o.Retries; attempt++ {
		if attempt > 0 {
			wait := o.Delay
			if o.Backoff {
				// keyed to the failed attempt's own index, so the
				// schedule is deterministic: d, 2d, 4d, ...
				wait = o.Delay << (attempt - 1)
			}
			if err := Sleep(ctx, wait); err != nil {
				return zero, err
			}
		}
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
	}
	return zero, lastErr
}
