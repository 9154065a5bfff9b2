package services

import (
	"context"
	"time"
)

// resultOr runs call with its own timeout and returns its value, or the value
// of fallback when call fails. Enrichment call sites go through it so that no
// provider failure reaches the day pipeline.
func resultOr[T any](ctx context.Context, timeout time.Duration, call func(context.Context) (T, error), fallback func(error) T) T {
	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	v, err := call(callCtx)
	if err != nil {
		return fallback(err)
	}
	return v
}
