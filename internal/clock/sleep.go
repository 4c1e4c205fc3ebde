// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepFunc matches SleepWithContext so callers can inject a fake.
type SleepFunc func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WaitOrSignal waits for the duration, a value on signal, or context cancellation.
// The received value is returned with ok set when the signal fired first.
func WaitOrSignal[T any](ctx context.Context, d time.Duration, signal <-chan T) (value T, ok bool, err error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return value, false, ctx.Err()
	case v, open := <-signal:
		return v, open, nil
	case <-timer.C:
		return value, false, nil
	}
}
