package rpc

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/clock"
	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts  = 4
	DefaultRetryBase    = 400 * time.Millisecond
	DefaultRetryCeiling = 1500 * time.Millisecond
)

// Retrying repeats failed calls with capped exponential back-off.
type Retrying struct {
	next        Transport
	logger      *zap.Logger
	maxAttempts int
	base        time.Duration
	ceiling     time.Duration
	sleep       clock.SleepFunc
}

// RetryOption configures Retrying.
type RetryOption func(*Retrying)

// WithMaxAttempts sets the total number of attempts, including the first.
func WithMaxAttempts(n int) RetryOption {
	return func(r *Retrying) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithBackoff sets the base delay and its ceiling.
func WithBackoff(base, ceiling time.Duration) RetryOption {
	return func(r *Retrying) {
		r.base = base
		r.ceiling = ceiling
	}
}

// WithSleep replaces the sleep function.
func WithSleep(sleep clock.SleepFunc) RetryOption {
	return func(r *Retrying) {
		r.sleep = sleep
	}
}

// NewRetrying wraps next.
func NewRetrying(next Transport, logger *zap.Logger, opts ...RetryOption) *Retrying {
	r := &Retrying{
		next:        next,
		logger:      logger,
		maxAttempts: DefaultMaxAttempts,
		base:        DefaultRetryBase,
		ceiling:     DefaultRetryCeiling,
		sleep:       clock.SleepWithContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Call returns the first successful response or the last error once all
// attempts are spent. Responses with in-band errors count as success.
func (r *Retrying) Call(ctx context.Context, req *Request) (*Response, error) {
	var lastErr error
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		resp, err := r.next.Call(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if attempt == r.maxAttempts-1 {
			break
		}

		delay := r.backoff(attempt)
		r.logger.Warn("rpc call failed, retrying",
			zap.String("method", req.Method()),
			zap.Int("attempt", attempt+1),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if sleepErr := r.sleep(ctx, delay); sleepErr != nil {
			return nil, sleepErr
		}
	}
	return nil, lastErr
}

func (r *Retrying) backoff(attempt int) time.Duration {
	delay := r.base
	for i := 0; i < attempt && delay < r.ceiling; i++ {
		delay *= 2
	}
	return min(delay, r.ceiling)
}
