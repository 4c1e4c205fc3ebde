package rpc

import (
	"context"
	"errors"
)

// Failover tries transports in priority order until one succeeds.
type Failover struct {
	transports []Transport
	onFailure  func(ctx context.Context, req *Request, err error)
}

// FailoverOption configures Failover.
type FailoverOption func(*Failover)

// WithFailureHook is invoked for every endpoint failure that is recovered by
// a later endpoint. The final failure is not reported here.
func WithFailureHook(hook func(ctx context.Context, req *Request, err error)) FailoverOption {
	return func(f *Failover) {
		f.onFailure = hook
	}
}

// NewFailover builds a multiplexer over transports in the given order.
func NewFailover(transports []Transport, opts ...FailoverOption) (*Failover, error) {
	if len(transports) == 0 {
		return nil, errors.New("at least one transport is required")
	}
	f := &Failover{transports: append([]Transport(nil), transports...)}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *Failover) Call(ctx context.Context, req *Request) (*Response, error) {
	var lastErr error
	for i, t := range f.transports {
		if i > 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		resp, err := t.Call(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if i < len(f.transports)-1 && f.onFailure != nil {
			f.onFailure(ctx, req, err)
		}
	}
	return nil, lastErr
}
