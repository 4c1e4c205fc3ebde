package rpc

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Observed reports failed and error-carrying calls to a tracker without
// changing what the caller sees.
type Observed struct {
	next    Transport
	tracker ErrorTracker
	logger  *zap.Logger
}

func NewObserved(next Transport, tracker ErrorTracker, logger *zap.Logger) *Observed {
	return &Observed{next: next, tracker: tracker, logger: logger}
}

func (o *Observed) Call(ctx context.Context, req *Request) (*Response, error) {
	resp, err := o.next.Call(ctx, req)
	switch {
	case err != nil:
		o.track(ctx, transportRecord(KindTransport, req, err))
		return nil, err
	case resp.Err() != nil:
		o.track(ctx, protocolRecord(req, resp))
		return resp, nil
	default:
		return resp, nil
	}
}

func (o *Observed) track(ctx context.Context, rec ErrorRecord) {
	trackError(ctx, o.tracker, o.logger, rec)
}

// trackError never lets the tracker affect the call outcome.
func trackError(ctx context.Context, tracker ErrorTracker, logger *zap.Logger, rec ErrorRecord) {
	if tracker == nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			logger.Error("error tracker panicked", zap.String("method", rec.Method), zap.String("panic", fmt.Sprint(p)))
		}
	}()
	if err := tracker.Track(ctx, rec); err != nil {
		logger.Warn("error tracker failed", zap.String("method", rec.Method), zap.Error(err))
	}
}
