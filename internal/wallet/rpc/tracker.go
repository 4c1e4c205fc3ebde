package rpc

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

type ErrorKind string

const (
	KindTransport ErrorKind = "transport"
	KindProtocol  ErrorKind = "protocol"
	// KindFailover marks an endpoint failure recovered by a later endpoint.
	KindFailover ErrorKind = "failover"
)

// ErrorRecord is the structured report handed to an ErrorTracker.
type ErrorRecord struct {
	Kind       ErrorKind
	Method     string
	Endpoint   string
	StatusCode int
	Code       int
	Message    string
	Request    json.RawMessage
	Response   json.RawMessage
}

func transportRecord(kind ErrorKind, req *Request, err error) ErrorRecord {
	rec := ErrorRecord{
		Kind:       kind,
		Method:     req.Method(),
		Endpoint:   EndpointOf(err),
		StatusCode: StatusCodeOf(err),
		Message:    err.Error(),
		Request:    requestPayload(req),
	}
	var terr *TransportError
	if errors.As(err, &terr) && terr.Body != "" {
		rec.Response = json.RawMessage(quoteIfInvalid(terr.Body))
	}
	return rec
}

func protocolRecord(req *Request, resp *Response) ErrorRecord {
	rpcErr := resp.Err()
	return ErrorRecord{
		Kind:     KindProtocol,
		Method:   req.Method(),
		Endpoint: resp.Endpoint,
		Code:     rpcErr.Code,
		Message:  rpcErr.Message,
		Request:  requestPayload(req),
		Response: resp.Raw,
	}
}

func requestPayload(req *Request) json.RawMessage {
	if req == nil {
		return nil
	}
	raw, err := json.Marshal(req.Calls)
	if err != nil {
		return nil
	}
	return raw
}

func quoteIfInvalid(body string) []byte {
	if json.Valid([]byte(body)) {
		return []byte(body)
	}
	quoted, _ := json.Marshal(body)
	return quoted
}

// LogTracker writes records to a zap logger.
type LogTracker struct {
	logger *zap.Logger
}

func NewLogTracker(logger *zap.Logger) *LogTracker {
	return &LogTracker{logger: logger}
}

func (t *LogTracker) Track(_ context.Context, rec ErrorRecord) error {
	fields := []zap.Field{
		zap.String("kind", string(rec.Kind)),
		zap.String("method", rec.Method),
		zap.String("message", rec.Message),
	}
	if rec.Endpoint != "" {
		fields = append(fields, zap.String("endpoint", rec.Endpoint))
	}
	if rec.StatusCode != 0 {
		fields = append(fields, zap.Int("status", rec.StatusCode))
	}
	if rec.Code != 0 {
		fields = append(fields, zap.Int("code", rec.Code))
	}
	t.logger.Warn("rpc error tracked", fields...)
	return nil
}

// MultiTracker fans a record out to every tracker and joins their errors.
type MultiTracker []ErrorTracker

func (m MultiTracker) Track(ctx context.Context, rec ErrorRecord) error {
	var errs []error
	for _, t := range m {
		if t == nil {
			continue
		}
		if err := t.Track(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
