// Package rpc composes JSON-RPC transports into a resilient request pipeline.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const batchMethod = "batch"

// Transport performs one JSON-RPC request. Every pipeline layer implements it.
type Transport interface {
	Call(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

func (f TransportFunc) Call(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// Call is one method invocation.
type Call struct {
	Method string `json:"method"`
	Params []any  `json:"params,omitempty"`
}

// Request is a single call or a batch of calls sent in one round trip.
type Request struct {
	Calls []Call
	Batch bool
}

// NewRequest builds a single-call request.
func NewRequest(method string, params ...any) *Request {
	return &Request{Calls: []Call{{Method: method, Params: params}}}
}

// NewBatchRequest builds a request sent as a JSON-RPC array, even for one call.
func NewBatchRequest(calls ...Call) *Request {
	return &Request{Calls: calls, Batch: true}
}

// Method names the request for routing and observability. A batch of
// uniform calls reports the shared method.
func (r *Request) Method() string {
	if r == nil || len(r.Calls) == 0 {
		return ""
	}
	method := r.Calls[0].Method
	for _, c := range r.Calls[1:] {
		if c.Method != method {
			return batchMethod
		}
	}
	return method
}

// Result is the outcome of one call inside a response.
type Result struct {
	Result json.RawMessage
	Error  *RPCError
}

// Response holds results in the order of the request's calls.
type Response struct {
	Endpoint string
	Results  []Result
	Raw      json.RawMessage
}

// Err returns the first in-band error carried by the response.
func (r *Response) Err() *RPCError {
	if r == nil {
		return nil
	}
	for i := range r.Results {
		if r.Results[i].Error != nil {
			return r.Results[i].Error
		}
	}
	return nil
}

// Decode unmarshals the i-th result, surfacing its in-band error.
func (r *Response) Decode(i int, v any) error {
	if r == nil || i < 0 || i >= len(r.Results) {
		return fmt.Errorf("result %d out of range", i)
	}
	res := r.Results[i]
	if res.Error != nil {
		return res.Error
	}
	if len(res.Result) == 0 {
		return errors.New("empty result")
	}
	if err := json.Unmarshal(res.Result, v); err != nil {
		return fmt.Errorf("decode result %d: %w", i, err)
	}
	return nil
}

// RPCError is an application error returned inside a successful response.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// TransportError is a failed round trip to one endpoint.
type TransportError struct {
	Endpoint   string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: http status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// EndpointOf recovers the endpoint responsible for err, if any.
func EndpointOf(err error) string {
	var terr *TransportError
	if errors.As(err, &terr) {
		return terr.Endpoint
	}
	return ""
}

// StatusCodeOf recovers the HTTP status carried by err, if any.
func StatusCodeOf(err error) int {
	var terr *TransportError
	if errors.As(err, &terr) {
		return terr.StatusCode
	}
	return 0
}
