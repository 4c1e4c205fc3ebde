package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"go.uber.org/ratelimit"
)

const (
	jsonRPCVersion   = "2.0"
	maxErrorBodySize = 512
)

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *uint64         `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// HTTPClient sends JSON-RPC 2.0 requests to a single endpoint.
type HTTPClient struct {
	endpoint   string
	header     http.Header
	httpClient *http.Client
	limiter    ratelimit.Limiter
	metrics    Metrics
	nextID     atomic.Uint64
}

// HTTPOption configures an HTTPClient.
type HTTPOption func(*HTTPClient)

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) HTTPOption {
	return func(c *HTTPClient) {
		c.header.Set(key, value)
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(c *HTTPClient) {
		c.httpClient = client
	}
}

// WithRateLimit caps outgoing requests per second. Non-positive disables throttling.
func WithRateLimit(rps int) HTTPOption {
	return func(c *HTTPClient) {
		if rps > 0 {
			c.limiter = ratelimit.New(rps)
		}
	}
}

// WithLimiter shares a limiter between clients of the same endpoint.
func WithLimiter(limiter ratelimit.Limiter) HTTPOption {
	return func(c *HTTPClient) {
		if limiter != nil {
			c.limiter = limiter
		}
	}
}

// WithMetrics observes every round trip.
func WithMetrics(m Metrics) HTTPOption {
	return func(c *HTTPClient) {
		c.metrics = m
	}
}

// NewHTTPClient builds a client for endpoint.
func NewHTTPClient(endpoint string, opts ...HTTPOption) (*HTTPClient, error) {
	if endpoint == "" {
		return nil, errors.New("rpc endpoint is required")
	}
	c := &HTTPClient{
		endpoint:   endpoint,
		header:     make(http.Header),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    ratelimit.NewUnlimited(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the URL the client talks to.
func (c *HTTPClient) Endpoint() string {
	return c.endpoint
}

// Call posts the request and decodes per-call results. Protocol errors in
// the body are returned inside the response, never as err.
func (c *HTTPClient) Call(ctx context.Context, req *Request) (resp *Response, err error) {
	started := time.Now()
	defer func() {
		if c.metrics == nil {
			return
		}
		observed := err
		if observed == nil && resp.Err() != nil {
			observed = resp.Err()
		}
		c.metrics.Observe(req.Method(), observed, started)
	}()

	if req == nil || len(req.Calls) == 0 {
		return nil, c.fail(0, "", errors.New("empty request"))
	}

	firstID := c.nextID.Add(uint64(len(req.Calls))) - uint64(len(req.Calls)) + 1
	envelopes := make([]rpcRequest, len(req.Calls))
	for i, call := range req.Calls {
		envelopes[i] = rpcRequest{
			JSONRPC: jsonRPCVersion,
			ID:      firstID + uint64(i),
			Method:  call.Method,
			Params:  call.Params,
		}
	}

	var payload []byte
	if req.Batch {
		payload, err = json.Marshal(envelopes)
	} else {
		payload, err = json.Marshal(envelopes[0])
	}
	if err != nil {
		return nil, c.fail(0, "", fmt.Errorf("marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, c.fail(0, "", fmt.Errorf("build request: %w", err))
	}
	httpReq.Header = c.header.Clone()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	c.limiter.Take()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.fail(0, "", fmt.Errorf("do request: %w", err))
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, c.fail(httpResp.StatusCode, "", fmt.Errorf("read body: %w", err))
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, c.fail(httpResp.StatusCode, truncate(body), errors.New(http.StatusText(httpResp.StatusCode)))
	}

	results, err := decodeResults(body, envelopes)
	if err != nil {
		return nil, c.fail(httpResp.StatusCode, truncate(body), err)
	}
	return &Response{Endpoint: c.endpoint, Results: results, Raw: body}, nil
}

func (c *HTTPClient) fail(status int, body string, err error) error {
	return &TransportError{Endpoint: c.endpoint, StatusCode: status, Body: body, Err: err}
}

func decodeResults(body []byte, envelopes []rpcRequest) ([]Result, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("empty response body")
	}

	var decoded []rpcResponse
	if trimmed[0] == '{' {
		var single rpcResponse
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		// A whole-batch rejection applies to every call.
		if len(envelopes) > 1 && single.Error != nil {
			results := make([]Result, len(envelopes))
			for i := range results {
				results[i] = Result{Error: single.Error}
			}
			return results, nil
		}
		decoded = []rpcResponse{single}
	} else if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return nil, fmt.Errorf("decode batch response: %w", err)
	}

	if len(envelopes) == 1 && len(decoded) == 1 {
		return []Result{{Result: decoded[0].Result, Error: decoded[0].Error}}, nil
	}

	byID := make(map[uint64]rpcResponse, len(decoded))
	for _, r := range decoded {
		if r.ID != nil {
			byID[*r.ID] = r
		}
	}
	results := make([]Result, len(envelopes))
	for i, env := range envelopes {
		r, ok := byID[env.ID]
		if !ok {
			return nil, fmt.Errorf("missing response for id %d", env.ID)
		}
		results[i] = Result{Result: r.Result, Error: r.Error}
	}
	return results, nil
}

func truncate(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= maxErrorBodySize {
		return s
	}
	cut := maxErrorBodySize
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
