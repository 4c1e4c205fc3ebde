package rpc

import "context"

const DefaultCapabilityHeader = "X-Archive-Lookup"

// DefaultCapabilityMethods need the archive lookup enabled upstream.
var DefaultCapabilityMethods = []string{
	"getSignaturesForAddress",
	"getTransaction",
}

// CapabilityRouter sends allow-listed methods to the transport with the
// capability enabled and everything else to the one without it. Both
// transports point at the same endpoint.
type CapabilityRouter struct {
	enabled  Transport
	disabled Transport
	methods  map[string]struct{}
}

// NewCapabilityRouter builds a router over a fixed method allow-list.
func NewCapabilityRouter(enabled, disabled Transport, methods []string) *CapabilityRouter {
	set := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		set[m] = struct{}{}
	}
	return &CapabilityRouter{enabled: enabled, disabled: disabled, methods: set}
}

// Enabled reports whether method is routed to the enabled transport.
func (r *CapabilityRouter) Enabled(method string) bool {
	_, ok := r.methods[method]
	return ok
}

func (r *CapabilityRouter) Call(ctx context.Context, req *Request) (*Response, error) {
	if r.Enabled(req.Method()) {
		return r.enabled.Call(ctx, req)
	}
	return r.disabled.Call(ctx, req)
}
