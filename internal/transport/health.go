package transport

import (
	"sync/atomic"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the gRPC health service name reported for the sync engine.
const ServiceName = "walletsync.SyncEngine"

// Health mirrors sync pass outcomes into the gRPC health service.
type Health struct {
	server  *health.Server
	serving atomic.Bool
}

// NewHealth starts in NOT_SERVING until the first successful pass.
func NewHealth() *Health {
	h := &Health{server: health.NewServer()}
	h.SetServing(false)
	return h
}

func (h *Health) SetServing(serving bool) {
	h.serving.Store(serving)
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.server.SetServingStatus(ServiceName, status)
	h.server.SetServingStatus("", status)
}

func (h *Health) Serving() bool {
	return h.serving.Load()
}

// Server returns the gRPC health implementation to register.
func (h *Health) Server() healthpb.HealthServer {
	return h.server
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Health) Shutdown() {
	h.serving.Store(false)
	h.server.Shutdown()
}
