package metrics

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/rpc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var rpcTrackedErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "blockinsight7000",
	Subsystem: "rpc_pipeline",
	Name:      "tracked_errors_total",
	Help:      "Count of transport, failover and protocol errors seen by the RPC pipeline.",
}, []string{"kind", "method", "network"})

// RPCErrors counts pipeline error records. It satisfies rpc.ErrorTracker.
type RPCErrors struct {
	network model.Network
}

func NewRPCErrors(network model.Network) *RPCErrors {
	if network == "" {
		network = "unknown"
	}
	return &RPCErrors{network: network}
}

func (m RPCErrors) Track(_ context.Context, rec rpc.ErrorRecord) error {
	method := rec.Method
	if method == "" {
		method = "unknown"
	}
	rpcTrackedErrorsTotal.WithLabelValues(string(rec.Kind), method, string(m.network)).Inc()
	return nil
}
