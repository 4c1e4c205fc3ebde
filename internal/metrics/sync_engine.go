package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	PassSuccess = "success"
	PassError   = "error"
	PassSkipped = "skipped"
)

var (
	syncPassTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync_engine",
		Name:      "passes_total",
		Help:      "Count of synchronization passes by outcome.",
	}, []string{"status"})

	syncPassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync_engine",
		Name:      "pass_duration_seconds",
		Help:      "Duration of synchronization passes.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"status"})

	syncNewTransactionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync_engine",
		Name:      "new_transactions_total",
		Help:      "Count of transactions appended to account histories.",
	})

	syncDroppedTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync_engine",
		Name:      "dropped_transactions_total",
		Help:      "Count of fetched transactions that could not be mapped.",
	}, []string{"network"})

	syncEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync_engine",
		Name:      "events_total",
		Help:      "Count of change events emitted.",
	}, []string{"event", "status"})
)

// SyncEngine tracks metrics for synchronization passes.
type SyncEngine struct{}

func NewSyncEngine() *SyncEngine {
	return &SyncEngine{}
}

// ObservePass records a pass outcome. Skipped passes are reported with skipped status.
func (m SyncEngine) ObservePass(err error, skipped bool, newTransactions int, started time.Time) {
	status := PassSuccess
	switch {
	case err != nil:
		status = PassError
	case skipped:
		status = PassSkipped
	}
	syncPassTotal.WithLabelValues(status).Inc()
	syncPassDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if newTransactions > 0 {
		syncNewTransactionsTotal.Add(float64(newTransactions))
	}
}

// ObserveDropped counts unmappable transactions of one network.
func (m SyncEngine) ObserveDropped(network string, n int) {
	if n > 0 {
		syncDroppedTransactionsTotal.WithLabelValues(network).Add(float64(n))
	}
}

// ObserveEvent records delivery of one change event.
func (m SyncEngine) ObserveEvent(event string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	syncEventsTotal.WithLabelValues(event, status).Inc()
}
