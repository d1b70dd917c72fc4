// Package kvmetrics exposes operation counters for the cache dispatcher.
package kvmetrics

import "github.com/prometheus/client_golang/prometheus"

const (
	StatusOK                   = "ok"
	StatusConnectionError      = "connection_error"
	StatusSerializationError   = "serialization_error"
	StatusDeserializationError = "deserialization_error"
	StatusEngineError          = "engine_error"
)

var operationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "paystore_kv_operations_total",
		Help: "Total number of cache operations issued through the kv dispatcher",
	},
	[]string{"operation", "status"},
)

func init() {
	prometheus.MustRegister(operationsTotal)
}

// Record counts one dispatched operation with its outcome status.
func Record(operation, status string) {
	operationsTotal.WithLabelValues(operation, status).Inc()
}
