// Package metrics records operation and remote call outcomes in Prometheus format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Recorder holds the osadmin collectors on a private registry.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	operationTotal    *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	remoteCallsTotal  *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operationTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "osadmin",
				Name:      "operation_total",
				Help:      "Total number of administrative operations by result",
			},
			[]string{"operation", "result"},
		),
		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "osadmin",
				Name:      "operation_duration_seconds",
				Help:      "Duration of administrative operations in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
			},
			[]string{"operation"},
		),
		remoteCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "osadmin",
				Name:      "remote_calls_total",
				Help:      "Total number of OpenStack API calls by service, call and result",
			},
			[]string{"service", "call", "result"},
		),
	}

	r.registry.MustRegister(r.operationTotal, r.operationDuration, r.remoteCallsTotal)
	return r
}

// Registry returns the registry the collectors live on.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveOperation records the outcome and duration of one operation.
func (r *Recorder) ObserveOperation(operation string, ok bool, d time.Duration) {
	if r == nil {
		return
	}
	r.operationTotal.WithLabelValues(operation, result(ok)).Inc()
	r.operationDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// ObserveRemoteCall records one API call against an OpenStack service.
func (r *Recorder) ObserveRemoteCall(service, call string, err error) {
	if r == nil {
		return
	}
	r.remoteCallsTotal.WithLabelValues(service, call, result(err == nil)).Inc()
}

// WriteTextfile writes all collected metrics to path in the text exposition
// format read by the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}

func result(ok bool) string {
	if ok {
		return ResultSuccess
	}
	return ResultFailure
}
