package pathjson

import "github.com/prometheus/client_golang/prometheus"

// MetricsRecorder observes engine activity. Implementations must be
// safe for concurrent use if a single process runs multiple Engines
// sharing one recorder.
type MetricsRecorder interface {
	BytesPushed(n int)
	ValueEmitted()
	ParseError()
}

// noopMetrics is the default MetricsRecorder: every call is a no-op, so
// constructing an Engine without WithMetrics costs nothing.
type noopMetrics struct{}

func (noopMetrics) BytesPushed(int) {}
func (noopMetrics) ValueEmitted() {}
func (noopMetrics) ParseError() {}

// PrometheusMetrics is a MetricsRecorder backed by client_golang
// counters, registered under the "pathjson" namespace.
type PrometheusMetrics struct {
	bytesPushed    prometheus.Counter
	valuesEmitted  prometheus.Counter
	parseErrors    prometheus.Counter
}

// NewPrometheusMetrics constructs and registers the counters against
// reg. Passing prometheus.DefaultRegisterer wires them into the global
// /metrics handler the way client_golang's own examples do.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		bytesPushed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pathjson",
			Name:      "bytes_pushed_total",
			Help:      "Total bytes handed to Engine.Push.",
		}),
		valuesEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pathjson",
			Name:      "values_emitted_total",
			Help:      "Total (path, value) pairs matched and emitted.",
		}),
		parseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pathjson",
			Name:      "parse_errors_total",
			Help:      "Total sessions that ended in a parse error.",
		}),
	}
	reg.MustRegister(m.bytesPushed, m.valuesEmitted, m.parseErrors)
	return m
}

func (m *PrometheusMetrics) BytesPushed(n int) { m.bytesPushed.Add(float64(n)) }
func (m *PrometheusMetrics) ValueEmitted()     { m.valuesEmitted.Inc() }
func (m *PrometheusMetrics) ParseError()       { m.parseErrors.Inc() }
