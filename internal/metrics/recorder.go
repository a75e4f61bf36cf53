package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "smc"

// Recorder счётчики цикла опроса.
type Recorder struct {
	cycles        prometheus.Counter
	signals       *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	cycleDuration prometheus.Histogram
}

// NewRegistry отдельный реестр с метриками процесса и рантайма.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		cycles: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_total",
			Help:      "Completed polling cycles",
		}),
		signals: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signals_total",
			Help:      "Signals delivered to the notifier",
		}, []string{"symbol", "type"}),
		errorsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Per-instrument failures by kind",
		}, []string{"kind"}),
		cycleDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycle_duration_seconds",
			Help:      "Duration of one pass over all symbols",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ObserveCycle фиксирует завершённый цикл.
func (r *Recorder) ObserveCycle(d time.Duration) {
	r.cycles.Inc()
	r.cycleDuration.Observe(d.Seconds())
}

func (r *Recorder) RecordSignal(symbol, side string) {
	r.signals.WithLabelValues(symbol, side).Inc()
}

func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}
