package export

import (
	"time"

	"personalab/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusObserver exports render metrics
type PrometheusObserver struct {
	duration *prometheus.HistogramVec
	renders  *prometheus.CounterVec
	bytes    *prometheus.CounterVec
	hits     *prometheus.CounterVec
}

// NewPrometheusObserver registers the export metrics on reg, or the default
// registerer when reg is nil. Registering twice reuses the first collectors
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &PrometheusObserver{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: "export",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering one artifact.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"format"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "export",
			Name:      "renders_total",
			Help:      "Rendered artifacts by format and outcome.",
		}, []string{"format", "outcome"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "export",
			Name:      "rendered_bytes_total",
			Help:      "Bytes produced by successful renders.",
		}, []string{"format"}),
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "export",
			Name:      "cache_hits_total",
			Help:      "Artifacts served from the render cache.",
		}, []string{"format"}),
	}

	var err error
	if o.duration, err = metrics.Register(reg, o.duration); err != nil {
		return nil, err
	}
	if o.renders, err = metrics.Register(reg, o.renders); err != nil {
		return nil, err
	}
	if o.bytes, err = metrics.Register(reg, o.bytes); err != nil {
		return nil, err
	}
	if o.hits, err = metrics.Register(reg, o.hits); err != nil {
		return nil, err
	}
	return o, nil
}

// Rendered implements Observer
func (o *PrometheusObserver) Rendered(f Format, took time.Duration, size int, err error) {
	if o == nil {
		return
	}
	o.duration.WithLabelValues(string(f)).Observe(took.Seconds())
	if err != nil {
		o.renders.WithLabelValues(string(f), "error").Inc()
		return
	}
	o.renders.WithLabelValues(string(f), "ok").Inc()
	o.bytes.WithLabelValues(string(f)).Add(float64(size))
}

// CacheHit implements Observer
func (o *PrometheusObserver) CacheHit(f Format) {
	if o == nil {
		return
	}
	o.hits.WithLabelValues(string(f)).Inc()
}
