package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hongminglow/dataflow-be/internal/config"
	"github.com/hongminglow/dataflow-be/internal/store"
)

// Metrics owns a private Prometheus registry for the service.
type Metrics struct {
	registry   *prometheus.Registry
	httpReqCnt *prometheus.CounterVec
	httpDur    *prometheus.HistogramVec
	httpInfl   *prometheus.GaugeVec
	actionCnt  *prometheus.CounterVec
	persistCnt *prometheus.CounterVec
}

func New(cfg config.MetricsConfig) *Metrics {
	ns := cfg.Namespace
	buckets := cfg.Buckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	httpReqCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "http_requests_total"}, []string{"method", "route", "status"})
	httpDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: ns, Name: "http_request_duration_seconds", Buckets: buckets}, []string{"method", "route", "status"})
	httpInfl := prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: ns, Name: "http_requests_inflight"}, []string{"route"})
	r.MustRegister(httpReqCnt, httpDur, httpInfl)

	actionCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "store_actions_total"}, []string{"type"})
	persistCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "storage_writes_total"}, []string{"key", "result"})
	r.MustRegister(actionCnt, persistCnt)

	return &Metrics{
		registry:   r,
		httpReqCnt: httpReqCnt,
		httpDur:    httpDur,
		httpInfl:   httpInfl,
		actionCnt:  actionCnt,
		persistCnt: persistCnt,
	}
}

// HTTPStart marks a request in flight; call the returned func when it finishes.
func (m *Metrics) HTTPStart(route string) func(method string, status int) {
	m.httpInfl.WithLabelValues(route).Inc()
	start := time.Now()
	return func(method string, status int) {
		code := strconv.Itoa(status)
		m.httpReqCnt.WithLabelValues(method, route, code).Inc()
		m.httpDur.WithLabelValues(method, route, code).Observe(time.Since(start).Seconds())
		m.httpInfl.WithLabelValues(route).Dec()
	}
}

// ObserveAction is a store.Observer counting applied actions by type.
func (m *Metrics) ObserveAction(a store.Action) {
	m.actionCnt.WithLabelValues(a.Type()).Inc()
}

// ObservePersist counts a storage write for key.
func (m *Metrics) ObservePersist(key string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.persistCnt.WithLabelValues(key, result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
