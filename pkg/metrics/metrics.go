package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	upstreamTotal       *prometheus.CounterVec
	upstreamDuration    *prometheus.HistogramVec
	fallbackTotal       *prometheus.CounterVec
	staleResponses      *prometheus.CounterVec
	liveSessions        prometheus.Gauge
}

// New создает и регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		upstreamTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of calls to upstream services",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Upstream call latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		fallbackTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "degraded_responses_total",
			Help:        "Read operations answered in degraded mode",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		staleResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "stale_responses_discarded_total",
			Help:        "Upstream responses discarded because a newer request was issued",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		liveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "live_sessions",
			Help:        "Number of booking sessions held in memory",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.upstreamTotal,
		m.upstreamDuration,
		m.fallbackTotal,
		m.staleResponses,
		m.liveSessions,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveUpstream фиксирует вызов внешнего сервиса
func (m *Metrics) ObserveUpstream(operation, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.upstreamTotal.WithLabelValues(operation, outcome).Inc()
	m.upstreamDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncDegraded фиксирует ответ в деградированном режиме
func (m *Metrics) IncDegraded(kind string) {
	if m == nil {
		return
	}
	m.fallbackTotal.WithLabelValues(kind).Inc()
}

// IncStaleResponse фиксирует отброшенный устаревший ответ
func (m *Metrics) IncStaleResponse(kind string) {
	if m == nil {
		return
	}
	m.staleResponses.WithLabelValues(kind).Inc()
}

// SetLiveSessions выставляет число сессий в памяти
func (m *Metrics) SetLiveSessions(n int) {
	if m == nil {
		return
	}
	m.liveSessions.Set(float64(n))
}
