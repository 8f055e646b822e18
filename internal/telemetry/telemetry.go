// Package telemetry provides OpenTelemetry instrumentation for harmscan.
// It exports Prometheus metrics and provides tracing capabilities.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "harmscan"

// Metrics holds all harmscan Prometheus metrics.
type Metrics struct {
	// Analysis metrics
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	HarmScore        prometheus.Histogram
	RiskLevelTotal   *prometheus.CounterVec
	DegradedTotal    prometheus.Counter

	// Pattern metrics
	PatternHitsTotal *prometheus.CounterVec

	// Intent metrics
	IntentTotal *prometheus.CounterVec

	// Sidecar metrics
	ModelCallsTotal  *prometheus.CounterVec
	ModelCallLatency prometheus.Histogram
	VectorCallsTotal *prometheus.CounterVec

	// Trend metrics
	TrendQueriesTotal *prometheus.CounterVec
	SpikesTotal       *prometheus.CounterVec
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initAnalysisMetrics(m)
	initSidecarMetrics(m)
	initTrendMetrics(m)
	return m
}

func initAnalysisMetrics(m *Metrics) {
	m.AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "harmscan_analyses_total",
		Help: "Total analysis requests by operation (analyze, harm, intent, verify, trends, explain)",
	}, []string{"operation"})

	m.AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "harmscan_analysis_duration_seconds",
		Help:    "Time to complete one analysis operation",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
	}, []string{"operation"})

	m.HarmScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "harmscan_harm_score",
		Help:    "Distribution of fused harm scores",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	})

	m.RiskLevelTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "harmscan_risk_level_total",
		Help: "Total assessments by risk level",
	}, []string{"level"})

	m.DegradedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "harmscan_degraded_total",
		Help: "Total assessments served without the model backend",
	})

	m.PatternHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "harmscan_pattern_hits_total",
		Help: "Total harm pattern category hits",
	}, []string{"category"})

	m.IntentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "harmscan_intent_total",
		Help: "Total intent classifications by label",
	}, []string{"intent"})
}

func initSidecarMetrics(m *Metrics) {
	m.ModelCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "harmscan_model_calls_total",
		Help: "Total harm-model sidecar calls by outcome",
	}, []string{"outcome"})

	m.ModelCallLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "harmscan_model_call_latency_seconds",
		Help:    "Latency of harm-model sidecar calls",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
	})

	m.VectorCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "harmscan_vector_calls_total",
		Help: "Total narrative-index sidecar calls by outcome",
	}, []string{"outcome"})
}

func initTrendMetrics(m *Metrics) {
	m.TrendQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "harmscan_trend_queries_total",
		Help: "Total trend queries by category",
	}, []string{"category"})

	m.SpikesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "harmscan_trend_spikes_total",
		Help: "Total spike detections by category",
	}, []string{"category"})
}

// ObserveAnalysis records one completed analysis operation.
func (m *Metrics) ObserveAnalysis(operation string, duration time.Duration) {
	m.AnalysesTotal.WithLabelValues(operation).Inc()
	m.AnalysisDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveModelCall records one harm-model sidecar call.
func (m *Metrics) ObserveModelCall(outcome string, duration time.Duration) {
	m.ModelCallsTotal.WithLabelValues(outcome).Inc()
	m.ModelCallLatency.Observe(duration.Seconds())
}
