package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the AQI API.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec // labels: route, status
	AQIComputations *prometheus.CounterVec // labels: outcome={ok,no_valid_pollutants}

	// Satellite retrieval metrics.
	SatelliteFetches *prometheus.CounterVec   // labels: pollutant, outcome={success,error,empty}
	FetchDuration    *prometheus.HistogramVec // labels: pollutant
	CacheLookups     *prometheus.CounterVec   // labels: result={hit,miss}
	MockFallbacks    *prometheus.CounterVec   // labels: pollutant
	HarmonyEnabled   prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aqi_api",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "status"}),
		AQIComputations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aqi_api",
			Name:      "aqi_computations_total",
			Help:      "AQI computations by outcome.",
		}, []string{"outcome"}),
		SatelliteFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aqi_api",
			Name:      "satellite_fetches_total",
			Help:      "Satellite data fetches by pollutant and outcome.",
		}, []string{"pollutant", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "aqi_api",
			Name:      "satellite_fetch_duration_seconds",
			Help:      "Satellite fetch duration in seconds, including job polling.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"pollutant"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aqi_api",
			Name:      "satellite_cache_total",
			Help:      "Satellite data cache lookups by result.",
		}, []string{"result"}),
		MockFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aqi_api",
			Name:      "mock_fallbacks_total",
			Help:      "Requests served mock data after a failed satellite fetch, by pollutant.",
		}, []string{"pollutant"}),
		HarmonyEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "aqi_api",
			Name:      "harmony_enabled",
			Help:      "1 when the Harmony satellite provider is configured, 0 when serving mock data only.",
		}),
	}

	prometheus.MustRegister(
		m.HTTPRequests,
		m.AQIComputations,
		m.SatelliteFetches,
		m.FetchDuration,
		m.CacheLookups,
		m.MockFallbacks,
		m.HarmonyEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		HTTPRequests:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "aqi_api", Name: "http_requests_total"}, []string{"route", "status"}),
		AQIComputations:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "aqi_api", Name: "aqi_computations_total"}, []string{"outcome"}),
		SatelliteFetches: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "aqi_api", Name: "satellite_fetches_total"}, []string{"pollutant", "outcome"}),
		FetchDuration:    prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "aqi_api", Name: "satellite_fetch_duration_seconds"}, []string{"pollutant"}),
		CacheLookups:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "aqi_api", Name: "satellite_cache_total"}, []string{"result"}),
		MockFallbacks:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "aqi_api", Name: "mock_fallbacks_total"}, []string{"pollutant"}),
		HarmonyEnabled:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "aqi_api", Name: "harmony_enabled"}),
	}
}
