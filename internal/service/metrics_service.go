package service

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService owns the Prometheus registry and the counters the
// operations team watches: request latency, cache effectiveness and the
// loan lifecycle.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	loansAssigned   prometheus.Counter
	loansReturned   prometheus.Counter
	problemsOpened  *prometheus.CounterVec
}

// NewMetricsService registers the collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	loansAssigned := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "panol_loans_assigned_total",
		Help: "Total annual toolbox loans assigned",
	})

	loansReturned := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "panol_loans_returned_total",
		Help: "Total toolbox loans returned",
	})

	problemsOpened := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "panol_problem_items_total",
		Help: "Problem reports opened by type",
	}, []string{"tipo"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheHits, cacheMisses, loansAssigned, loansReturned, problemsOpened, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		loansAssigned:   loansAssigned,
		loansReturned:   loansReturned,
		problemsOpened:  problemsOpened,
	}
}

// Handler exposes the scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// RecordRequest observes one HTTP request.
func (s *MetricsService) RecordRequest(method, path string, status int, duration time.Duration) {
	if s == nil {
		return
	}
	labels := []string{method, path, strconv.Itoa(status)}
	s.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(labels...).Inc()
}

// RecordCacheLookup counts a cache hit or miss.
func (s *MetricsService) RecordCacheLookup(hit bool) {
	if s == nil {
		return
	}
	if hit {
		s.cacheHits.Inc()
	} else {
		s.cacheMisses.Inc()
	}
}

// RecordLoanAssigned counts an assigned loan.
func (s *MetricsService) RecordLoanAssigned() {
	if s == nil {
		return
	}
	s.loansAssigned.Inc()
}

// RecordLoanReturned counts a processed return and the problems it opened.
func (s *MetricsService) RecordLoanReturned(missing, damaged int) {
	if s == nil {
		return
	}
	s.loansReturned.Inc()
	if missing > 0 {
		s.problemsOpened.WithLabelValues("FALTANTE").Add(float64(missing))
	}
	if damaged > 0 {
		s.problemsOpened.WithLabelValues("DAÑADO").Add(float64(damaged))
	}
}
