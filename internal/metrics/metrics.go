package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Service collects outbound HTTP client metrics. It implements the client's
// MetricsCollector interface.
type Service struct {
	requestDuration *prometheus.HistogramVec
	requestCount    *prometheus.CounterVec
	requestErrors   *prometheus.CounterVec
}

// NewService creates a metrics Service and registers its collectors on the
// given registerer.
func NewService(registerer prometheus.Registerer) (*Service, error) {
	s := &Service{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "outbound_http_request_duration_seconds",
			Help:    "Duration of outbound HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "outbound_http_requests_total",
			Help: "Total count of outbound HTTP requests.",
		}, []string{"method", "path", "status"}),
		requestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "outbound_http_request_errors_total",
			Help: "Total count of failed outbound HTTP requests.",
		}, []string{"method", "path"}),
	}

	for _, collector := range []prometheus.Collector{s.requestDuration, s.requestCount, s.requestErrors} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// RecordRequestDuration observes the duration of a completed request.
func (s *Service) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	s.requestDuration.WithLabelValues(method, path, strconv.Itoa(statusCode)).Observe(duration.Seconds())
}

// RecordRequestCount counts a completed request.
func (s *Service) RecordRequestCount(method, path string, statusCode int) {
	s.requestCount.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
}

// RecordRequestError counts a failed request.
func (s *Service) RecordRequestError(method, path string) {
	s.requestErrors.WithLabelValues(method, path).Inc()
}
