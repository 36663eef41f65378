package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultNamespace prefixes every collector metric name.
const DefaultNamespace = "trails"

// Collector owns a private prometheus registry with the trails metrics.
type Collector struct {
	registry *prometheus.Registry

	Resolutions     *prometheus.CounterVec
	SettingsChanges *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
}

// New creates a collector under namespace (DefaultNamespace when blank).
func New(namespace string) *Collector {
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		namespace = DefaultNamespace
	}
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Trail iframe resolutions by outcome",
		}, []string{"outcome"}),
		SettingsChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settings_changes_total",
			Help:      "Administrator changes to the trails settings",
		}, []string{"action"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served by the trails transport",
		}, []string{"method", "route", "status_code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of trails HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(c.Resolutions, c.SettingsChanges, c.HTTPRequests, c.HTTPDuration)
	return c
}

// Record counts a resolution outcome.
func (c *Collector) Record(outcome string) {
	if c == nil || outcome == "" {
		return
	}
	c.Resolutions.WithLabelValues(outcome).Inc()
}

// RecordSettingsChange counts a settings save or reset.
func (c *Collector) RecordSettingsChange(action string) {
	if c == nil || action == "" {
		return
	}
	c.SettingsChanges.WithLabelValues(action).Inc()
}

// RecordHTTPRequest tracks a served request.
func (c *Collector) RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// Handler serves the prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
