// AngelaMos | 2026
// metrics.go

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "om"

// Recommendation outcomes.
const (
	OutcomeAI         = "ai"
	OutcomeOnboarding = "onboarding"
	OutcomeFallback   = "fallback"
)

// Webhook outcomes.
const (
	WebhookApplied   = "applied"
	WebhookIgnored   = "ignored"
	WebhookDuplicate = "duplicate"
	WebhookRejected  = "rejected"
)

type Collector struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	recommendations *prometheus.CounterVec
	webhooks        *prometheus.CounterVec
	events          *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Recommendations served by outcome.",
		}, []string{"outcome"}),
		webhooks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_webhooks_total",
			Help:      "Payment webhooks by outcome.",
		}, []string{"outcome"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analytics_events_total",
			Help:      "Analytics events by type.",
		}, []string{"event"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.recommendations,
		c.webhooks,
		c.events,
	)

	return c
}

func (c *Collector) RecordHTTPRequest(
	method, route string,
	status int,
	duration time.Duration,
) {
	if route == "" {
		route = "unmatched"
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordRecommendation(outcome string) {
	c.recommendations.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordWebhook(outcome string) {
	c.webhooks.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordEvent(event string) {
	c.events.WithLabelValues(event).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
