// AngelaMos | 2026
// metrics_test.go

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRecommendation(OutcomeAI)
	c.RecordRecommendation(OutcomeFallback)
	c.RecordRecommendation(OutcomeFallback)
	c.RecordWebhook(WebhookApplied)
	c.RecordEvent("signup")
	c.RecordEvent("mood_logged")
	c.RecordEvent("mood_logged")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.recommendations.WithLabelValues(OutcomeAI)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.recommendations.WithLabelValues(OutcomeFallback)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.webhooks.WithLabelValues(WebhookApplied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.events.WithLabelValues("signup")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.events.WithLabelValues("mood_logged")))
}

func TestRecordHTTPRequestLabelsUnmatched(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPRequest(http.MethodGet, "", http.StatusNotFound, 5*time.Millisecond)
	c.RecordHTTPRequest(http.MethodGet, "/api/chants", http.StatusOK, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		c.httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		c.httpRequests.WithLabelValues(http.MethodGet, "/api/chants", "200")))
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordWebhook(WebhookDuplicate)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `om_payment_webhooks_total{outcome="duplicate"} 1`)
}
