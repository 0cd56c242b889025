// AngelaMos | 2026
// billing_test.go

package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/om-backend/internal/config"
	"github.com/carterperez-dev/om-backend/internal/core"
)

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"event":"subscription.activated"}`)
	sig := Sign(body, "whsec")

	assert.True(t, VerifySignature(body, sig, "whsec"))
	assert.True(t, VerifySignature(body, " "+sig+" ", "whsec"))
	assert.False(t, VerifySignature(body, sig, "other"))
	assert.False(t, VerifySignature(append(body, ' '), sig, "whsec"))
	assert.False(t, VerifySignature(body, "", "whsec"))
	assert.False(t, VerifySignature(body, sig, ""))
	assert.False(t, VerifySignature(body, "zz", "whsec"))
}

func TestStubProcessor(t *testing.T) {
	p := NewStubProcessor()
	pattern := regexp.MustCompile(`^sub_[a-z0-9]{9}$`)

	first, err := p.CreateSubscription(context.Background(), "plan_monthly", "a@om.test")
	require.NoError(t, err)
	second, err := p.CreateSubscription(context.Background(), "plan_monthly", "a@om.test")
	require.NoError(t, err)

	assert.Regexp(t, pattern, first.ID)
	assert.Equal(t, "created", first.Status)
	assert.Equal(t, "https://rzp.io/i/mock_link", first.ShortURL)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRazorpayClientCreateSubscription(t *testing.T) {
	var got createSubscriptionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/subscriptions", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_key", user)
		assert.Equal(t, "rzp_secret", pass)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"sub_live123","status":"created","short_url":"https://rzp.io/i/abc"}`))
	}))
	defer srv.Close()

	c := NewRazorpayClient(config.RazorpayConfig{
		KeyID:     "rzp_key",
		KeySecret: "rzp_secret",
		BaseURL:   srv.URL + "/",
		Timeout:   time.Second,
	})

	sub, err := c.CreateSubscription(context.Background(), "plan_monthly", "a@om.test")
	require.NoError(t, err)

	assert.Equal(t, "sub_live123", sub.ID)
	assert.Equal(t, "https://rzp.io/i/abc", sub.ShortURL)
	assert.Equal(t, "plan_monthly", got.PlanID)
	assert.Equal(t, 1, got.CustomerNotify)
	assert.Equal(t, 12, got.TotalCount)
	assert.Equal(t, "a@om.test", got.Notes["email"])
}

func TestRazorpayClientErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"api error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"plan not found"}}`))
		}},
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}},
		{"garbage body", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}},
		{"slow", func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewRazorpayClient(config.RazorpayConfig{
				KeyID:     "k",
				KeySecret: "s",
				BaseURL:   srv.URL,
				Timeout:   50 * time.Millisecond,
			})

			_, err := c.CreateSubscription(context.Background(), "plan_x", "")
			assert.ErrorIs(t, err, core.ErrExternalService)
		})
	}
}
