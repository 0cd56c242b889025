// AngelaMos | 2026
// handler_test.go

package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/om-backend/internal/core"
	"github.com/carterperez-dev/om-backend/internal/middleware"
)

type failingProcessor struct{}

func (failingProcessor) CreateSubscription(context.Context, string, string) (*Subscription, error) {
	return nil, core.ErrExternalService
}

func webhookRequest(body []byte, signature string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	return req
}

func TestWebhookHandlerStatuses(t *testing.T) {
	body := subscriptionPayload(EventSubscriptionActivated, "seeker@om.test", 0)

	tests := []struct {
		name      string
		secret    string
		body      []byte
		signature string
		status    int
		plan      string
	}{
		{"valid", testSecret, body, Sign(body, testSecret), http.StatusOK, "PRO"},
		{"invalid signature", testSecret, body, Sign(body, "nope"), http.StatusBadRequest, "FREE"},
		{"unsigned", testSecret, body, "", http.StatusBadRequest, "FREE"},
		{"secret missing", "", body, Sign(body, testSecret), http.StatusInternalServerError, "FREE"},
		{"bad json", testSecret, []byte("{"), Sign([]byte("{"), testSecret), http.StatusBadRequest, "FREE"},
		{"too large", testSecret, bytes.Repeat([]byte("a"), maxWebhookBody+1), "x", http.StatusRequestEntityTooLarge, "FREE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWebhookFixture(tt.secret)
			h := NewHandler(NewStubProcessor(), f.svc)
			rec := httptest.NewRecorder()

			h.Webhook(rec, webhookRequest(tt.body, tt.signature))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.plan, f.seeker().plan)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
			}
		})
	}
}

type brokenBody struct{}

func (brokenBody) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestWebhookHandlerUnreadableBody(t *testing.T) {
	f := newWebhookFixture(testSecret)
	h := NewHandler(NewStubProcessor(), f.svc)
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", brokenBody{})
	h.Webhook(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), "PAYLOAD_TOO_LARGE")
	assert.Equal(t, "FREE", f.seeker().plan)
}

func TestCreateSubscriptionHandler(t *testing.T) {
	f := newWebhookFixture(testSecret)
	h := NewHandler(NewStubProcessor(), f.svc)

	req := httptest.NewRequest(http.MethodPost, "/payments/create-subscription",
		strings.NewReader(`{"planId":"plan_monthly"}`))
	req = req.WithContext(middleware.WithClaims(req.Context(), &middleware.AccessTokenClaims{
		UserID: "user-1", Email: "seeker@om.test", Role: middleware.RoleUser,
	}))
	rec := httptest.NewRecorder()
	h.CreateSubscription(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var sub Subscription
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sub))
	assert.True(t, strings.HasPrefix(sub.ID, "sub_"))
	assert.Equal(t, "created", sub.Status)

	rec = httptest.NewRecorder()
	h.CreateSubscription(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = NewHandler(failingProcessor{}, f.svc)
	rec = httptest.NewRecorder()
	h.CreateSubscription(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"planId":"p"}`)))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "PAYMENT_PROVIDER_ERROR")
}
