// AngelaMos | 2026
// razorpay.go

package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/carterperez-dev/om-backend/internal/config"
	"github.com/carterperez-dev/om-backend/internal/core"
)

const (
	subscriptionTotalCount = 12
	maxErrorBody           = 64 << 10
)

// RazorpayClient talks to the Razorpay REST API with basic auth.
type RazorpayClient struct {
	httpClient *http.Client
	baseURL    string
	keyID      string
	keySecret  string
}

func NewRazorpayClient(cfg config.RazorpayConfig) *RazorpayClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &RazorpayClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
	}
}

type createSubscriptionRequest struct {
	PlanID         string            `json:"plan_id"`
	CustomerNotify int               `json:"customer_notify"`
	TotalCount     int               `json:"total_count"`
	Notes          map[string]string `json:"notes,omitempty"`
}

type razorpayError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func (c *RazorpayClient) CreateSubscription(
	ctx context.Context,
	planID, email string,
) (*Subscription, error) {
	payload := createSubscriptionRequest{
		PlanID:         planID,
		CustomerNotify: 1,
		TotalCount:     subscriptionTotalCount,
	}
	if email != "" {
		payload.Notes = map[string]string{"email": email}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode subscription request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/subscriptions",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("build subscription request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("razorpay create subscription: %w: %w", core.ErrExternalService, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) //nolint:errcheck // best-effort error detail
		var apiErr razorpayError
		detail := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Description != "" {
			detail = apiErr.Error.Code + ": " + apiErr.Error.Description
		}
		return nil, fmt.Errorf(
			"razorpay create subscription: status %d: %s: %w",
			resp.StatusCode,
			detail,
			core.ErrExternalService,
		)
	}

	var sub Subscription
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		return nil, fmt.Errorf("decode razorpay subscription: %w: %w", core.ErrExternalService, err)
	}
	if sub.ID == "" {
		return nil, fmt.Errorf("razorpay subscription without id: %w", core.ErrExternalService)
	}

	return &sub, nil
}
