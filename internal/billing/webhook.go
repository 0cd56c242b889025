// AngelaMos | 2026
// webhook.go

package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/carterperez-dev/om-backend/internal/core"
	"github.com/carterperez-dev/om-backend/internal/metrics"
)

var (
	ErrWebhookSecretMissing = errors.New("webhook secret not configured")
	ErrInvalidSignature     = errors.New("invalid webhook signature")
	ErrMalformedPayload     = errors.New("malformed webhook payload")
)

const (
	EventSubscriptionActivated = "subscription.activated"
	EventSubscriptionCharged   = "subscription.charged"

	dedupeTTL    = 24 * time.Hour
	dedupePrefix = "om:webhook:razorpay:"
)

type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Subscription *struct {
			Entity subscriptionEntity `json:"entity"`
		} `json:"subscription"`
	} `json:"payload"`
}

type subscriptionEntity struct {
	ID         string          `json:"id"`
	Status     string          `json:"status"`
	CurrentEnd *int64          `json:"current_end"`
	Notes      json.RawMessage `json:"notes"`
}

// email reads notes.email. Razorpay sends notes as [] when empty.
func (e subscriptionEntity) email() string {
	raw := bytes.TrimSpace(e.Notes)
	if len(raw) == 0 || raw[0] != '{' {
		return ""
	}

	var notes map[string]any
	if err := json.Unmarshal(raw, &notes); err != nil {
		return ""
	}

	email, _ := notes["email"].(string)
	return strings.TrimSpace(email)
}

func (e subscriptionEntity) expiry() *time.Time {
	if e.CurrentEnd == nil || *e.CurrentEnd <= 0 {
		return nil
	}
	t := time.Unix(*e.CurrentEnd, 0).UTC()
	return &t
}

type Subscribers interface {
	ActivateSubscription(
		ctx context.Context,
		email, subscriptionID string,
		expiry *time.Time,
	) (string, error)
}

// Deduper remembers delivered event ids.
type Deduper interface {
	SetOnce(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type EventRecorder interface {
	Record(ctx context.Context, userID, event string, metadata map[string]any)
}

type OutcomeRecorder interface {
	RecordWebhook(outcome string)
}

type WebhookService struct {
	secret      string
	subscribers Subscribers
	deduper     Deduper
	events      EventRecorder
	outcomes    OutcomeRecorder
	logger      *slog.Logger
}

type WebhookDeps struct {
	Secret      string
	Subscribers Subscribers
	Deduper     Deduper
	Events      EventRecorder
	Outcomes    OutcomeRecorder
	Logger      *slog.Logger
}

func NewWebhookService(deps WebhookDeps) *WebhookService {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookService{
		secret:      deps.Secret,
		subscribers: deps.Subscribers,
		deduper:     deps.Deduper,
		events:      deps.Events,
		outcomes:    deps.Outcomes,
		logger:      logger,
	}
}

// Handle verifies and applies one delivery. Nothing is read from the body
// before the signature checks out.
func (s *WebhookService) Handle(
	ctx context.Context,
	signature, eventID string,
	raw []byte,
) error {
	if s.secret == "" {
		s.record(metrics.WebhookRejected)
		return ErrWebhookSecretMissing
	}

	if !VerifySignature(raw, signature, s.secret) {
		s.record(metrics.WebhookRejected)
		return ErrInvalidSignature
	}

	var event webhookEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		s.record(metrics.WebhookRejected)
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	if event.Event != EventSubscriptionActivated &&
		event.Event != EventSubscriptionCharged {
		s.record(metrics.WebhookIgnored)
		return nil
	}

	if event.Payload.Subscription == nil {
		s.logger.WarnContext(ctx, "subscription event without entity",
			"event", event.Event,
		)
		s.record(metrics.WebhookIgnored)
		return nil
	}
	entity := event.Payload.Subscription.Entity

	dedupeKey := ""
	if eventID != "" && s.deduper != nil {
		dedupeKey = dedupePrefix + eventID
		fresh, err := s.deduper.SetOnce(ctx, dedupeKey, dedupeTTL)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "webhook dedupe unavailable", "error", err)
			dedupeKey = ""
		case !fresh:
			s.record(metrics.WebhookDuplicate)
			return nil
		}
	}

	if err := s.apply(ctx, event.Event, entity); err != nil {
		if dedupeKey != "" {
			if relErr := s.deduper.Release(ctx, dedupeKey); relErr != nil {
				s.logger.WarnContext(ctx, "release webhook dedupe key", "error", relErr)
			}
		}
		return err
	}

	return nil
}

func (s *WebhookService) apply(
	ctx context.Context,
	eventName string,
	entity subscriptionEntity,
) error {
	email := entity.email()
	if email == "" || entity.ID == "" {
		s.logger.WarnContext(ctx, "subscription event missing email or id",
			"event", eventName,
			"subscription_id", entity.ID,
		)
		s.record(metrics.WebhookIgnored)
		return nil
	}

	userID, err := s.subscribers.ActivateSubscription(ctx, email, entity.ID, entity.expiry())
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			s.logger.WarnContext(ctx, "subscription event for unknown user",
				"event", eventName,
				"subscription_id", entity.ID,
			)
			s.record(metrics.WebhookIgnored)
			return nil
		}
		return fmt.Errorf("activate subscription: %w", err)
	}

	s.logger.InfoContext(ctx, "subscription activated",
		"event", eventName,
		"user_id", userID,
		"subscription_id", entity.ID,
	)
	s.record(metrics.WebhookApplied)

	if s.events != nil {
		s.events.Record(ctx, userID, "subscription_activated", map[string]any{
			"event":           eventName,
			"subscription_id": entity.ID,
		})
	}

	return nil
}

func (s *WebhookService) record(outcome string) {
	if s.outcomes != nil {
		s.outcomes.RecordWebhook(outcome)
	}
}
