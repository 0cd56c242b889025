// AngelaMos | 2026
// recorder.go

package analytics

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	EventSignup                = "signup"
	EventLogin                 = "login"
	EventMoodLogged            = "mood_logged"
	EventSubscriptionActivated = "subscription_activated"

	writeTimeout = 3 * time.Second
)

// Counter mirrors every recorded event into process metrics.
type Counter interface {
	RecordEvent(event string)
}

// Recorder appends product events to the analytics ledger. Recording is
// best effort: a failed insert is logged and never reaches the caller.
type Recorder struct {
	repo    Repository
	counter Counter
	logger  *slog.Logger
}

func NewRecorder(repo Repository, counter Counter, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		repo:    repo,
		counter: counter,
		logger:  logger,
	}
}

func (r *Recorder) Record(
	ctx context.Context,
	userID, event string,
	metadata map[string]any,
) {
	if r.counter != nil {
		r.counter.RecordEvent(event)
	}
	if r.repo == nil {
		return
	}

	raw := json.RawMessage(`{}`)
	if len(metadata) > 0 {
		encoded, err := json.Marshal(metadata)
		if err != nil {
			r.logger.WarnContext(ctx, "encode analytics metadata",
				"event", event,
				"error", err,
			)
		} else {
			raw = encoded
		}
	}

	var subject *string
	if userID != "" {
		subject = &userID
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	err := r.repo.Insert(writeCtx, &Event{
		ID:        uuid.New().String(),
		UserID:    subject,
		EventType: event,
		Metadata:  raw,
	})
	if err != nil {
		r.logger.WarnContext(ctx, "record analytics event",
			"event", event,
			"user_id", userID,
			"error", err,
		)
	}
}
