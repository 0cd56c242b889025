// AngelaMos | 2026
// service.go

package mood

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/carterperez-dev/om-backend/internal/core"
)

// EventRecorder receives best-effort analytics events.
type EventRecorder interface {
	Record(ctx context.Context, userID, event string, metadata map[string]any)
}

type Service struct {
	repo   Repository
	events EventRecorder
}

func NewService(repo Repository, events EventRecorder) *Service {
	return &Service{repo: repo, events: events}
}

// Record appends an entry. Bounds are checked here as well as in the
// handler so every caller gets the same rules.
func (s *Service) Record(
	ctx context.Context,
	userID string,
	req RecordMoodRequest,
) (*Mood, error) {
	if userID == "" {
		return nil, fmt.Errorf("record mood: %w", core.ErrUnauthorized)
	}
	if req.Rating < MinRating || req.Rating > MaxRating {
		return nil, fmt.Errorf(
			"record mood: rating %d outside %d..%d: %w",
			req.Rating, MinRating, MaxRating, core.ErrInvalidInput,
		)
	}
	if req.MeditationDuration < 0 || req.MeditationDuration > MaxDuration {
		return nil, fmt.Errorf(
			"record mood: duration %d outside 0..%d: %w",
			req.MeditationDuration, MaxDuration, core.ErrInvalidInput,
		)
	}

	mood := &Mood{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Rating:             req.Rating,
		Note:               req.Note,
		MeditationDuration: req.MeditationDuration,
		Frequency:          req.Frequency,
	}

	if err := s.repo.Create(ctx, mood); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Record(ctx, userID, "mood_logged", map[string]any{
			"rating":   mood.Rating,
			"duration": mood.MeditationDuration,
		})
	}

	return mood, nil
}

// History returns at most HistoryLimit entries, newest first. Limits
// outside 1..HistoryLimit are clamped.
func (s *Service) History(
	ctx context.Context,
	userID string,
	limit int,
) ([]Mood, error) {
	if limit < 1 || limit > HistoryLimit {
		limit = HistoryLimit
	}
	return s.repo.ListRecent(ctx, userID, limit)
}

func (s *Service) Recent(
	ctx context.Context,
	userID string,
	n int,
) ([]Mood, error) {
	return s.repo.ListRecent(ctx, userID, n)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
