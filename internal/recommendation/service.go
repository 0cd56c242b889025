// AngelaMos | 2026
// service.go

package recommendation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/om-backend/internal/core"
	"github.com/carterperez-dev/om-backend/internal/metrics"
	"github.com/carterperez-dev/om-backend/internal/mood"
)

type Generator interface {
	Generate(ctx context.Context, prompt string) (*Recommendation, error)
}

type HistorySource interface {
	Recent(ctx context.Context, userID string, n int) ([]mood.Mood, error)
}

type OutcomeRecorder interface {
	RecordRecommendation(outcome string)
}

type Service struct {
	history   HistorySource
	generator Generator
	timeout   time.Duration
	outcomes  OutcomeRecorder
	logger    *slog.Logger
}

// NewService builds the recommender. A nil generator means every user
// with history receives the fallback.
func NewService(
	history HistorySource,
	generator Generator,
	timeout time.Duration,
	outcomes OutcomeRecorder,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		history:   history,
		generator: generator,
		timeout:   timeout,
		outcomes:  outcomes,
		logger:    logger,
	}
}

// Recommend never surfaces generator failures. Only a failure to read the
// mood ledger is returned to the caller.
func (s *Service) Recommend(
	ctx context.Context,
	userID string,
) (*Recommendation, error) {
	ctx, span := otel.Tracer("om/recommendation").Start(ctx, "recommendation.recommend")
	defer span.End()

	entries, err := s.history.Recent(ctx, userID, mood.RecentWindow)
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, fmt.Errorf("load mood history: %w", err)
	}

	if len(entries) == 0 {
		s.record(metrics.OutcomeOnboarding)
		rec := Onboarding()
		return &rec, nil
	}

	rec, err := s.generate(ctx, BuildPrompt(entries))
	if err != nil {
		s.logger.WarnContext(ctx, "recommendation fell back",
			"user_id", userID,
			"entries", len(entries),
			"error", err,
		)
		core.AddSpanEvent(ctx, "recommendation.fallback",
			attribute.String("cause", err.Error()),
		)
		s.record(metrics.OutcomeFallback)
		fallback := Fallback()
		return &fallback, nil
	}

	s.record(metrics.OutcomeAI)
	return rec, nil
}

type generation struct {
	rec *Recommendation
	err error
}

// generate bounds the generator by the configured timeout even when the
// generator itself ignores ctx.
func (s *Service) generate(
	ctx context.Context,
	prompt string,
) (*Recommendation, error) {
	if s.generator == nil {
		return nil, ErrNoGenerator
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	done := make(chan generation, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- generation{err: fmt.Errorf("generator panic: %v", p)}
			}
		}()
		rec, err := s.generator.Generate(ctx, prompt)
		done <- generation{rec: rec, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("generator deadline: %w", ctx.Err())
	case out := <-done:
		if out.err != nil {
			return nil, out.err
		}
		if out.rec == nil {
			return nil, ErrEmptyResponse
		}
		return out.rec, nil
	}
}

func (s *Service) record(outcome string) {
	if s.outcomes != nil {
		s.outcomes.RecordRecommendation(outcome)
	}
}
