// AngelaMos | 2026
// service_test.go

package recommendation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/om-backend/internal/metrics"
	"github.com/carterperez-dev/om-backend/internal/mood"
)

type fakeHistory struct {
	entries []mood.Mood
	err     error
	asked   int
}

func (f *fakeHistory) Recent(_ context.Context, _ string, n int) ([]mood.Mood, error) {
	f.asked = n
	if f.err != nil {
		return nil, f.err
	}
	if len(f.entries) > n {
		return f.entries[:n], nil
	}
	return f.entries, nil
}

type fakeGenerator struct {
	mu     sync.Mutex
	calls  int
	prompt string
	fn     func(ctx context.Context) (*Recommendation, error)
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (*Recommendation, error) {
	f.mu.Lock()
	f.calls++
	f.prompt = prompt
	f.mu.Unlock()
	return f.fn(ctx)
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeOutcomes struct {
	got []string
}

func (f *fakeOutcomes) RecordRecommendation(outcome string) {
	f.got = append(f.got, outcome)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func someEntries(n int) []mood.Mood {
	entries := make([]mood.Mood, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, mood.Mood{
			Rating:             i%5 + 1,
			Note:               fmt.Sprintf("note %d", i),
			MeditationDuration: 10,
			Frequency:          "528Hz",
		})
	}
	return entries
}

func TestOnboardingNeverCallsGenerator(t *testing.T) {
	gen := &fakeGenerator{fn: func(context.Context) (*Recommendation, error) {
		t.Fatal("generator must not be called")
		return nil, nil
	}}
	outcomes := &fakeOutcomes{}
	svc := NewService(&fakeHistory{}, gen, time.Second, outcomes, quietLogger())

	rec, err := svc.Recommend(context.Background(), "u-1")
	require.NoError(t, err)

	assert.Equal(t, Onboarding(), *rec)
	assert.Equal(t, "432Hz", rec.Frequency)
	assert.Zero(t, gen.callCount())
	assert.Equal(t, []string{metrics.OutcomeOnboarding}, outcomes.got)
}

func TestGeneratorResultReturnedVerbatim(t *testing.T) {
	want := &Recommendation{Frequency: "396Hz", Type: "Grounding", Advice: "Breathe. Rest. Return."}
	gen := &fakeGenerator{fn: func(context.Context) (*Recommendation, error) { return want, nil }}
	history := &fakeHistory{entries: someEntries(12)}
	outcomes := &fakeOutcomes{}
	svc := NewService(history, gen, time.Second, outcomes, quietLogger())

	rec, err := svc.Recommend(context.Background(), "u-1")
	require.NoError(t, err)

	assert.Equal(t, want, rec)
	assert.Equal(t, mood.RecentWindow, history.asked)
	assert.Contains(t, gen.prompt, "Rating: 1/5, Note: note 0, Duration: 10m, Freq: 528Hz")
	assert.NotContains(t, gen.prompt, "note 7")
	assert.Equal(t, []string{metrics.OutcomeAI}, outcomes.got)
}

func TestGeneratorFailuresFallBack(t *testing.T) {
	tests := []struct {
		name string
		fn   func(ctx context.Context) (*Recommendation, error)
	}{
		{"transport error", func(context.Context) (*Recommendation, error) {
			return nil, errors.New("connection refused")
		}},
		{"quota", func(context.Context) (*Recommendation, error) {
			return nil, errors.New("429 resource exhausted")
		}},
		{"malformed json", func(context.Context) (*Recommendation, error) {
			return ParseRecommendation("definitely not json")
		}},
		{"missing field", func(context.Context) (*Recommendation, error) {
			return ParseRecommendation(`{"frequency":"639Hz"}`)
		}},
		{"nil result", func(context.Context) (*Recommendation, error) {
			return nil, nil
		}},
		{"timeout", func(ctx context.Context) (*Recommendation, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}},
		{"panic", func(context.Context) (*Recommendation, error) {
			panic("sdk bug")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{fn: tt.fn}
			outcomes := &fakeOutcomes{}
			svc := NewService(&fakeHistory{entries: someEntries(3)}, gen, 20*time.Millisecond, outcomes, quietLogger())

			rec, err := svc.Recommend(context.Background(), "u-1")
			require.NoError(t, err)

			assert.Equal(t, Fallback(), *rec)
			assert.Equal(t, "528Hz", rec.Frequency)
			assert.Equal(t, "Love & Healing", rec.Type)
			assert.Equal(t, 1, gen.callCount())
			assert.Equal(t, []string{metrics.OutcomeFallback}, outcomes.got)
		})
	}
}

func TestMissingGeneratorFallsBack(t *testing.T) {
	svc := NewService(&fakeHistory{entries: someEntries(1)}, nil, time.Second, nil, quietLogger())

	rec, err := svc.Recommend(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, Fallback(), *rec)
}

func TestHistoryErrorIsSurfaced(t *testing.T) {
	boom := errors.New("db down")
	gen := &fakeGenerator{fn: func(context.Context) (*Recommendation, error) {
		t.Fatal("generator must not be called")
		return nil, nil
	}}
	svc := NewService(&fakeHistory{err: boom}, gen, time.Second, nil, quietLogger())

	_, err := svc.Recommend(context.Background(), "u-1")
	assert.ErrorIs(t, err, boom)
}

func TestGeneratorIgnoringContextStillFallsBack(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	gen := &fakeGenerator{fn: func(context.Context) (*Recommendation, error) {
		<-release
		return &Recommendation{Frequency: "963Hz", Type: "late", Advice: "late"}, nil
	}}
	svc := NewService(&fakeHistory{entries: someEntries(2)}, gen, 20*time.Millisecond, nil, quietLogger())

	start := time.Now()
	rec, err := svc.Recommend(context.Background(), "u-1")
	require.NoError(t, err)

	assert.Equal(t, Fallback(), *rec)
	assert.Less(t, time.Since(start), time.Second)
}
