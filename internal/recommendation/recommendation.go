// AngelaMos | 2026
// recommendation.go

package recommendation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/carterperez-dev/om-backend/internal/mood"
)

var (
	ErrNoGenerator     = errors.New("no generator configured")
	ErrEmptyResponse   = errors.New("empty generator response")
	ErrMalformedResult = errors.New("malformed generator result")
)

type Recommendation struct {
	Frequency      string `json:"frequency"`
	Type           string `json:"type,omitempty"`
	Advice         string `json:"advice"`
	Recommendation string `json:"recommendation,omitempty"`
}

func Onboarding() Recommendation {
	return Recommendation{
		Frequency:      "432Hz",
		Type:           "Morning OM",
		Recommendation: "Start your journey by logging your first mood. We suggest the 432Hz Morning OM to begin.",
		Advice:         "Consistency is key to spiritual growth.",
	}
}

func Fallback() Recommendation {
	return Recommendation{
		Frequency: "528Hz",
		Type:      "Love & Healing",
		Advice:    "Focus on your breath and let go of the day's tension. You are doing great.",
	}
}

const instruction = "Suggest the best OM frequency and type of meditation for tomorrow. " +
	"Provide calming advice in 3 sentences. " +
	`Return as JSON with keys: "frequency", "type", "advice".`

// BuildPrompt renders entries, newest first, one per line.
func BuildPrompt(entries []mood.Mood) string {
	var b strings.Builder
	b.WriteString("Based on this meditation and mood history:\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "Rating: %d/5, Note: %s, Duration: %dm, Freq: %s\n",
			e.Rating, e.Note, e.MeditationDuration, e.Frequency)
	}
	b.WriteString("\n")
	b.WriteString(instruction)
	return b.String()
}

// ParseRecommendation decodes a generator's JSON text. All three fields
// must be present and non-empty.
func ParseRecommendation(text string) (*Recommendation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var rec Recommendation
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &rec); err != nil {
		return nil, fmt.Errorf("decode recommendation: %w: %w", ErrMalformedResult, err)
	}

	if rec.Frequency == "" || rec.Type == "" || rec.Advice == "" {
		return nil, fmt.Errorf("decode recommendation: missing field: %w", ErrMalformedResult)
	}

	rec.Recommendation = ""
	return &rec, nil
}
