// AngelaMos | 2026
// gemini.go

package recommendation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/carterperez-dev/om-backend/internal/config"
)

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(
	ctx context.Context,
	cfg config.GeminiConfig,
) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  cfg.Model,
	}, nil
}

var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"frequency": {Type: genai.TypeString},
		"type":      {Type: genai.TypeString},
		"advice":    {Type: genai.TypeString},
	},
	Required: []string{"frequency", "type", "advice"},
}

func (g *GeminiGenerator) Generate(
	ctx context.Context,
	prompt string,
) (*Recommendation, error) {
	resp, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	return ParseRecommendation(responseText(resp))
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

var _ Generator = (*GeminiGenerator)(nil)
