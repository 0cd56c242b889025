// AngelaMos | 2026
// dto.go

package chant

import (
	"time"
)

type CreateChantRequest struct {
	Title       string `json:"title"       validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Frequency   string `json:"frequency"   validate:"max=32"`
	AudioURL    string `json:"audio_url"   validate:"omitempty,url,max=2048"`
	Category    string `json:"category"    validate:"max=64"`
	IsPremium   *bool  `json:"is_premium"`
}

type ChantResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Frequency   string    `json:"frequency"`
	AudioURL    string    `json:"audio_url"`
	Category    string    `json:"category"`
	IsPremium   bool      `json:"is_premium"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToChantResponseList(chants []Chant) []ChantResponse {
	responses := make([]ChantResponse, 0, len(chants))
	for _, c := range chants {
		responses = append(responses, ChantResponse{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Frequency:   c.Frequency,
			AudioURL:    c.AudioURL,
			Category:    c.Category,
			IsPremium:   c.IsPremium,
			CreatedAt:   c.CreatedAt,
		})
	}
	return responses
}
