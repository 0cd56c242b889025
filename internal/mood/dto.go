// AngelaMos | 2026
// dto.go

package mood

import (
	"time"
)

type RecordMoodRequest struct {
	Rating             int    `json:"rating"              validate:"required,min=1,max=5"`
	Note               string `json:"note"                validate:"max=1000"`
	MeditationDuration int    `json:"meditation_duration" validate:"min=0,max=1440"`
	Frequency          string `json:"frequency"           validate:"max=32"`
}

type MoodResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Rating             int       `json:"rating"`
	Note               string    `json:"note"`
	MeditationDuration int       `json:"meditation_duration"`
	Frequency          string    `json:"frequency"`
	CreatedAt          time.Time `json:"created_at"`
}

func ToMoodResponseList(moods []Mood) []MoodResponse {
	responses := make([]MoodResponse, 0, len(moods))
	for _, m := range moods {
		responses = append(responses, MoodResponse{
			ID:                 m.ID,
			UserID:             m.UserID,
			Rating:             m.Rating,
			Note:               m.Note,
			MeditationDuration: m.MeditationDuration,
			Frequency:          m.Frequency,
			CreatedAt:          m.CreatedAt,
		})
	}
	return responses
}
