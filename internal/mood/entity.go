// AngelaMos | 2026
// entity.go

package mood

import (
	"time"
)

type Mood struct {
	ID                 string    `db:"id"`
	UserID             string    `db:"user_id"`
	Rating             int       `db:"rating"`
	Note               string    `db:"note"`
	MeditationDuration int       `db:"meditation_duration"`
	Frequency          string    `db:"frequency"`
	CreatedAt          time.Time `db:"created_at"`
}

const (
	MinRating   = 1
	MaxRating   = 5
	MaxDuration = 1440

	HistoryLimit = 30
	RecentWindow = 7
)
