// AngelaMos | 2026
// entity.go

package chant

import (
	"time"
)

type Chant struct {
	ID          string    `db:"id"`
	Seq         int64     `db:"seq"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Frequency   string    `db:"frequency"`
	AudioURL    string    `db:"audio_url"`
	Category    string    `db:"category"`
	IsPremium   bool      `db:"is_premium"`
	CreatedAt   time.Time `db:"created_at"`
}

const DefaultCategory = "General"
