// AngelaMos | 2026
// seed.go

package chant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/om-backend/internal/core"
)

func starterChants() []Chant {
	return []Chant{
		{
			Title:       "Morning OM",
			Description: "Start your day with universal vibration.",
			Frequency:   "432Hz",
			AudioURL:    "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3",
			Category:    "Morning",
		},
		{
			Title:       "Deep Sleep Delta",
			Description: "Enter deep restorative sleep.",
			Frequency:   "3.5Hz",
			AudioURL:    "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-2.mp3",
			Category:    "Sleep",
		},
		{
			Title:       "Anxiety Release",
			Description: "Calm your nervous system.",
			Frequency:   "528Hz",
			AudioURL:    "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-3.mp3",
			Category:    "Calm",
			IsPremium:   true,
		},
		{
			Title:       "Third Eye Opening",
			Description: "Enhance intuition and clarity.",
			Frequency:   "852Hz",
			AudioURL:    "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-4.mp3",
			Category:    "Spiritual",
			IsPremium:   true,
		},
	}
}

// Seed inserts the starter catalog when the chants table is empty and
// reports how many rows it wrote. The table lock keeps concurrent boots
// from seeding twice.
func Seed(ctx context.Context, db *sqlx.DB) (int, error) {
	inserted := 0

	err := core.InTx(ctx, db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `LOCK TABLE chants IN EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("lock chants: %w", err)
		}

		repo := NewRepository(tx)

		total, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if total > 0 {
			return nil
		}

		for _, c := range starterChants() {
			c.ID = uuid.New().String()
			if err := repo.Create(ctx, &c); err != nil {
				return fmt.Errorf("seed %q: %w", c.Title, err)
			}
			inserted++
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed chants: %w", err)
	}

	return inserted, nil
}
