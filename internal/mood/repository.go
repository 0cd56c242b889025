// AngelaMos | 2026
// repository.go

package mood

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/om-backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, mood *Mood) error
	ListRecent(ctx context.Context, userID string, limit int) ([]Mood, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, mood *Mood) error {
	query := `
		INSERT INTO moods (id, user_id, rating, note, meditation_duration, frequency)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &mood.CreatedAt, query,
		mood.ID,
		mood.UserID,
		mood.Rating,
		mood.Note,
		mood.MeditationDuration,
		mood.Frequency,
	)
	if err != nil {
		return fmt.Errorf("create mood: %w", err)
	}

	return nil
}

// ListRecent returns the newest entries first. Ties on created_at are
// broken by id so paging is stable.
func (r *repository) ListRecent(
	ctx context.Context,
	userID string,
	limit int,
) ([]Mood, error) {
	query := `
		SELECT id, user_id, rating, note, meditation_duration, frequency, created_at
		FROM moods
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	moods := []Mood{}
	if err := r.db.SelectContext(ctx, &moods, query, userID, limit); err != nil {
		return nil, fmt.Errorf("list moods: %w", err)
	}

	return moods, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM moods`); err != nil {
		return 0, fmt.Errorf("count moods: %w", err)
	}
	return total, nil
}
