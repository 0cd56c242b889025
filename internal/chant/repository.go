// AngelaMos | 2026
// repository.go

package chant

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/om-backend/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Chant, error)
	Create(ctx context.Context, chant *Chant) error
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// List returns every chant in insertion order regardless of tier. Rows
// written in one transaction share created_at, so order follows seq.
func (r *repository) List(ctx context.Context) ([]Chant, error) {
	query := `
		SELECT id, seq, title, description, frequency, audio_url, category,
		       is_premium, created_at
		FROM chants
		ORDER BY seq ASC`

	chants := []Chant{}
	if err := r.db.SelectContext(ctx, &chants, query); err != nil {
		return nil, fmt.Errorf("list chants: %w", err)
	}

	return chants, nil
}

func (r *repository) Create(ctx context.Context, chant *Chant) error {
	query := `
		INSERT INTO chants (id, title, description, frequency, audio_url, category, is_premium)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING seq, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		chant.ID,
		chant.Title,
		chant.Description,
		chant.Frequency,
		chant.AudioURL,
		chant.Category,
		chant.IsPremium,
	).Scan(&chant.Seq, &chant.CreatedAt)
	if err != nil {
		return fmt.Errorf("create chant: %w", err)
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM chants`); err != nil {
		return 0, fmt.Errorf("count chants: %w", err)
	}
	return total, nil
}
