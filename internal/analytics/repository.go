// AngelaMos | 2026
// repository.go

package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/carterperez-dev/om-backend/internal/core"
)

// Event is one row of the append-only analytics ledger. UserID is nil for
// events with no authenticated subject.
type Event struct {
	ID        string          `db:"id"`
	UserID    *string         `db:"user_id"`
	EventType string          `db:"event_type"`
	Metadata  json.RawMessage `db:"metadata"`
	CreatedAt time.Time       `db:"created_at"`
}

type Repository interface {
	Insert(ctx context.Context, event *Event) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, event *Event) error {
	metadata := event.Metadata
	if len(metadata) == 0 {
		metadata = json.RawMessage(`{}`)
	}

	query := `
		INSERT INTO analytics (id, user_id, event_type, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &event.CreatedAt, query,
		event.ID,
		event.UserID,
		event.EventType,
		[]byte(metadata),
	)
	if err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}

	return nil
}
