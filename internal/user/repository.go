// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carterperez-dev/om-backend/internal/core"
)

const userColumns = `id, email, password_hash, name, role, plan_type,
		       subscription_status, razorpay_customer_id, razorpay_subscription_id,
		       expiry_date, is_disabled, created_at, updated_at`

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ActivateSubscription(
		ctx context.Context,
		id, subscriptionID string,
		expiry *time.Time,
	) error
	SetDisabled(ctx context.Context, id string, disabled bool) error
	Count(ctx context.Context) (int, error)
	CountByPlan(ctx context.Context, plan string) (int, error)
	ListRecent(ctx context.Context, limit int) ([]User, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, role, plan_type, subscription_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Role,
		user.PlanType,
		user.SubscriptionStatus,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

// ActivateSubscription promotes the user to PRO. A nil expiry keeps the
// stored expiry date.
func (r *repository) ActivateSubscription(
	ctx context.Context,
	id, subscriptionID string,
	expiry *time.Time,
) error {
	query := `
		UPDATE users
		SET plan_type = $2,
		    subscription_status = $3,
		    razorpay_subscription_id = $4,
		    expiry_date = COALESCE($5, expiry_date),
		    updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		id,
		PlanPro,
		StatusActive,
		subscriptionID,
		expiry,
	)
	if err != nil {
		return fmt.Errorf("activate subscription: %w", err)
	}

	return requireAffected(result, "activate subscription")
}

func (r *repository) SetDisabled(
	ctx context.Context,
	id string,
	disabled bool,
) error {
	query := `
		UPDATE users
		SET is_disabled = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, disabled)
	if err != nil {
		return fmt.Errorf("set disabled: %w", err)
	}

	return requireAffected(result, "set disabled")
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}

func (r *repository) CountByPlan(ctx context.Context, plan string) (int, error) {
	var total int
	query := `SELECT COUNT(*) FROM users WHERE plan_type = $1`
	if err := r.db.GetContext(ctx, &total, query, plan); err != nil {
		return 0, fmt.Errorf("count users by plan: %w", err)
	}
	return total, nil
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	users := []User{}
	if err := r.db.SelectContext(ctx, &users, query, limit); err != nil {
		return nil, fmt.Errorf("list recent users: %w", err)
	}

	return users, nil
}

func requireAffected(result sql.Result, op string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	return nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
