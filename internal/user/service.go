// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carterperez-dev/om-backend/internal/auth"
	"github.com/carterperez-dev/om-backend/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) Create(
	ctx context.Context,
	email, passwordHash, name string,
) (*auth.UserInfo, error) {
	user := &User{
		ID:                 uuid.New().String(),
		Email:              normalizeEmail(email),
		PasswordHash:       passwordHash,
		Name:               strings.TrimSpace(name),
		Role:               RoleUser,
		PlanType:           PlanFree,
		SubscriptionStatus: StatusInactive,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

// ActivateSubscription promotes the account registered under email and
// returns its id.
func (s *Service) ActivateSubscription(
	ctx context.Context,
	email, subscriptionID string,
	expiry *time.Time,
) (string, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", err
	}

	if err := s.repo.ActivateSubscription(ctx, user.ID, subscriptionID, expiry); err != nil {
		return "", err
	}

	return user.ID, nil
}

func (s *Service) SetDisabled(
	ctx context.Context,
	id string,
	disabled bool,
) error {
	if id == "" {
		return fmt.Errorf("set disabled: %w", core.ErrInvalidInput)
	}
	return s.repo.SetDisabled(ctx, id, disabled)
}

func (s *Service) Counts(ctx context.Context) (Counts, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return Counts{}, err
	}

	pro, err := s.repo.CountByPlan(ctx, PlanPro)
	if err != nil {
		return Counts{}, err
	}

	return Counts{Total: total, Pro: pro}, nil
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]User, error) {
	return s.repo.ListRecent(ctx, limit)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		PlanType:     u.PlanType,
		IsDisabled:   u.IsDisabled,
	}
}

var _ auth.UserProvider = (*Service)(nil)
