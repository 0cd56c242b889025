// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/carterperez-dev/om-backend/internal/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
	ErrAccountDisabled    = errors.New("account disabled")
)

type UserInfo struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string
	PlanType     string
	IsDisabled   bool
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	Create(
		ctx context.Context,
		email, passwordHash, name string,
	) (*UserInfo, error)
}

// EventRecorder receives best-effort analytics events.
type EventRecorder interface {
	Record(ctx context.Context, userID, event string, metadata map[string]any)
}

type Service struct {
	tokens *TokenManager
	users  UserProvider
	events EventRecorder
}

func NewService(
	tokens *TokenManager,
	users UserProvider,
	events EventRecorder,
) *Service {
	return &Service{
		tokens: tokens,
		users:  users,
		events: events,
	}
}

func (s *Service) Signup(
	ctx context.Context,
	req SignupRequest,
) (*AuthResponse, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, req.Email, passwordHash, req.Name)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	resp, err := s.createAuthResponse(user)
	if err != nil {
		return nil, err
	}

	s.record(ctx, user.ID, "signup", map[string]any{"email": user.Email})
	return resp, nil
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, err := core.VerifyPasswordTimingSafe(req.Password, &user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if user.IsDisabled {
		return nil, ErrAccountDisabled
	}

	resp, err := s.createAuthResponse(user)
	if err != nil {
		return nil, err
	}

	s.record(ctx, user.ID, "login", nil)
	return resp, nil
}

func (s *Service) GetCurrentUser(
	ctx context.Context,
	userID string,
) (*UserResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("get current user: %w", core.ErrUnauthorized)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *Service) createAuthResponse(user *UserInfo) (*AuthResponse, error) {
	token, _, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *Service) record(
	ctx context.Context,
	userID, event string,
	metadata map[string]any,
) {
	if s.events == nil {
		return
	}
	s.events.Record(ctx, userID, event, metadata)
}
