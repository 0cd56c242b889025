// AngelaMos | 2026
// service.go

package chant

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Chant, error) {
	return s.repo.List(ctx)
}

// Create adds a chant. Premium defaults to false when the request omits it.
func (s *Service) Create(
	ctx context.Context,
	req CreateChantRequest,
) (*Chant, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = DefaultCategory
	}

	chant := &Chant{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Frequency:   req.Frequency,
		AudioURL:    req.AudioURL,
		Category:    category,
		IsPremium:   req.IsPremium != nil && *req.IsPremium,
	}

	if err := s.repo.Create(ctx, chant); err != nil {
		return nil, err
	}

	return chant, nil
}
