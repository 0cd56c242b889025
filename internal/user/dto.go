// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type ToggleStatusRequest struct {
	UserID     string `json:"userId"      validate:"required,uuid"`
	IsDisabled *bool  `json:"is_disabled" validate:"required"`
}

type RecentUserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	PlanType   string    `json:"plan_type"`
	CreatedAt  time.Time `json:"created_at"`
	IsDisabled bool      `json:"is_disabled"`
}

type Counts struct {
	Total int
	Pro   int
}

func ToRecentUserResponseList(users []User) []RecentUserResponse {
	responses := make([]RecentUserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, RecentUserResponse{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			PlanType:   u.PlanType,
			CreatedAt:  u.CreatedAt,
			IsDisabled: u.IsDisabled,
		})
	}
	return responses
}
