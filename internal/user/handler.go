// AngelaMos | 2026
// handler.go

package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/om-backend/internal/core"
	"github.com/carterperez-dev/om-backend/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Routes() []middleware.Route {
	return []middleware.Route{
		{
			Method:  http.MethodPost,
			Pattern: "/admin/users/toggle-status",
			Access:  middleware.AdminOnly,
			Handler: h.ToggleStatus,
		},
	}
}

// ToggleStatus sets the disabled flag to the requested value.
func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	var req ToggleStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	err := h.service.SetDisabled(r.Context(), req.UserID, *req.IsDisabled)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Success(w)
}
