// AngelaMos | 2026
// handler.go

package chant

import (
	"encoding/json"
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
		{Method: http.MethodGet, Pattern: "/chants", Access: middleware.Authenticated, Handler: h.List},
		{Method: http.MethodPost, Pattern: "/admin/chants", Access: middleware.AdminOnly, Handler: h.Create},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	chants, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToChantResponseList(chants))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateChantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if _, err := h.service.Create(r.Context(), req); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Success(w)
}
