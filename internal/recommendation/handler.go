// AngelaMos | 2026
// handler.go

package recommendation

import (
	"net/http"

	"github.com/carterperez-dev/om-backend/internal/core"
	"github.com/carterperez-dev/om-backend/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Routes() []middleware.Route {
	return []middleware.Route{
		{
			Method:  http.MethodGet,
			Pattern: "/ai/recommendation",
			Access:  middleware.Authenticated,
			Handler: h.Get,
		},
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.Recommend(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, rec)
}
