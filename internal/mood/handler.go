// AngelaMos | 2026
// handler.go

package mood

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
		{Method: http.MethodPost, Pattern: "/moods", Access: middleware.Authenticated, Handler: h.Record},
		{Method: http.MethodGet, Pattern: "/moods/history", Access: middleware.Authenticated, Handler: h.History},
	}
}

func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	var req RecordMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	userID := middleware.GetUserID(r.Context())
	if _, err := h.service.Record(r.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "invalid mood entry")
		case errors.Is(err, core.ErrUnauthorized):
			core.Unauthorized(w, "")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Success(w)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", HistoryLimit)

	moods, err := h.service.History(
		r.Context(),
		middleware.GetUserID(r.Context()),
		limit,
	)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToMoodResponseList(moods))
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
