// AngelaMos | 2026
// handler.go

package billing

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/om-backend/internal/core"
	"github.com/carterperez-dev/om-backend/internal/middleware"
)

const (
	SignatureHeader = "X-Razorpay-Signature"
	EventIDHeader   = "X-Razorpay-Event-Id"
	maxWebhookBody  = 1 << 20
)

type Handler struct {
	processor Processor
	webhooks  *WebhookService
	validator *validator.Validate
}

func NewHandler(processor Processor, webhooks *WebhookService) *Handler {
	return &Handler{
		processor: processor,
		webhooks:  webhooks,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Routes() []middleware.Route {
	return []middleware.Route{
		{
			Method:  http.MethodPost,
			Pattern: "/payments/create-subscription",
			Access:  middleware.Authenticated,
			Handler: h.CreateSubscription,
		},
		{
			Method:  http.MethodPost,
			Pattern: "/payments/webhook",
			Access:  middleware.Public,
			Handler: h.Webhook,
		},
	}
}

func (h *Handler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	var req CreateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	sub, err := h.processor.CreateSubscription(
		r.Context(),
		req.PlanID,
		middleware.GetUserEmail(r.Context()),
	)
	if err != nil {
		if errors.Is(err, core.ErrExternalService) {
			core.JSONError(w, core.ExternalServiceError("payment provider unavailable"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, sub)
}

func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBody)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if !errors.As(err, &tooLarge) {
			core.BadRequest(w, "unreadable payload")
			return
		}
		core.JSONError(w, core.NewAppError(
			err,
			"payload too large",
			http.StatusRequestEntityTooLarge,
			"PAYLOAD_TOO_LARGE",
		))
		return
	}

	err = h.webhooks.Handle(
		r.Context(),
		r.Header.Get(SignatureHeader),
		r.Header.Get(EventIDHeader),
		raw,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrWebhookSecretMissing):
			core.JSONError(w, core.ConfigurationError("webhook secret not configured"))
		case errors.Is(err, ErrInvalidSignature):
			core.BadRequest(w, "invalid signature")
		case errors.Is(err, ErrMalformedPayload):
			core.BadRequest(w, "malformed payload")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, WebhookAck{Status: "ok"})
}
