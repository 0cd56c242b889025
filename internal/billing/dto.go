// AngelaMos | 2026
// dto.go

package billing

type CreateSubscriptionRequest struct {
	PlanID string `json:"planId" validate:"required,max=100"`
}

type WebhookAck struct {
	Status string `json:"status"`
}
