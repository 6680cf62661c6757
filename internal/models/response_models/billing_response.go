package response_models

type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type PortalSessionResponse struct {
	URL string `json:"url"`
}

type SubscriptionStatusResponse struct {
	Status           string `json:"status"`
	CurrentPeriodEnd int64  `json:"current_period_end,omitempty"`
	SubscriptionID   string `json:"subscription_id,omitempty"`
	IsEntitled       bool   `json:"is_entitled"`
}
