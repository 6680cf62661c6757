package request_models

type CreateCheckoutRequest struct {
	PriceID string `json:"priceId" binding:"required"`
}

// CancelSubscriptionRequest optionally carries the client's last-known
// subscription id. The server always resolves the caller's own subscription
// from the store; a supplied id only has to match it.
type CancelSubscriptionRequest struct {
	SubscriptionID string `json:"subscriptionId"`
}
