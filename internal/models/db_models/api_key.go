package db_models

// Named secret keys resolved at call time so values can rotate without a
// redeploy.
const (
	KeyStripeSecret        = "stripe_secret_key"
	KeyStripeWebhookSecret = "stripe_webhook_secret"
	KeyOpenAI              = "openai_api_key"
	KeyGemini              = "gemini_api_key"
)

type ApiKey struct {
	BaseModel
	KeyName  string `gorm:"uniqueIndex"`
	KeyValue string
}
