package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	ErrRecordNotFound  = errors.New("record not found")
	ErrSlugTaken       = errors.New("slug already in use")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	ErrApiKeyNotFound       = errors.New("api key not found")
	ErrNotEntitled          = errors.New("active subscription required")
	ErrNoSubscription       = errors.New("no subscription on file")
	ErrSubscriptionMismatch = errors.New("subscription id does not belong to caller")
	ErrPaymentProvider      = errors.New("payment provider error")

	ErrCompletionFailed = errors.New("completion provider error")
	ErrEmptyPrompt      = errors.New("prompt must not be empty")

	ErrStorageUnavailable = errors.New("file storage not configured")

	ErrWebhookSignature = errors.New("webhook signature verification failed")
	ErrWebhookPayload   = errors.New("malformed webhook payload")
)
