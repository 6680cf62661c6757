package response_models

type LoginResponse struct {
	Token             string `json:"token"`
	IsUserHavePremium bool   `json:"isUserHavePremium"`
}

type AccountResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CreatedAt   int64  `json:"created_at"`
	LastLoginAt *int64 `json:"last_login_at,omitempty"`
}
