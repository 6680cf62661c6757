package request_models

type CreatePromptRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	PromptText  string `json:"prompt_text" binding:"required"`
	Tool        string `json:"tool"`
}

type UpdatePromptRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	PromptText  *string `json:"prompt_text"`
	Tool        *string `json:"tool"`
}
