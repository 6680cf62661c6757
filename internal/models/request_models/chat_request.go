package request_models

import "sekahub/pkg/utils"

type ChatRequest struct {
	ConversationID string              `json:"conversation_id"`
	Messages       []utils.ChatMessage `json:"messages" binding:"required,min=1"`
}
