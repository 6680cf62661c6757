package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"sekahub/internal/models/request_models"
	"sekahub/internal/services"
	"sekahub/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

// SendMessage godoc
// @Summary Send a message to the assistant
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat [post]
func (ch *ChatController) SendMessage(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	response, err := ch.chatService.SendMessage(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response, "")
}

// ListHistory godoc
// @Summary List the caller's conversations
// @Tags Chat
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/history [get]
func (ch *ChatController) ListHistory(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	items, err := ch.chatService.ListHistory(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "")
}

// GetConversation godoc
// @Summary Get one conversation transcript
// @Tags Chat
// @Produce json
// @Param id path string true "Conversation id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/history/{id} [get]
func (ch *ChatController) GetConversation(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	messages, err := ch.chatService.GetConversation(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "")
}

// DeleteConversation godoc
// @Summary Delete one conversation
// @Tags Chat
// @Produce json
// @Param id path string true "Conversation id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/history/{id} [delete]
func (ch *ChatController) DeleteConversation(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := ch.chatService.DeleteConversation(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Conversation deleted")
}
