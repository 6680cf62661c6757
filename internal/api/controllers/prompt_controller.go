package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"sekahub/internal/models/request_models"
	"sekahub/internal/services"
	"sekahub/pkg/utils"
)

type PromptController struct {
	promptService services.PromptServiceInterface
}

func NewPromptController(promptService services.PromptServiceInterface) *PromptController {
	return &PromptController{promptService: promptService}
}

// ListPrompts godoc
// @Summary List prompts
// @Tags Prompts
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /prompts [get]
func (p *PromptController) ListPrompts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	prompts, err := p.promptService.ListPrompts(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prompts, "")
}

// SearchPrompts godoc
// @Summary Search prompts
// @Tags Prompts
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /prompts/search [get]
func (p *PromptController) SearchPrompts(c *gin.Context) {
	prompts, err := p.promptService.SearchPrompts(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prompts, "")
}

// GetPrompt godoc
// @Summary Get one prompt
// @Tags Prompts
// @Produce json
// @Param id path string true "Prompt id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /prompts/{id} [get]
func (p *PromptController) GetPrompt(c *gin.Context) {
	prompt, err := p.promptService.GetPrompt(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prompt, "")
}

// CreatePrompt godoc
// @Summary Create a prompt
// @Tags Prompts
// @Accept json
// @Produce json
// @Param request body request_models.CreatePromptRequest true "Prompt payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/prompts [post]
func (p *PromptController) CreatePrompt(c *gin.Context) {
	var req request_models.CreatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	prompt, err := p.promptService.CreatePrompt(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prompt, "Prompt created")
}

// UpdatePrompt godoc
// @Summary Update a prompt
// @Tags Prompts
// @Accept json
// @Produce json
// @Param id path string true "Prompt id"
// @Param request body request_models.UpdatePromptRequest true "Prompt payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/prompts/{id} [put]
func (p *PromptController) UpdatePrompt(c *gin.Context) {
	var req request_models.UpdatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	prompt, err := p.promptService.UpdatePrompt(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prompt, "Prompt updated")
}

// DeletePrompt godoc
// @Summary Delete a prompt
// @Tags Prompts
// @Produce json
// @Param id path string true "Prompt id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/prompts/{id} [delete]
func (p *PromptController) DeletePrompt(c *gin.Context) {
	if err := p.promptService.DeletePrompt(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Prompt deleted")
}
