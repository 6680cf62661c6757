package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"sekahub/internal/models/request_models"
	"sekahub/internal/services"
	"sekahub/pkg/utils"
)

type ScriptsController struct {
	scriptService services.ScriptServiceInterface
}

func NewScriptsController(scriptService services.ScriptServiceInterface) *ScriptsController {
	return &ScriptsController{scriptService: scriptService}
}

// ListScripts godoc
// @Summary List automation scripts
// @Tags Scripts
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /scripts [get]
func (s *ScriptsController) ListScripts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	scripts, err := s.scriptService.ListScripts(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, scripts, "")
}

// GetScript godoc
// @Summary Get one script
// @Tags Scripts
// @Produce json
// @Param id path string true "Script id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /scripts/{id} [get]
func (s *ScriptsController) GetScript(c *gin.Context) {
	script, err := s.scriptService.GetScript(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, script, "")
}

// DownloadScript godoc
// @Summary Resolve the download URL for a script
// @Tags Scripts
// @Produce json
// @Param id path string true "Script id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /scripts/{id}/download [get]
func (s *ScriptsController) DownloadScript(c *gin.Context) {
	url, err := s.scriptService.DownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"url": url}, "")
}

// CreateScript godoc
// @Summary Create a script
// @Tags Scripts
// @Accept json
// @Produce json
// @Param request body request_models.CreateScriptRequest true "Script payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/scripts [post]
func (s *ScriptsController) CreateScript(c *gin.Context) {
	var req request_models.CreateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	script, err := s.scriptService.CreateScript(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, script, "Script created")
}

// UpdateScript godoc
// @Summary Update a script
// @Tags Scripts
// @Accept json
// @Produce json
// @Param id path string true "Script id"
// @Param request body request_models.UpdateScriptRequest true "Script payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/scripts/{id} [put]
func (s *ScriptsController) UpdateScript(c *gin.Context) {
	var req request_models.UpdateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	script, err := s.scriptService.UpdateScript(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, script, "Script updated")
}

// DeleteScript godoc
// @Summary Delete a script
// @Tags Scripts
// @Produce json
// @Param id path string true "Script id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/scripts/{id} [delete]
func (s *ScriptsController) DeleteScript(c *gin.Context) {
	if err := s.scriptService.DeleteScript(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Script deleted")
}
