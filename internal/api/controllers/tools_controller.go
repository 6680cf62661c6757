package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"sekahub/internal/models/request_models"
	"sekahub/internal/services"
	"sekahub/pkg/utils"
)

type ToolsController struct {
	catalogService services.CatalogServiceInterface
}

func NewToolsController(catalogService services.CatalogServiceInterface) *ToolsController {
	return &ToolsController{catalogService: catalogService}
}

// ListTools godoc
// @Summary List tools, optionally filtered by category
// @Tags Tools
// @Produce json
// @Param category_id query string false "Category id"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tools [get]
func (t *ToolsController) ListTools(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	tools, err := t.catalogService.ListTools(c.Request.Context(), c.Query("category_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tools, "")
}

// SearchTools godoc
// @Summary Search tools by text or semantically
// @Tags Tools
// @Produce json
// @Param q query string true "Search query"
// @Param semantic query bool false "Use semantic search"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tools/search [get]
func (t *ToolsController) SearchTools(c *gin.Context) {
	semantic, _ := strconv.ParseBool(c.DefaultQuery("semantic", "false"))

	tools, err := t.catalogService.SearchTools(c.Request.Context(), c.Query("q"), semantic)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tools, "")
}

// GetTool godoc
// @Summary Get one tool
// @Tags Tools
// @Produce json
// @Param id path string true "Tool id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tools/{id} [get]
func (t *ToolsController) GetTool(c *gin.Context) {
	tool, err := t.catalogService.GetTool(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tool, "")
}

// CreateTool godoc
// @Summary Create a tool
// @Tags Tools
// @Accept json
// @Produce json
// @Param request body request_models.CreateToolRequest true "Tool payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/tools [post]
func (t *ToolsController) CreateTool(c *gin.Context) {
	var req request_models.CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	tool, err := t.catalogService.CreateTool(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tool, "Tool created")
}

// UpdateTool godoc
// @Summary Update a tool
// @Tags Tools
// @Accept json
// @Produce json
// @Param id path string true "Tool id"
// @Param request body request_models.UpdateToolRequest true "Tool payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/tools/{id} [put]
func (t *ToolsController) UpdateTool(c *gin.Context) {
	var req request_models.UpdateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	tool, err := t.catalogService.UpdateTool(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tool, "Tool updated")
}

// DeleteTool godoc
// @Summary Delete a tool
// @Tags Tools
// @Produce json
// @Param id path string true "Tool id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/tools/{id} [delete]
func (t *ToolsController) DeleteTool(c *gin.Context) {
	if err := t.catalogService.DeleteTool(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Tool deleted")
}

// UploadLogo godoc
// @Summary Upload a tool logo
// @Tags Tools
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Tool id"
// @Param file formData file true "Logo image"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/tools/{id}/logo [post]
func (t *ToolsController) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing file")
		return
	}

	url, err := t.catalogService.UploadToolLogo(c.Request.Context(), c.Param("id"), file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"url": url}, "Logo uploaded")
}

// ListCategories godoc
// @Summary List tool categories
// @Tags Tools
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /categories [get]
func (t *ToolsController) ListCategories(c *gin.Context) {
	categories, err := t.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "")
}

// CreateCategory godoc
// @Summary Create a category
// @Tags Tools
// @Accept json
// @Produce json
// @Param request body request_models.CreateCategoryRequest true "Category payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/categories [post]
func (t *ToolsController) CreateCategory(c *gin.Context) {
	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	category, err := t.catalogService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Category created")
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags Tools
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/categories/{id} [delete]
func (t *ToolsController) DeleteCategory(c *gin.Context) {
	if err := t.catalogService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Category deleted")
}
