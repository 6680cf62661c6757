package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"sekahub/internal/models/request_models"
	"sekahub/internal/services"
	"sekahub/pkg/utils"
)

type BlogController struct {
	blogService services.BlogServiceInterface
}

func NewBlogController(blogService services.BlogServiceInterface) *BlogController {
	return &BlogController{blogService: blogService}
}

// ListPosts godoc
// @Summary List published blog posts
// @Tags Blog
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /blog [get]
func (b *BlogController) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	// Drafts are only visible through the admin listing.
	includeDrafts := c.GetString("Role") == "admin" && c.Query("drafts") == "true"

	posts, err := b.blogService.ListPosts(c.Request.Context(), includeDrafts, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "")
}

// GetPost godoc
// @Summary Get one post by slug
// @Tags Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} utils.APIResponse
// @Router /blog/{slug} [get]
func (b *BlogController) GetPost(c *gin.Context) {
	post, err := b.blogService.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "")
}

// CreatePost godoc
// @Summary Create a blog post
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body request_models.CreateBlogPostRequest true "Post payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/blog [post]
func (b *BlogController) CreatePost(c *gin.Context) {
	var req request_models.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	post, err := b.blogService.CreatePost(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post created")
}

// UpdatePost godoc
// @Summary Update a blog post
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Post id"
// @Param request body request_models.UpdateBlogPostRequest true "Post payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/blog/{id} [put]
func (b *BlogController) UpdatePost(c *gin.Context) {
	var req request_models.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	post, err := b.blogService.UpdatePost(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post updated")
}

// DeletePost godoc
// @Summary Delete a blog post
// @Tags Blog
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/blog/{id} [delete]
func (b *BlogController) DeletePost(c *gin.Context) {
	if err := b.blogService.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post deleted")
}

// UploadImage godoc
// @Summary Upload a post cover image
// @Tags Blog
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Post id"
// @Param file formData file true "Cover image"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/blog/{id}/image [post]
func (b *BlogController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing file")
		return
	}

	url, err := b.blogService.UploadPostImage(c.Request.Context(), c.Param("id"), file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"url": url}, "Image uploaded")
}
