package request_models

type CreateBlogPostRequest struct {
	Title      string `json:"title" binding:"required"`
	Slug       string `json:"slug" binding:"required"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content" binding:"required"`
	ImageURL   string `json:"image_url"`
	CategoryID string `json:"category_id"`
	Published  bool   `json:"published"`
}

type UpdateBlogPostRequest struct {
	Title      *string `json:"title"`
	Slug       *string `json:"slug"`
	Excerpt    *string `json:"excerpt"`
	Content    *string `json:"content"`
	ImageURL   *string `json:"image_url"`
	CategoryID *string `json:"category_id"`
	Published  *bool   `json:"published"`
}
