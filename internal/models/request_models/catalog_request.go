package request_models

type CreateToolRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description" binding:"required"`
	CategoryID    string `json:"category_id" binding:"required,uuid"`
	Subcategory   string `json:"subcategory"`
	PriceType     string `json:"price_type"`
	LogoURL       string `json:"logo_url"`
	WebsiteLink   string `json:"website_link" binding:"required,url"`
	AffiliateLink string `json:"affiliate_link"`
}

type UpdateToolRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	CategoryID    *string `json:"category_id"`
	Subcategory   *string `json:"subcategory"`
	PriceType     *string `json:"price_type"`
	LogoURL       *string `json:"logo_url"`
	WebsiteLink   *string `json:"website_link"`
	AffiliateLink *string `json:"affiliate_link"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug" binding:"required"`
	Description *string `json:"description"`
}
