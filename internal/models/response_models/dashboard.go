package response_models

type DashboardStats struct {
	TotalAccounts       int64 `json:"total_accounts"`
	TotalTools          int64 `json:"total_tools"`
	TotalPrompts        int64 `json:"total_prompts"`
	TotalScripts        int64 `json:"total_scripts"`
	TotalBlogPosts      int64 `json:"total_blog_posts"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
}
