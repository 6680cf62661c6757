package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"sekahub/cmd/fx/account_fx"
	"sekahub/cmd/fx/apikeys_fx"
	"sekahub/cmd/fx/billing_fx"
	"sekahub/cmd/fx/blog_fx"
	"sekahub/cmd/fx/catalog_fx"
	"sekahub/cmd/fx/chat_fx"
	"sekahub/cmd/fx/controllers_fx"
	"sekahub/cmd/fx/dashboard_fx"
	"sekahub/cmd/fx/db_fx"
	"sekahub/cmd/fx/mail_fx"
	"sekahub/cmd/fx/memcache_fx"
	"sekahub/cmd/fx/prompt_fx"
	"sekahub/cmd/fx/scripts_fx"
	"sekahub/cmd/fx/storage_fx"
	"sekahub/internal/api/controllers"
	"sekahub/internal/services"
	"sekahub/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		storage_fx.Module,
		apikeys_fx.Module,
		account_fx.Module,
		billing_fx.Module,
		catalog_fx.Module,
		chat_fx.Module,
		prompt_fx.Module,
		scripts_fx.Module,
		blog_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	billingController *controllers.BillingController,
	chatController *controllers.ChatController,
	toolsController *controllers.ToolsController,
	promptController *controllers.PromptController,
	scriptsController *controllers.ScriptsController,
	blogController *controllers.BlogController,
	dashboardController *controllers.DashboardController,
	entitlements services.EntitlementService,
) *gin.Engine {

	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController, billingController, chatController,
		toolsController, promptController, scriptsController,
		blogController, dashboardController, entitlements)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	billingController *controllers.BillingController,
	chatController *controllers.ChatController,
	toolsController *controllers.ToolsController,
	promptController *controllers.PromptController,
	scriptsController *controllers.ScriptsController,
	blogController *controllers.BlogController,
	dashboardController *controllers.DashboardController,
	entitlements services.EntitlementService) {

	api := r.Group("/api")

	// Provider callbacks carry their own signature, never a bearer token.
	api.POST("/stripe-webhook", billingController.HandleWebhook)

	accounts := api.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	blog := api.Group("/blog")
	blog.GET("", blogController.ListPosts)
	blog.GET("/:slug", blogController.GetPost)

	authed := api.Group("")
	authed.Use(middleware.JWTAuthMiddleware())

	authed.GET("/accounts/me", accountController.Me)

	billing := authed.Group("/billing")
	billing.POST("/create-checkout-session", billingController.CreateCheckoutSession)
	billing.POST("/create-portal-session", billingController.CreatePortalSession)
	billing.GET("/subscription-status", billingController.SubscriptionStatus)
	authed.POST("/cancel-subscription", billingController.CancelSubscription)

	// Premium surface: everything below requires an active subscription.
	premium := authed.Group("")
	premium.Use(middleware.RequireSubscription(entitlements))

	premium.POST("/chat", chatController.SendMessage)
	premium.GET("/chat/history", chatController.ListHistory)
	premium.GET("/chat/history/:id", chatController.GetConversation)
	premium.DELETE("/chat/history/:id", chatController.DeleteConversation)

	premium.GET("/tools", toolsController.ListTools)
	premium.GET("/tools/search", toolsController.SearchTools)
	premium.GET("/tools/:id", toolsController.GetTool)
	premium.GET("/categories", toolsController.ListCategories)

	premium.GET("/prompts", promptController.ListPrompts)
	premium.GET("/prompts/search", promptController.SearchPrompts)
	premium.GET("/prompts/:id", promptController.GetPrompt)

	premium.GET("/scripts", scriptsController.ListScripts)
	premium.GET("/scripts/:id", scriptsController.GetScript)
	premium.GET("/scripts/:id/download", scriptsController.DownloadScript)

	admin := authed.Group("/admin")
	admin.Use(middleware.RoleMiddleware("admin"))
	admin.GET("/dashboard", dashboardController.GetStats)
	admin.GET("/accounts", accountController.ListAccounts)

	admin.POST("/tools", toolsController.CreateTool)
	admin.PUT("/tools/:id", toolsController.UpdateTool)
	admin.DELETE("/tools/:id", toolsController.DeleteTool)
	admin.POST("/tools/:id/logo", toolsController.UploadLogo)
	admin.POST("/categories", toolsController.CreateCategory)
	admin.DELETE("/categories/:id", toolsController.DeleteCategory)

	admin.POST("/prompts", promptController.CreatePrompt)
	admin.PUT("/prompts/:id", promptController.UpdatePrompt)
	admin.DELETE("/prompts/:id", promptController.DeletePrompt)

	admin.POST("/scripts", scriptsController.CreateScript)
	admin.PUT("/scripts/:id", scriptsController.UpdateScript)
	admin.DELETE("/scripts/:id", scriptsController.DeleteScript)

	admin.POST("/blog", blogController.CreatePost)
	admin.PUT("/blog/:id", blogController.UpdatePost)
	admin.DELETE("/blog/:id", blogController.DeletePost)
	admin.POST("/blog/:id/image", blogController.UploadImage)
}
