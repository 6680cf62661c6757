package controllers_fx

import (
	"go.uber.org/fx"
	"sekahub/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewBillingController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewToolsController),
	fx.Provide(controllers.NewPromptController),
	fx.Provide(controllers.NewScriptsController),
	fx.Provide(controllers.NewBlogController),
	fx.Provide(controllers.NewDashboardController))
