package services

import (
	"context"

	"sekahub/internal/models/db_models"
	"sekahub/internal/models/response_models"
	"sekahub/internal/repositories"
	"sekahub/pkg/utils"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*response_models.DashboardStats, error)
}

type DashboardService struct {
	accountRepo      repositories.AccountRepository
	toolRepo         repositories.ToolRepository
	promptRepo       repositories.PromptRepository
	scriptRepo       repositories.ScriptRepository
	blogRepo         repositories.BlogRepository
	subscriptionRepo repositories.SubscriptionRepository
}

func NewDashboardService(
	accountRepo repositories.AccountRepository,
	toolRepo repositories.ToolRepository,
	promptRepo repositories.PromptRepository,
	scriptRepo repositories.ScriptRepository,
	blogRepo repositories.BlogRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) DashboardServiceInterface {
	return &DashboardService{
		accountRepo:      accountRepo,
		toolRepo:         toolRepo,
		promptRepo:       promptRepo,
		scriptRepo:       scriptRepo,
		blogRepo:         blogRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func (s *DashboardService) GetStats(ctx context.Context) (*response_models.DashboardStats, error) {
	stats := &response_models.DashboardStats{}

	var err error
	if stats.TotalAccounts, err = s.accountRepo.Count(ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stats.TotalTools, err = s.toolRepo.Count(ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stats.TotalPrompts, err = s.promptRepo.Count(ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stats.TotalScripts, err = s.scriptRepo.Count(ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stats.TotalBlogPosts, err = s.blogRepo.Count(ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if stats.ActiveSubscriptions, err = s.subscriptionRepo.CountByStatus(ctx, db_models.SubStatusActive); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return stats, nil
}
