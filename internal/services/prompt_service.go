package services

import (
	"context"

	"sekahub/internal/models/db_models"
	"sekahub/internal/models/request_models"
	"sekahub/internal/repositories"
	"sekahub/pkg/utils"
)

type PromptServiceInterface interface {
	CreatePrompt(ctx context.Context, request request_models.CreatePromptRequest) (*db_models.Prompt, error)
	UpdatePrompt(ctx context.Context, id string, request request_models.UpdatePromptRequest) (*db_models.Prompt, error)
	DeletePrompt(ctx context.Context, id string) error
	GetPrompt(ctx context.Context, id string) (*db_models.Prompt, error)
	ListPrompts(ctx context.Context, page, pageSize int) ([]db_models.Prompt, error)
	SearchPrompts(ctx context.Context, query string) ([]db_models.Prompt, error)
}

type PromptService struct {
	promptRepo repositories.PromptRepository
}

func NewPromptService(promptRepo repositories.PromptRepository) PromptServiceInterface {
	return &PromptService{promptRepo: promptRepo}
}

func (s *PromptService) CreatePrompt(ctx context.Context, request request_models.CreatePromptRequest) (*db_models.Prompt, error) {
	prompt := &db_models.Prompt{
		Title:       request.Title,
		Description: request.Description,
		PromptText:  request.PromptText,
		Tool:        request.Tool,
	}
	if err := s.promptRepo.Insert(ctx, prompt); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return prompt, nil
}

func (s *PromptService) UpdatePrompt(ctx context.Context, id string, request request_models.UpdatePromptRequest) (*db_models.Prompt, error) {
	prompt, err := s.promptRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if prompt == nil {
		return nil, utils.ErrRecordNotFound
	}

	if request.Title != nil {
		prompt.Title = *request.Title
	}
	if request.Description != nil {
		prompt.Description = *request.Description
	}
	if request.PromptText != nil {
		prompt.PromptText = *request.PromptText
	}
	if request.Tool != nil {
		prompt.Tool = *request.Tool
	}

	if err := s.promptRepo.Update(ctx, prompt); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return prompt, nil
}

func (s *PromptService) DeletePrompt(ctx context.Context, id string) error {
	prompt, err := s.promptRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if prompt == nil {
		return utils.ErrRecordNotFound
	}
	if err := s.promptRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *PromptService) GetPrompt(ctx context.Context, id string) (*db_models.Prompt, error) {
	prompt, err := s.promptRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if prompt == nil {
		return nil, utils.ErrRecordNotFound
	}
	return prompt, nil
}

func (s *PromptService) ListPrompts(ctx context.Context, page, pageSize int) ([]db_models.Prompt, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	prompts, err := s.promptRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return prompts, nil
}

func (s *PromptService) SearchPrompts(ctx context.Context, query string) ([]db_models.Prompt, error) {
	if query == "" {
		return []db_models.Prompt{}, nil
	}
	prompts, err := s.promptRepo.Search(ctx, query, searchResultLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return prompts, nil
}
