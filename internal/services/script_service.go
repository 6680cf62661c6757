package services

import (
	"context"

	"sekahub/internal/models/db_models"
	"sekahub/internal/models/request_models"
	"sekahub/internal/repositories"
	"sekahub/pkg/utils"
)

type ScriptServiceInterface interface {
	CreateScript(ctx context.Context, request request_models.CreateScriptRequest) (*db_models.Script, error)
	UpdateScript(ctx context.Context, id string, request request_models.UpdateScriptRequest) (*db_models.Script, error)
	DeleteScript(ctx context.Context, id string) error
	GetScript(ctx context.Context, id string) (*db_models.Script, error)
	ListScripts(ctx context.Context, page, pageSize int) ([]db_models.Script, error)
	DownloadURL(ctx context.Context, id string) (string, error)
}

type ScriptService struct {
	scriptRepo repositories.ScriptRepository
}

func NewScriptService(scriptRepo repositories.ScriptRepository) ScriptServiceInterface {
	return &ScriptService{scriptRepo: scriptRepo}
}

func (s *ScriptService) CreateScript(ctx context.Context, request request_models.CreateScriptRequest) (*db_models.Script, error) {
	script := &db_models.Script{
		Title:       request.Title,
		Description: request.Description,
		FileURL:     request.FileURL,
	}
	if err := s.scriptRepo.Insert(ctx, script); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return script, nil
}

func (s *ScriptService) UpdateScript(ctx context.Context, id string, request request_models.UpdateScriptRequest) (*db_models.Script, error) {
	script, err := s.scriptRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if script == nil {
		return nil, utils.ErrRecordNotFound
	}

	if request.Title != nil {
		script.Title = *request.Title
	}
	if request.Description != nil {
		script.Description = *request.Description
	}
	if request.FileURL != nil {
		script.FileURL = *request.FileURL
	}

	if err := s.scriptRepo.Update(ctx, script); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return script, nil
}

func (s *ScriptService) DeleteScript(ctx context.Context, id string) error {
	script, err := s.scriptRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if script == nil {
		return utils.ErrRecordNotFound
	}
	if err := s.scriptRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ScriptService) GetScript(ctx context.Context, id string) (*db_models.Script, error) {
	script, err := s.scriptRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if script == nil {
		return nil, utils.ErrRecordNotFound
	}
	return script, nil
}

func (s *ScriptService) ListScripts(ctx context.Context, page, pageSize int) ([]db_models.Script, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	scripts, err := s.scriptRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return scripts, nil
}

// DownloadURL resolves the hosted file for a script. Gating happens at
// the route level; here we only care that the record exists.
func (s *ScriptService) DownloadURL(ctx context.Context, id string) (string, error) {
	script, err := s.scriptRepo.FindById(ctx, id)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if script == nil {
		return "", utils.ErrRecordNotFound
	}
	return script.FileURL, nil
}
