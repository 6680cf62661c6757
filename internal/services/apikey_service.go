package services

import (
	"context"
	"fmt"

	"sekahub/internal/repositories"
	"sekahub/pkg/utils"
)

// ApiKeyService resolves named secrets (Stripe keys, inference API keys)
// from the database at call time. Values are intentionally not cached across
// requests so a rotated key takes effect without a redeploy.
type ApiKeyService interface {
	Resolve(ctx context.Context, keyName string) (string, error)
}

type apiKeyService struct {
	repo repositories.ApiKeyRepository
}

func NewApiKeyService(repo repositories.ApiKeyRepository) ApiKeyService {
	return &apiKeyService{repo: repo}
}

func (s *apiKeyService) Resolve(ctx context.Context, keyName string) (string, error) {
	key, err := s.repo.FindByName(ctx, keyName)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if key == nil || key.KeyValue == "" {
		return "", fmt.Errorf("%w: %s", utils.ErrApiKeyNotFound, keyName)
	}
	return key.KeyValue, nil
}
