package services

import (
	"context"
	"log"
	"mime/multipart"

	"github.com/google/uuid"
	"sekahub/internal/models/db_models"
	"sekahub/internal/models/request_models"
	"sekahub/internal/repositories"
	"sekahub/pkg/storage"
	"sekahub/pkg/utils"
)

const (
	defaultPageSize   = 20
	maxPageSize       = 100
	searchResultLimit = 25
)

type CatalogServiceInterface interface {
	CreateTool(ctx context.Context, request request_models.CreateToolRequest) (*db_models.Tool, error)
	UpdateTool(ctx context.Context, id string, request request_models.UpdateToolRequest) (*db_models.Tool, error)
	DeleteTool(ctx context.Context, id string) error
	GetTool(ctx context.Context, id string) (*db_models.Tool, error)
	ListTools(ctx context.Context, categoryID string, page, pageSize int) ([]db_models.Tool, error)
	SearchTools(ctx context.Context, query string, semantic bool) ([]db_models.Tool, error)
	UploadToolLogo(ctx context.Context, id string, file *multipart.FileHeader) (string, error)

	CreateCategory(ctx context.Context, request request_models.CreateCategoryRequest) (*db_models.Category, error)
	ListCategories(ctx context.Context) ([]db_models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type CatalogService struct {
	toolRepo      repositories.ToolRepository
	categoryRepo  repositories.CategoryRepository
	embeddingRepo repositories.ToolEmbeddingRepository
	embedder      utils.EmbeddingClientInterface
	uploader      storage.Uploader
}

func NewCatalogService(
	toolRepo repositories.ToolRepository,
	categoryRepo repositories.CategoryRepository,
	embeddingRepo repositories.ToolEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
	uploader storage.Uploader,
) CatalogServiceInterface {
	return &CatalogService{
		toolRepo:      toolRepo,
		categoryRepo:  categoryRepo,
		embeddingRepo: embeddingRepo,
		embedder:      embedder,
		uploader:      uploader,
	}
}

func (s *CatalogService) CreateTool(ctx context.Context, request request_models.CreateToolRequest) (*db_models.Tool, error) {
	categoryID, err := uuid.Parse(request.CategoryID)
	if err != nil {
		return nil, utils.ErrRecordNotFound
	}
	category, err := s.categoryRepo.FindById(ctx, request.CategoryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrRecordNotFound
	}

	tool := &db_models.Tool{
		Name:          request.Name,
		Description:   request.Description,
		CategoryID:    categoryID,
		Subcategory:   request.Subcategory,
		PriceType:     request.PriceType,
		LogoURL:       request.LogoURL,
		WebsiteLink:   request.WebsiteLink,
		AffiliateLink: request.AffiliateLink,
	}
	if err := s.toolRepo.Insert(ctx, tool); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.refreshEmbedding(ctx, tool)
	return tool, nil
}

// refreshEmbedding recomputes the search vector for a tool. Search quality
// degrades gracefully, so a failure here is logged and swallowed.
func (s *CatalogService) refreshEmbedding(ctx context.Context, tool *db_models.Tool) {
	if s.embedder == nil {
		return
	}

	vector, err := s.embedder.GetEmbedding(ctx, tool.Name+" "+tool.Description)
	if err != nil {
		log.Printf("catalog: embedding failed for tool %s: %v", tool.ID, err)
		return
	}

	err = s.embeddingRepo.Upsert(ctx, &db_models.ToolEmbedding{
		ToolID:    tool.ID,
		Embedding: vector,
	})
	if err != nil {
		log.Printf("catalog: embedding upsert failed for tool %s: %v", tool.ID, err)
	}
}

func (s *CatalogService) UpdateTool(ctx context.Context, id string, request request_models.UpdateToolRequest) (*db_models.Tool, error) {
	tool, err := s.toolRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tool == nil {
		return nil, utils.ErrRecordNotFound
	}

	reindex := false
	if request.Name != nil {
		tool.Name = *request.Name
		reindex = true
	}
	if request.Description != nil {
		tool.Description = *request.Description
		reindex = true
	}
	if request.CategoryID != nil {
		categoryID, err := uuid.Parse(*request.CategoryID)
		if err != nil {
			return nil, utils.ErrRecordNotFound
		}
		tool.CategoryID = categoryID
	}
	if request.Subcategory != nil {
		tool.Subcategory = *request.Subcategory
	}
	if request.PriceType != nil {
		tool.PriceType = *request.PriceType
	}
	if request.LogoURL != nil {
		tool.LogoURL = *request.LogoURL
	}
	if request.WebsiteLink != nil {
		tool.WebsiteLink = *request.WebsiteLink
	}
	if request.AffiliateLink != nil {
		tool.AffiliateLink = *request.AffiliateLink
	}

	if err := s.toolRepo.Update(ctx, tool); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if reindex {
		s.refreshEmbedding(ctx, tool)
	}
	return tool, nil
}

func (s *CatalogService) DeleteTool(ctx context.Context, id string) error {
	tool, err := s.toolRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if tool == nil {
		return utils.ErrRecordNotFound
	}
	if err := s.toolRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CatalogService) GetTool(ctx context.Context, id string) (*db_models.Tool, error) {
	tool, err := s.toolRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tool == nil {
		return nil, utils.ErrRecordNotFound
	}
	return tool, nil
}

func (s *CatalogService) ListTools(ctx context.Context, categoryID string, page, pageSize int) ([]db_models.Tool, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	tools, err := s.toolRepo.List(ctx, categoryID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return tools, nil
}

// SearchTools matches by substring, or by embedding distance when semantic
// search is requested and an embedder is configured.
func (s *CatalogService) SearchTools(ctx context.Context, query string, semantic bool) ([]db_models.Tool, error) {
	if query == "" {
		return []db_models.Tool{}, nil
	}

	if semantic && s.embedder != nil {
		tools, err := s.semanticSearch(ctx, query)
		if err == nil {
			return tools, nil
		}
		log.Printf("catalog: semantic search failed, falling back to substring: %v", err)
	}

	tools, err := s.toolRepo.Search(ctx, query, searchResultLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return tools, nil
}

func (s *CatalogService) semanticSearch(ctx context.Context, query string) ([]db_models.Tool, error) {
	vector, err := s.embedder.GetEmbedding(ctx, query)
	if err != nil {
		return nil, err
	}

	embeddings, err := s.embeddingRepo.FindNearest(ctx, vector, searchResultLimit)
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return []db_models.Tool{}, nil
	}

	ids := make([]string, 0, len(embeddings))
	for _, e := range embeddings {
		ids = append(ids, e.ToolID.String())
	}
	return s.toolRepo.ListByIds(ctx, ids)
}

func (s *CatalogService) UploadToolLogo(ctx context.Context, id string, file *multipart.FileHeader) (string, error) {
	tool, err := s.toolRepo.FindById(ctx, id)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if tool == nil {
		return "", utils.ErrRecordNotFound
	}

	// The uploader is optional at startup; without Cloudinary credentials
	// admin uploads are rejected instead of crashing the worker.
	if s.uploader == nil {
		return "", utils.ErrStorageUnavailable
	}

	url, err := s.uploader.Upload(ctx, file, "tool-logos")
	if err != nil {
		return "", err
	}

	tool.LogoURL = url
	if err := s.toolRepo.Update(ctx, tool); err != nil {
		return "", utils.ErrDatabaseError
	}
	return url, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, request request_models.CreateCategoryRequest) (*db_models.Category, error) {
	existing, err := s.categoryRepo.FindBySlug(ctx, request.Slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return existing, nil
	}

	category := &db_models.Category{
		Name:        request.Name,
		Slug:        request.Slug,
		Description: request.Description,
	}
	if err := s.categoryRepo.Insert(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return category, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return categories, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categoryRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrRecordNotFound
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
