package services

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"sekahub/internal/models/db_models"
	"sekahub/internal/models/request_models"
	"sekahub/internal/repositories"
	"sekahub/pkg/storage"
	"sekahub/pkg/utils"
)

type BlogServiceInterface interface {
	CreatePost(ctx context.Context, request request_models.CreateBlogPostRequest) (*db_models.BlogPost, error)
	UpdatePost(ctx context.Context, id string, request request_models.UpdateBlogPostRequest) (*db_models.BlogPost, error)
	DeletePost(ctx context.Context, id string) error
	GetPostBySlug(ctx context.Context, slug string) (*db_models.BlogPost, error)
	ListPosts(ctx context.Context, includeDrafts bool, page, pageSize int) ([]db_models.BlogPost, error)
	UploadPostImage(ctx context.Context, id string, file *multipart.FileHeader) (string, error)
}

type BlogService struct {
	blogRepo repositories.BlogRepository
	uploader storage.Uploader
}

func NewBlogService(blogRepo repositories.BlogRepository, uploader storage.Uploader) BlogServiceInterface {
	return &BlogService{blogRepo: blogRepo, uploader: uploader}
}

func (s *BlogService) CreatePost(ctx context.Context, request request_models.CreateBlogPostRequest) (*db_models.BlogPost, error) {
	existing, err := s.blogRepo.FindBySlug(ctx, request.Slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrSlugTaken
	}

	post := &db_models.BlogPost{
		Title:     request.Title,
		Slug:      request.Slug,
		Excerpt:   request.Excerpt,
		Content:   request.Content,
		ImageURL:  request.ImageURL,
		Published: request.Published,
	}
	if request.CategoryID != "" {
		categoryID, err := uuid.Parse(request.CategoryID)
		if err != nil {
			return nil, utils.ErrRecordNotFound
		}
		post.CategoryID = &categoryID
	}

	if err := s.blogRepo.Insert(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return post, nil
}

func (s *BlogService) UpdatePost(ctx context.Context, id string, request request_models.UpdateBlogPostRequest) (*db_models.BlogPost, error) {
	post, err := s.blogRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrRecordNotFound
	}

	if request.Title != nil {
		post.Title = *request.Title
	}
	if request.Slug != nil {
		post.Slug = *request.Slug
	}
	if request.Excerpt != nil {
		post.Excerpt = *request.Excerpt
	}
	if request.Content != nil {
		post.Content = *request.Content
	}
	if request.ImageURL != nil {
		post.ImageURL = *request.ImageURL
	}
	if request.CategoryID != nil {
		categoryID, err := uuid.Parse(*request.CategoryID)
		if err != nil {
			return nil, utils.ErrRecordNotFound
		}
		post.CategoryID = &categoryID
	}
	if request.Published != nil {
		post.Published = *request.Published
	}

	if err := s.blogRepo.Update(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return post, nil
}

func (s *BlogService) DeletePost(ctx context.Context, id string) error {
	post, err := s.blogRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrRecordNotFound
	}
	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *BlogService) GetPostBySlug(ctx context.Context, slug string) (*db_models.BlogPost, error) {
	post, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrRecordNotFound
	}
	return post, nil
}

func (s *BlogService) ListPosts(ctx context.Context, includeDrafts bool, page, pageSize int) ([]db_models.BlogPost, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	posts, err := s.blogRepo.List(ctx, !includeDrafts, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return posts, nil
}

func (s *BlogService) UploadPostImage(ctx context.Context, id string, file *multipart.FileHeader) (string, error) {
	post, err := s.blogRepo.FindById(ctx, id)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if post == nil {
		return "", utils.ErrRecordNotFound
	}

	if s.uploader == nil {
		return "", utils.ErrStorageUnavailable
	}

	url, err := s.uploader.Upload(ctx, file, "blog-images")
	if err != nil {
		return "", err
	}

	post.ImageURL = url
	if err := s.blogRepo.Update(ctx, post); err != nil {
		return "", utils.ErrDatabaseError
	}
	return url, nil
}
