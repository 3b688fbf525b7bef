package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/kland-web/internal/dto"
	"github.com/noah-isme/kland-web/internal/models"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
)

type newsRepository interface {
	List(ctx context.Context, publishedOnly bool, limit int) ([]models.News, error)
	FindByID(ctx context.Context, id int64) (*models.News, error)
	Create(ctx context.Context, item *models.News) error
	Update(ctx context.Context, item *models.News) error
	Delete(ctx context.Context, id int64) error
}

// NewsService manages news entries.
type NewsService struct {
	repo      newsRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNewsService constructs a NewsService.
func NewNewsService(repo newsRepository, validate *validator.Validate, logger *zap.Logger) *NewsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &NewsService{repo: repo, validator: validate, logger: logger}
}

// ListPublished returns published news newest first, at most limit when limit > 0.
func (s *NewsService) ListPublished(ctx context.Context, limit int) ([]models.News, error) {
	items, err := s.repo.List(ctx, true, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list news")
	}
	return items, nil
}

// ListAll returns every news entry for the back-office.
func (s *NewsService) ListAll(ctx context.Context) ([]models.News, error) {
	items, err := s.repo.List(ctx, false, 0)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list news")
	}
	return items, nil
}

// Get returns a news entry. Unpublished entries are hidden unless
// includeUnpublished is set.
func (s *NewsService) Get(ctx context.Context, id int64, includeUnpublished bool) (*models.News, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "news not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load news")
	}
	if !item.IsPublished && !includeUnpublished {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "news not found")
	}
	return item, nil
}

// Create adds a news entry.
func (s *NewsService) Create(ctx context.Context, req dto.NewsRequest) (*models.News, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	item := &models.News{Title: req.Title, Content: req.Content, ImageURL: req.ImageURL, IsPublished: req.IsPublished}
	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error("failed to create news", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save news")
	}
	return item, nil
}

// Update replaces a news entry.
func (s *NewsService) Update(ctx context.Context, id int64, req dto.NewsRequest) (*models.News, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	item := &models.News{ID: id, Title: req.Title, Content: req.Content, ImageURL: req.ImageURL, IsPublished: req.IsPublished}
	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "news not found")
		}
		s.logger.Error("failed to update news", zap.Int64("news_id", id), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save news")
	}
	return item, nil
}

// Delete removes a news entry.
func (s *NewsService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "news not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete news")
	}
	return nil
}

func (s *NewsService) validate(req *dto.NewsRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "title and content are required")
	}
	return nil
}
