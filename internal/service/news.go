package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/storage"
	"institute-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxSlugAttempts bounds the -2, -3... suffixes tried for generated slugs
const maxSlugAttempts = 50

// NewsService handles news articles of the public portal
type NewsService struct {
	repo      repository.NewsRepositoryInterface
	files     storage.Store
	validator *validator.Validate
	now       func() time.Time
}

// NewNewsService creates a new news service
func NewNewsService(repo repository.NewsRepositoryInterface, files storage.Store, validator *validator.Validate) *NewsService {
	return &NewsService{
		repo:      repo,
		files:     files,
		validator: validator,
		now:       time.Now,
	}
}

// NewsRequest represents the request to create or update an article.
// An empty slug is derived from the title.
type NewsRequest struct {
	Slug    string `json:"slug" validate:"omitempty,slug,max=200"`
	Title   string `json:"title" validate:"required,max=200"`
	Summary string `json:"summary" validate:"max=500"`
	Body    string `json:"body"`
}

// Create creates a draft article
func (s *NewsService) Create(ctx context.Context, authorID *uuid.UUID, req *NewsRequest) (*models.NewsArticle, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	slug, err := s.resolveSlug(req.Slug, req.Title, uuid.Nil)
	if err != nil {
		return nil, err
	}

	article := &models.NewsArticle{
		Slug:     slug,
		Title:    strings.TrimSpace(req.Title),
		Summary:  req.Summary,
		Body:     req.Body,
		Status:   models.NewsStatusDraft,
		AuthorID: authorID,
	}
	article.CreatedBy = actor(ctx)
	article.UpdatedBy = article.CreatedBy

	if err := s.repo.Create(article); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrNewsExists
		}
		return nil, fmt.Errorf("failed to create news article: %w", err)
	}
	return article, nil
}

// resolveSlug returns the explicit slug if it is free, or a free slug derived
// from the title. self is the article being updated, if any.
func (s *NewsService) resolveSlug(explicit, title string, self uuid.UUID) (string, error) {
	if explicit != "" {
		free, err := s.slugFree(explicit, self)
		if err != nil {
			return "", err
		}
		if !free {
			return "", apperrors.ErrNewsExists
		}
		return explicit, nil
	}

	base := validation.Slugify(title)
	if base == "" {
		return "", apperrors.NewValidationError("slug", "cannot be derived from the title; provide one")
	}
	if len(base) > 190 {
		base = strings.TrimRight(base[:190], "-")
	}
	candidate := base
	for i := 2; i <= maxSlugAttempts; i++ {
		free, err := s.slugFree(candidate, self)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", apperrors.ErrNewsExists
}

func (s *NewsService) slugFree(slug string, self uuid.UUID) (bool, error) {
	existing, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return existing.ID == self, nil
}

// GetByID retrieves an article by ID
func (s *NewsService) GetByID(id uuid.UUID) (*models.NewsArticle, error) {
	article, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrNewsNotFound, "news article")
	}
	return article, nil
}

// GetPublishedBySlug retrieves a published article for the public portal
func (s *NewsService) GetPublishedBySlug(slug string) (*models.NewsArticle, error) {
	article, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, lookup(err, apperrors.ErrNewsNotFound, "news article")
	}
	if article.Status != models.NewsStatusPublished {
		return nil, apperrors.ErrNewsNotFound
	}
	return article, nil
}

// List returns a page of articles, latest publication first
func (s *NewsService) List(filter repository.NewsFilter, page, pageSize int) (*ListResponse[models.NewsArticle], error) {
	page, pageSize = NormalizePage(page, pageSize)
	articles, total, err := s.repo.List(filter, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return newList(articles, total, page, pageSize), nil
}

// Update updates an article in any status
func (s *NewsService) Update(ctx context.Context, id uuid.UUID, req *NewsRequest) (*models.NewsArticle, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	article, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrNewsNotFound, "news article")
	}

	slug := article.Slug
	if req.Slug != "" && req.Slug != article.Slug {
		if slug, err = s.resolveSlug(req.Slug, req.Title, article.ID); err != nil {
			return nil, err
		}
	}

	article.Slug = slug
	article.Title = strings.TrimSpace(req.Title)
	article.Summary = req.Summary
	article.Body = req.Body
	article.UpdatedBy = actor(ctx)
	if err := s.repo.Update(article); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrNewsExists
		}
		return nil, fmt.Errorf("failed to update news article: %w", err)
	}
	return article, nil
}

// Publish publishes a draft or archived article. The first publication
// date is kept when an archived article comes back.
func (s *NewsService) Publish(ctx context.Context, id uuid.UUID) (*models.NewsArticle, error) {
	article, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrNewsNotFound, "news article")
	}
	if article.Status == models.NewsStatusPublished {
		return nil, apperrors.ErrInvalidStatusTransition
	}
	if article.PublishedAt == nil {
		now := s.now()
		article.PublishedAt = &now
	}
	article.Status = models.NewsStatusPublished
	article.UpdatedBy = actor(ctx)
	if err := s.repo.Update(article); err != nil {
		return nil, fmt.Errorf("failed to publish news article: %w", err)
	}
	logger.WithContext(ctx).WithField("slug", article.Slug).Info("news article published")
	return article, nil
}

// Archive takes a published article off the portal
func (s *NewsService) Archive(ctx context.Context, id uuid.UUID) (*models.NewsArticle, error) {
	article, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrNewsNotFound, "news article")
	}
	if article.Status != models.NewsStatusPublished {
		return nil, apperrors.ErrInvalidStatusTransition
	}
	article.Status = models.NewsStatusArchived
	article.UpdatedBy = actor(ctx)
	if err := s.repo.Update(article); err != nil {
		return nil, fmt.Errorf("failed to archive news article: %w", err)
	}
	return article, nil
}

// UploadCover stores the cover image of an article
func (s *NewsService) UploadCover(ctx context.Context, id uuid.UUID, filename string, r io.Reader) (*models.NewsArticle, error) {
	article, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrNewsNotFound, "news article")
	}
	path, err := s.files.Save(storage.CategoryImages, filename, r)
	if err != nil {
		return nil, err
	}

	old := article.CoverPath
	article.CoverPath = path
	article.UpdatedBy = actor(ctx)
	if err := s.repo.Update(article); err != nil {
		_ = s.files.Delete(path)
		return nil, fmt.Errorf("failed to update news article: %w", err)
	}
	if err := s.files.Delete(old); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("path", old).Warn("failed to remove previous cover")
	}
	return article, nil
}

// Delete removes an article and its cover
func (s *NewsService) Delete(ctx context.Context, id uuid.UUID) error {
	article, err := s.repo.GetByID(id)
	if err != nil {
		return lookup(err, apperrors.ErrNewsNotFound, "news article")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete news article: %w", err)
	}
	if err := s.files.Delete(article.CoverPath); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("failed to remove cover")
	}
	return nil
}
