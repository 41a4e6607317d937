package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageService handles institutional pages (about, history, contacts)
type PageService struct {
	repo      repository.PageRepositoryInterface
	validator *validator.Validate
}

// NewPageService creates a new page service
func NewPageService(repo repository.PageRepositoryInterface, validator *validator.Validate) *PageService {
	return &PageService{
		repo:      repo,
		validator: validator,
	}
}

// PageRequest represents the request to create or update a page
type PageRequest struct {
	Slug      string `json:"slug" validate:"required,slug,max=100"`
	Title     string `json:"title" validate:"required,max=200"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
	MenuOrder int    `json:"menu_order" validate:"min=0"`
}

// Create creates a page
func (s *PageService) Create(ctx context.Context, req *PageRequest) (*models.Page, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.ensureSlugFree(req.Slug, uuid.Nil); err != nil {
		return nil, err
	}

	page := &models.Page{}
	req.apply(page)
	page.CreatedBy = actor(ctx)
	page.UpdatedBy = page.CreatedBy
	if err := s.repo.Create(page); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrPageExists
		}
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return page, nil
}

func (r *PageRequest) apply(p *models.Page) {
	p.Slug = r.Slug
	p.Title = strings.TrimSpace(r.Title)
	p.Body = r.Body
	p.Published = r.Published
	p.MenuOrder = r.MenuOrder
}

func (s *PageService) ensureSlugFree(slug string, self uuid.UUID) error {
	existing, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if existing.ID != self {
		return apperrors.ErrPageExists
	}
	return nil
}

// GetByID retrieves a page by ID
func (s *PageService) GetByID(id uuid.UUID) (*models.Page, error) {
	page, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPageNotFound, "page")
	}
	return page, nil
}

// GetPublishedBySlug retrieves a published page for the public portal
func (s *PageService) GetPublishedBySlug(slug string) (*models.Page, error) {
	page, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPageNotFound, "page")
	}
	if !page.Published {
		return nil, apperrors.ErrPageNotFound
	}
	return page, nil
}

// List returns pages in menu order
func (s *PageService) List(publishedOnly bool) ([]models.Page, error) {
	pages, err := s.repo.List(publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	if pages == nil {
		pages = []models.Page{}
	}
	return pages, nil
}

// Update updates a page
func (s *PageService) Update(ctx context.Context, id uuid.UUID, req *PageRequest) (*models.Page, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	page, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPageNotFound, "page")
	}
	if req.Slug != page.Slug {
		if err := s.ensureSlugFree(req.Slug, page.ID); err != nil {
			return nil, err
		}
	}

	req.apply(page)
	page.UpdatedBy = actor(ctx)
	if err := s.repo.Update(page); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrPageExists
		}
		return nil, fmt.Errorf("failed to update page: %w", err)
	}
	return page, nil
}

// Delete removes a page
func (s *PageService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return lookup(err, apperrors.ErrPageNotFound, "page")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}
	return nil
}
