package repository

import (
	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageRepository handles database operations for institutional pages
type PageRepository struct {
	db *gorm.DB
}

// NewPageRepository creates a new page repository
func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

// Create creates a new page
func (r *PageRepository) Create(page *models.Page) error {
	return r.db.Create(page).Error
}

// GetByID retrieves a page by ID
func (r *PageRepository) GetByID(id uuid.UUID) (*models.Page, error) {
	var page models.Page
	if err := r.db.First(&page, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// GetBySlug retrieves a page by slug
func (r *PageRepository) GetBySlug(slug string) (*models.Page, error) {
	var page models.Page
	if err := r.db.First(&page, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// List retrieves pages in menu order
func (r *PageRepository) List(publishedOnly bool) ([]models.Page, error) {
	var pages []models.Page
	query := r.db.Model(&models.Page{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	err := query.Order("menu_order, title").Find(&pages).Error
	return pages, err
}

// Update updates a page
func (r *PageRepository) Update(page *models.Page) error {
	return r.db.Save(page).Error
}

// Delete deletes a page
func (r *PageRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Page{}, "id = ?", id).Error
}
