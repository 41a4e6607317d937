package repository

import (
	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsRepository handles database operations for news articles
type NewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// Create creates a new article
func (r *NewsRepository) Create(article *models.NewsArticle) error {
	return r.db.Create(article).Error
}

// GetByID retrieves an article by ID
func (r *NewsRepository) GetByID(id uuid.UUID) (*models.NewsArticle, error) {
	var article models.NewsArticle
	if err := r.db.First(&article, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// GetBySlug retrieves an article by slug
func (r *NewsRepository) GetBySlug(slug string) (*models.NewsArticle, error) {
	var article models.NewsArticle
	if err := r.db.First(&article, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// List retrieves articles, most recently published first
func (r *NewsRepository) List(filter NewsFilter, limit, offset int) ([]models.NewsArticle, int64, error) {
	var articles []models.NewsArticle
	var total int64

	query := r.db.Model(&models.NewsArticle{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Query != "" {
		pattern := likePattern(filter.Query)
		query = query.Where("title ILIKE ? OR summary ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("published_at DESC NULLS LAST, created_at DESC").
		Limit(limit).Offset(offset).Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

// Update updates an article
func (r *NewsRepository) Update(article *models.NewsArticle) error {
	return r.db.Save(article).Error
}

// Delete deletes an article
func (r *NewsRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.NewsArticle{}, "id = ?", id).Error
}
