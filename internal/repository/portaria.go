package repository

import (
	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PortariaRepository handles database operations for portarias
type PortariaRepository struct {
	db *gorm.DB
}

// NewPortariaRepository creates a new portaria repository
func NewPortariaRepository(db *gorm.DB) *PortariaRepository {
	return &PortariaRepository{db: db}
}

// Create creates a new portaria
func (r *PortariaRepository) Create(portaria *models.Portaria) error {
	return r.db.Create(portaria).Error
}

// GetByID retrieves a portaria by ID
func (r *PortariaRepository) GetByID(id uuid.UUID) (*models.Portaria, error) {
	var portaria models.Portaria
	if err := r.db.First(&portaria, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &portaria, nil
}

// GetByNumber retrieves a portaria by number and year
func (r *PortariaRepository) GetByNumber(number, year int) (*models.Portaria, error) {
	var portaria models.Portaria
	if err := r.db.First(&portaria, "number = ? AND year = ?", number, year).Error; err != nil {
		return nil, err
	}
	return &portaria, nil
}

// NextNumber returns the next free number of the year
func (r *PortariaRepository) NextNumber(year int) (int, error) {
	var max int
	err := r.db.Model(&models.Portaria{}).
		Select("COALESCE(MAX(number), 0)").
		Where("year = ?", year).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// List retrieves portarias matching the filter, newest first
func (r *PortariaRepository) List(filter PortariaFilter, limit, offset int) ([]models.Portaria, int64, error) {
	var portarias []models.Portaria
	var total int64

	query := r.db.Model(&models.Portaria{})
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.Query != "" {
		query = query.Where("subject ILIKE ?", likePattern(filter.Query))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("year DESC, number DESC").Limit(limit).Offset(offset).Find(&portarias).Error
	if err != nil {
		return nil, 0, err
	}

	return portarias, total, nil
}

// Update updates a portaria
func (r *PortariaRepository) Update(portaria *models.Portaria) error {
	return r.db.Save(portaria).Error
}

// Delete deletes a portaria
func (r *PortariaRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Portaria{}, "id = ?", id).Error
}

// CountByStatus counts portarias in a given status
func (r *PortariaRepository) CountByStatus(status models.PortariaStatus) (int64, error) {
	var total int64
	err := r.db.Model(&models.Portaria{}).Where("status = ?", status).Count(&total).Error
	return total, err
}
