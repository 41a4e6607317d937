package repository

import (
	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionRepository handles database operations for positions
type PositionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// Create creates a new position
func (r *PositionRepository) Create(position *models.Position) error {
	return r.db.Create(position).Error
}

// GetByID retrieves a position by ID
func (r *PositionRepository) GetByID(id uuid.UUID) (*models.Position, error) {
	var position models.Position
	if err := r.db.First(&position, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &position, nil
}

// GetByCode retrieves a position by its code
func (r *PositionRepository) GetByCode(code string) (*models.Position, error) {
	var position models.Position
	if err := r.db.First(&position, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &position, nil
}

// GetAll retrieves positions with pagination
func (r *PositionRepository) GetAll(limit, offset int) ([]models.Position, int64, error) {
	var positions []models.Position
	var total int64

	if err := r.db.Model(&models.Position{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("title").Limit(limit).Offset(offset).Find(&positions).Error
	if err != nil {
		return nil, 0, err
	}

	return positions, total, nil
}

// Update updates a position
func (r *PositionRepository) Update(position *models.Position) error {
	return r.db.Save(position).Error
}

// Delete deletes a position
func (r *PositionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Position{}, "id = ?", id).Error
}
