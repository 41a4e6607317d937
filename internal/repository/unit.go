package repository

import (
	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnitRepository handles database operations for organisational units
type UnitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates a new unit repository
func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{db: db}
}

// Create creates a new unit
func (r *UnitRepository) Create(unit *models.Unit) error {
	return r.db.Create(unit).Error
}

// GetByID retrieves a unit by ID
func (r *UnitRepository) GetByID(id uuid.UUID) (*models.Unit, error) {
	var unit models.Unit
	if err := r.db.First(&unit, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

// GetByCode retrieves a unit by its code
func (r *UnitRepository) GetByCode(code string) (*models.Unit, error) {
	var unit models.Unit
	if err := r.db.First(&unit, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

// GetAll retrieves every unit; the tree is small enough to build in memory
func (r *UnitRepository) GetAll() ([]models.Unit, error) {
	var units []models.Unit
	err := r.db.Order("name").Find(&units).Error
	return units, err
}

// Update updates a unit
func (r *UnitRepository) Update(unit *models.Unit) error {
	return r.db.Omit("Parent").Save(unit).Error
}

// Delete deletes a unit
func (r *UnitRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Unit{}, "id = ?", id).Error
}

// CountActiveAssignments counts active assignments pointing at the unit
func (r *UnitRepository) CountActiveAssignments(unitID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.Assignment{}).
		Where("unit_id = ? AND is_active = ?", unitID, true).
		Count(&total).Error
	return total, err
}
