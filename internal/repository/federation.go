package repository

import (
	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FederationRepository handles database operations for federations
type FederationRepository struct {
	db *gorm.DB
}

// NewFederationRepository creates a new federation repository
func NewFederationRepository(db *gorm.DB) *FederationRepository {
	return &FederationRepository{db: db}
}

// Create creates a new federation
func (r *FederationRepository) Create(federation *models.Federation) error {
	return r.db.Create(federation).Error
}

// GetByID retrieves a federation by ID
func (r *FederationRepository) GetByID(id uuid.UUID) (*models.Federation, error) {
	var federation models.Federation
	if err := r.db.First(&federation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &federation, nil
}

// GetByAcronym retrieves a federation by acronym (case-insensitive)
func (r *FederationRepository) GetByAcronym(acronym string) (*models.Federation, error) {
	var federation models.Federation
	if err := r.db.First(&federation, "UPPER(acronym) = UPPER(?)", acronym).Error; err != nil {
		return nil, err
	}
	return &federation, nil
}

// GetAll retrieves all federations ordered by name
func (r *FederationRepository) GetAll() ([]models.Federation, error) {
	var federations []models.Federation
	err := r.db.Order("name").Find(&federations).Error
	return federations, err
}

// Update updates a federation
func (r *FederationRepository) Update(federation *models.Federation) error {
	return r.db.Save(federation).Error
}

// Delete deletes a federation
func (r *FederationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Federation{}, "id = ?", id).Error
}
