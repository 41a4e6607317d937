package repository

import (
	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SchoolRepository handles database operations for schools
type SchoolRepository struct {
	db *gorm.DB
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *gorm.DB) *SchoolRepository {
	return &SchoolRepository{db: db}
}

// Create creates a new school
func (r *SchoolRepository) Create(school *models.School) error {
	return r.db.Omit(clause.Associations).Create(school).Error
}

// CreateBatch inserts imported schools in one transaction
func (r *SchoolRepository) CreateBatch(schools []models.School) error {
	if len(schools) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).CreateInBatches(&schools, 200).Error
	})
}

// GetByID retrieves a school with its federation
func (r *SchoolRepository) GetByID(id uuid.UUID) (*models.School, error) {
	var school models.School
	if err := r.db.Preload("Federation").First(&school, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &school, nil
}

// GetByINEP retrieves a school by its INEP code
func (r *SchoolRepository) GetByINEP(inep string) (*models.School, error) {
	var school models.School
	if err := r.db.First(&school, "inep = ?", inep).Error; err != nil {
		return nil, err
	}
	return &school, nil
}

// ExistingINEPs returns which of the given codes are already registered
func (r *SchoolRepository) ExistingINEPs(ineps []string) ([]string, error) {
	var existing []string
	if len(ineps) == 0 {
		return existing, nil
	}
	err := r.db.Model(&models.School{}).Where("inep IN ?", ineps).Pluck("inep", &existing).Error
	return existing, err
}

// List retrieves schools matching the filter
func (r *SchoolRepository) List(filter SchoolFilter, limit, offset int) ([]models.School, int64, error) {
	var schools []models.School
	var total int64

	query := r.db.Model(&models.School{})
	if filter.Query != "" {
		pattern := likePattern(filter.Query)
		query = query.Where("name ILIKE ? OR inep LIKE ? OR city ILIKE ?", pattern, pattern, pattern)
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.FederationID != nil {
		query = query.Where("federation_id = ?", *filter.FederationID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Federation").Order("name").Limit(limit).Offset(offset).Find(&schools).Error
	if err != nil {
		return nil, 0, err
	}

	return schools, total, nil
}

// Update updates a school
func (r *SchoolRepository) Update(school *models.School) error {
	return r.db.Omit(clause.Associations).Save(school).Error
}

// Delete deletes a school
func (r *SchoolRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.School{}, "id = ?", id).Error
}
