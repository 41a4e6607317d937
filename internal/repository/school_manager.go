package repository

import (
	"fmt"

	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SchoolManagerRepository handles database operations for school managers
type SchoolManagerRepository struct {
	db *gorm.DB
}

// NewSchoolManagerRepository creates a new school manager repository
func NewSchoolManagerRepository(db *gorm.DB) *SchoolManagerRepository {
	return &SchoolManagerRepository{db: db}
}

// Create creates a new school manager
func (r *SchoolManagerRepository) Create(manager *models.SchoolManager) error {
	return r.db.Omit(clause.Associations).Create(manager).Error
}

// GetByID retrieves a school manager with the school
func (r *SchoolManagerRepository) GetByID(id uuid.UUID) (*models.SchoolManager, error) {
	var manager models.SchoolManager
	if err := r.db.Preload("School").First(&manager, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &manager, nil
}

// GetByCPF retrieves a school manager by CPF
func (r *SchoolManagerRepository) GetByCPF(cpf string) (*models.SchoolManager, error) {
	var manager models.SchoolManager
	if err := r.db.First(&manager, "cpf = ?", cpf).Error; err != nil {
		return nil, err
	}
	return &manager, nil
}

// List retrieves school managers matching the filter
func (r *SchoolManagerRepository) List(filter SchoolManagerFilter, limit, offset int) ([]models.SchoolManager, int64, error) {
	var managers []models.SchoolManager
	var total int64

	query := r.db.Model(&models.SchoolManager{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SchoolID != nil {
		query = query.Where("school_id = ?", *filter.SchoolID)
	}
	if filter.Query != "" {
		pattern := likePattern(filter.Query)
		query = query.Where("full_name ILIKE ? OR cpf LIKE ? OR credential_number ILIKE ?", pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("School").Order("full_name").Limit(limit).Offset(offset).Find(&managers).Error
	if err != nil {
		return nil, 0, err
	}

	return managers, total, nil
}

// Update updates a school manager
func (r *SchoolManagerRepository) Update(manager *models.SchoolManager) error {
	return r.db.Omit(clause.Associations).Save(manager).Error
}

// Delete deletes a school manager
func (r *SchoolManagerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SchoolManager{}, "id = ?", id).Error
}

// NextCredentialSequence returns the next sequence for CRED-<year>-NNNNN numbers
func (r *SchoolManagerRepository) NextCredentialSequence(year int) (int, error) {
	prefix := fmt.Sprintf("CRED-%d-", year)
	var max int
	err := r.db.Model(&models.SchoolManager{}).
		Select("COALESCE(MAX(CAST(SUBSTRING(credential_number FROM ?) AS INTEGER)), 0)", len(prefix)+1).
		Where("credential_number LIKE ?", prefix+"%").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
