package repository

import (
	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreRegistrationRepository handles database operations for public pre-registrations
type PreRegistrationRepository struct {
	db *gorm.DB
}

// NewPreRegistrationRepository creates a new pre-registration repository
func NewPreRegistrationRepository(db *gorm.DB) *PreRegistrationRepository {
	return &PreRegistrationRepository{db: db}
}

// Create creates a new pre-registration
func (r *PreRegistrationRepository) Create(reg *models.PreRegistration) error {
	return r.db.Create(reg).Error
}

// GetByID retrieves a pre-registration by ID
func (r *PreRegistrationRepository) GetByID(id uuid.UUID) (*models.PreRegistration, error) {
	var reg models.PreRegistration
	if err := r.db.First(&reg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

// GetByProtocol retrieves a pre-registration by protocol
func (r *PreRegistrationRepository) GetByProtocol(protocol string) (*models.PreRegistration, error) {
	var reg models.PreRegistration
	if err := r.db.First(&reg, "protocol = ?", protocol).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

// FindPending retrieves a pending pre-registration for the CPF and kind
func (r *PreRegistrationRepository) FindPending(cpf string, kind models.PreRegistrationKind) (*models.PreRegistration, error) {
	var reg models.PreRegistration
	err := r.db.First(&reg, "cpf = ? AND kind = ? AND status = ?", cpf, kind, models.PreRegistrationStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// List retrieves pre-registrations matching the filter, oldest first
func (r *PreRegistrationRepository) List(filter PreRegistrationFilter, limit, offset int) ([]models.PreRegistration, int64, error) {
	var regs []models.PreRegistration
	var total int64

	query := r.db.Model(&models.PreRegistration{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at").Limit(limit).Offset(offset).Find(&regs).Error
	if err != nil {
		return nil, 0, err
	}

	return regs, total, nil
}

// Update updates a pre-registration
func (r *PreRegistrationRepository) Update(reg *models.PreRegistration) error {
	return r.db.Save(reg).Error
}

// ApproveWithManager saves the reviewed pre-registration and creates the
// resulting school manager in one transaction
func (r *PreRegistrationRepository) ApproveWithManager(reg *models.PreRegistration, manager *models.SchoolManager) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(reg).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(manager).Error
	})
}

// CountByStatus counts pre-registrations in a given status
func (r *PreRegistrationRepository) CountByStatus(status models.PreRegistrationStatus) (int64, error) {
	var total int64
	err := r.db.Model(&models.PreRegistration{}).Where("status = ?", status).Count(&total).Error
	return total, err
}
