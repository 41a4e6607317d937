package repository

import (
	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProcurementRepository handles database operations for procurement cases
type ProcurementRepository struct {
	db *gorm.DB
}

// NewProcurementRepository creates a new procurement repository
func NewProcurementRepository(db *gorm.DB) *ProcurementRepository {
	return &ProcurementRepository{db: db}
}

// Create creates a case together with its checklist items
func (r *ProcurementRepository) Create(c *models.ProcurementCase) error {
	return r.db.Create(c).Error
}

// GetByID retrieves a case with its checklist ordered by step
func (r *ProcurementRepository) GetByID(id uuid.UUID) (*models.ProcurementCase, error) {
	var c models.ProcurementCase
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("step")
	}).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByProcessNumber retrieves a case by its process number
func (r *ProcurementRepository) GetByProcessNumber(number string) (*models.ProcurementCase, error) {
	var c models.ProcurementCase
	if err := r.db.First(&c, "process_number = ?", number).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// List retrieves cases matching the filter, newest first
func (r *ProcurementRepository) List(filter ProcurementFilter, limit, offset int) ([]models.ProcurementCase, int64, error) {
	var cases []models.ProcurementCase
	var total int64

	query := r.db.Model(&models.ProcurementCase{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Modality != "" {
		query = query.Where("modality = ?", filter.Modality)
	}
	if filter.Year != 0 {
		query = query.Where("EXTRACT(YEAR FROM opened_at) = ?", filter.Year)
	}
	if filter.ExcludeDraft {
		query = query.Where("status <> ?", models.ProcurementStatusDraft)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("opened_at DESC").Limit(limit).Offset(offset).Find(&cases).Error
	if err != nil {
		return nil, 0, err
	}

	return cases, total, nil
}

// Update updates a case (checklist items are updated through UpdateItem)
func (r *ProcurementRepository) Update(c *models.ProcurementCase) error {
	return r.db.Omit(clause.Associations).Save(c).Error
}

// Delete deletes a case and its checklist
func (r *ProcurementRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("case_id = ?", id).Delete(&models.ChecklistItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ProcurementCase{}, "id = ?", id).Error
	})
}

// GetItem retrieves a checklist item by ID
func (r *ProcurementRepository) GetItem(id uuid.UUID) (*models.ChecklistItem, error) {
	var item models.ChecklistItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem updates a checklist item
func (r *ProcurementRepository) UpdateItem(item *models.ChecklistItem) error {
	return r.db.Save(item).Error
}

// CountByStatus counts cases in a given status
func (r *ProcurementRepository) CountByStatus(status models.ProcurementStatus) (int64, error) {
	var total int64
	err := r.db.Model(&models.ProcurementCase{}).Where("status = ?", status).Count(&total).Error
	return total, err
}
