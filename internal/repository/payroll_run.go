package repository

import (
	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PayrollRunRepository handles database operations for payroll runs
type PayrollRunRepository struct {
	db *gorm.DB
}

// NewPayrollRunRepository creates a new payroll run repository
func NewPayrollRunRepository(db *gorm.DB) *PayrollRunRepository {
	return &PayrollRunRepository{db: db}
}

// Create creates a new payroll run
func (r *PayrollRunRepository) Create(run *models.PayrollRun) error {
	return r.db.Omit(clause.Associations).Create(run).Error
}

// GetByID retrieves a payroll run by ID (without entries)
func (r *PayrollRunRepository) GetByID(id uuid.UUID) (*models.PayrollRun, error) {
	var run models.PayrollRun
	if err := r.db.First(&run, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// GetByPeriod retrieves the run of a competence and kind
func (r *PayrollRunRepository) GetByPeriod(year, month int, kind models.PayrollKind) (*models.PayrollRun, error) {
	var run models.PayrollRun
	err := r.db.First(&run, "year = ? AND month = ? AND kind = ?", year, month, kind).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// List retrieves payroll runs, newest competence first
func (r *PayrollRunRepository) List(filter PayrollRunFilter, limit, offset int) ([]models.PayrollRun, int64, error) {
	var runs []models.PayrollRun
	var total int64

	query := r.db.Model(&models.PayrollRun{})
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("year DESC, month DESC, kind").Limit(limit).Offset(offset).Find(&runs).Error
	if err != nil {
		return nil, 0, err
	}

	return runs, total, nil
}

// ListClosedByYear retrieves the closed runs of a year ordered by month
func (r *PayrollRunRepository) ListClosedByYear(year int) ([]models.PayrollRun, error) {
	var runs []models.PayrollRun
	err := r.db.Where("year = ? AND status = ?", year, models.PayrollStatusClosed).
		Order("month, kind").Find(&runs).Error
	return runs, err
}

// Update updates a payroll run
func (r *PayrollRunRepository) Update(run *models.PayrollRun) error {
	return r.db.Omit(clause.Associations).Save(run).Error
}

// Delete deletes a payroll run and its entries
func (r *PayrollRunRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("run_id = ?", id).Delete(&models.PayrollEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PayrollRun{}, "id = ?", id).Error
	})
}

// CountByStatus counts runs in any of the given statuses
func (r *PayrollRunRepository) CountByStatus(statuses ...models.PayrollStatus) (int64, error) {
	var total int64
	err := r.db.Model(&models.PayrollRun{}).Where("status IN ?", statuses).Count(&total).Error
	return total, err
}
