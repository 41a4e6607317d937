package repository

import (
	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PayrollEntryRepository handles database operations for payroll entries
type PayrollEntryRepository struct {
	db *gorm.DB
}

// NewPayrollEntryRepository creates a new payroll entry repository
func NewPayrollEntryRepository(db *gorm.DB) *PayrollEntryRepository {
	return &PayrollEntryRepository{db: db}
}

// Create creates a new payroll entry
func (r *PayrollEntryRepository) Create(entry *models.PayrollEntry) error {
	return r.db.Omit(clause.Associations).Create(entry).Error
}

// CreateBatch inserts entries in one transaction
func (r *PayrollEntryRepository) CreateBatch(entries []models.PayrollEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).CreateInBatches(&entries, 200).Error
	})
}

// GetByID retrieves a payroll entry by ID
func (r *PayrollEntryRepository) GetByID(id uuid.UUID) (*models.PayrollEntry, error) {
	var entry models.PayrollEntry
	if err := r.db.Preload("Employee").First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByRunAndEmployee retrieves the entry of an employee in a run
func (r *PayrollEntryRepository) GetByRunAndEmployee(runID, employeeID uuid.UUID) (*models.PayrollEntry, error) {
	var entry models.PayrollEntry
	err := r.db.First(&entry, "run_id = ? AND employee_id = ?", runID, employeeID).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByRun retrieves the entries of a run with pagination
func (r *PayrollEntryRepository) ListByRun(runID uuid.UUID, limit, offset int) ([]models.PayrollEntry, int64, error) {
	var entries []models.PayrollEntry
	var total int64

	query := r.db.Model(&models.PayrollEntry{}).Where("payroll_entries.run_id = ?", runID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Joins("Employee").Order(`"Employee"."full_name"`).
		Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// ListAllByRun retrieves every entry of a run (used by exports)
func (r *PayrollEntryRepository) ListAllByRun(runID uuid.UUID) ([]models.PayrollEntry, error) {
	var entries []models.PayrollEntry
	err := r.db.Joins("Employee").Where("payroll_entries.run_id = ?", runID).
		Order(`"Employee"."full_name"`).Find(&entries).Error
	return entries, err
}

// EmployeeIDsInRun lists the employees that already have an entry in a run
func (r *PayrollEntryRepository) EmployeeIDsInRun(runID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.PayrollEntry{}).Where("run_id = ?", runID).Pluck("employee_id", &ids).Error
	return ids, err
}

// Update updates a payroll entry
func (r *PayrollEntryRepository) Update(entry *models.PayrollEntry) error {
	return r.db.Omit(clause.Associations).Save(entry).Error
}

// Delete deletes a payroll entry
func (r *PayrollEntryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PayrollEntry{}, "id = ?", id).Error
}

// Totals sums the entries of a run
func (r *PayrollEntryRepository) Totals(runID uuid.UUID) (*EntryTotals, error) {
	var totals EntryTotals
	err := r.db.Model(&models.PayrollEntry{}).
		Select(`COALESCE(SUM(gross_amount), 0) AS gross,
			COALESCE(SUM(deductions), 0) AS deductions,
			COALESCE(SUM(net_amount), 0) AS net,
			COUNT(*) AS count`).
		Where("run_id = ?", runID).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// UnitBreakdown sums the entries of a run by the employees' current unit
func (r *PayrollEntryRepository) UnitBreakdown(runID uuid.UUID) ([]UnitTotals, error) {
	var rows []UnitTotals
	err := r.db.Table("payroll_entries AS pe").
		Select(`e.current_unit_id AS unit_id,
			COALESCE(u.name, '') AS unit_name,
			COUNT(*) AS employees,
			SUM(pe.gross_amount) AS gross,
			SUM(pe.deductions) AS deductions,
			SUM(pe.net_amount) AS net`).
		Joins("JOIN employees e ON e.id = pe.employee_id").
		Joins("LEFT JOIN units u ON u.id = e.current_unit_id").
		Where("pe.run_id = ?", runID).
		Group("e.current_unit_id, u.name").
		Order("unit_name").
		Scan(&rows).Error
	return rows, err
}
