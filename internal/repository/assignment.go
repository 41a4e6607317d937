package repository

import (
	"time"

	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssignmentRepository handles database operations for assignments (lotação)
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// GetActiveByEmployee retrieves the active assignment of an employee
func (r *AssignmentRepository) GetActiveByEmployee(employeeID uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.Preload("Unit").Preload("Position").
		Where("employee_id = ? AND is_active = ?", employeeID, true).
		Order("start_date DESC").
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetHistory retrieves every assignment of an employee, newest first
func (r *AssignmentRepository) GetHistory(employeeID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Preload("Unit").Preload("Position").
		Where("employee_id = ?", employeeID).
		Order("start_date DESC, created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

// Assign closes the employee's active assignments at closeDate, inserts next
// as the active one and points the employee at the new unit and position,
// all in one transaction.
func (r *AssignmentRepository) Assign(next *models.Assignment, closeDate time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Assignment{}).
			Where("employee_id = ? AND is_active = ?", next.EmployeeID, true).
			Updates(map[string]interface{}{"is_active": false, "end_date": closeDate}).Error
		if err != nil {
			return err
		}

		next.IsActive = true
		next.EndDate = nil
		if err := tx.Omit(clause.Associations).Create(next).Error; err != nil {
			return err
		}

		return tx.Model(&models.Employee{}).
			Where("id = ?", next.EmployeeID).
			Updates(map[string]interface{}{
				"current_unit_id":     next.UnitID,
				"current_position_id": next.PositionID,
			}).Error
	})
}

// End closes the employee's active assignment without opening another one
func (r *AssignmentRepository) End(employeeID uuid.UUID, endDate time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Assignment{}).
			Where("employee_id = ? AND is_active = ?", employeeID, true).
			Updates(map[string]interface{}{"is_active": false, "end_date": endDate})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&models.Employee{}).
			Where("id = ?", employeeID).
			Updates(map[string]interface{}{
				"current_unit_id":     nil,
				"current_position_id": nil,
			}).Error
	})
}
