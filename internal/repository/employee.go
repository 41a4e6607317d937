package repository

import (
	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Omit(clause.Associations).Create(employee).Error
}

// GetByID retrieves an employee with current unit and position
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Preload("CurrentUnit").Preload("CurrentPosition").
		First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByCPF retrieves an employee by CPF (digits only)
func (r *EmployeeRepository) GetByCPF(cpf string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, "cpf = ?", cpf).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByRegistrationNumber retrieves an employee by registration number (matrícula)
func (r *EmployeeRepository) GetByRegistrationNumber(number string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, "registration_number = ?", number).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByRegistrationNumbers retrieves all employees whose registration is in numbers
func (r *EmployeeRepository) GetByRegistrationNumbers(numbers []string) ([]models.Employee, error) {
	var employees []models.Employee
	if len(numbers) == 0 {
		return employees, nil
	}
	err := r.db.Where("registration_number IN ?", numbers).Find(&employees).Error
	return employees, err
}

// List retrieves employees matching the filter with pagination
func (r *EmployeeRepository) List(filter EmployeeFilter, limit, offset int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	query := r.db.Model(&models.Employee{})
	if filter.Query != "" {
		pattern := likePattern(filter.Query)
		query = query.Where("full_name ILIKE ? OR cpf LIKE ? OR registration_number ILIKE ?", pattern, pattern, pattern)
	}
	if filter.UnitID != nil {
		query = query.Where("current_unit_id = ?", *filter.UnitID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Preload("CurrentUnit").Preload("CurrentPosition").
		Order("full_name").Limit(limit).Offset(offset).Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Update updates an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Omit(clause.Associations).Save(employee).Error
}

// Delete deletes an employee
func (r *EmployeeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}

// CountByStatus counts employees in a given status
func (r *EmployeeRepository) CountByStatus(status models.EmployeeStatus) (int64, error) {
	var total int64
	err := r.db.Model(&models.Employee{}).Where("status = ?", status).Count(&total).Error
	return total, err
}
