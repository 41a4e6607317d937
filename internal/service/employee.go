package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/spreadsheet"
	"institute-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// exportBatchSize is how many rows each export query fetches
const exportBatchSize = 500

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo      repository.EmployeeRepositoryInterface
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{
		repo:      repo,
		validator: validator,
	}
}

// CreateEmployeeRequest represents the request to register an employee
type CreateEmployeeRequest struct {
	RegistrationNumber string `json:"registration_number" validate:"required,max=20"`
	FullName           string `json:"full_name" validate:"required,max=200"`
	CPF                string `json:"cpf" validate:"required,cpf"`
	Email              string `json:"email" validate:"omitempty,email,max=255"`
	Phone              string `json:"phone" validate:"omitempty,phone_br"`
	BirthDate          string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	HireDate           string `json:"hire_date" validate:"required,datetime=2006-01-02"`
}

// UpdateEmployeeRequest represents the editable fields of an employee.
// CPF and registration number are fixed once registered.
type UpdateEmployeeRequest struct {
	FullName  string `json:"full_name" validate:"required,max=200"`
	Email     string `json:"email" validate:"omitempty,email,max=255"`
	Phone     string `json:"phone" validate:"omitempty,phone_br"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=active on_leave terminated"`
}

// Create registers a new employee
func (s *EmployeeService) Create(ctx context.Context, req *CreateEmployeeRequest) (*models.Employee, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	cpf := validation.NormalizeCPF(req.CPF)
	if err := s.ensureUnique(cpf, req.RegistrationNumber); err != nil {
		return nil, err
	}

	hireDate, err := parseDate("hire_date", req.HireDate)
	if err != nil {
		return nil, err
	}
	birthDate, err := parseOptionalDate("birth_date", req.BirthDate)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		RegistrationNumber: strings.TrimSpace(req.RegistrationNumber),
		FullName:           strings.TrimSpace(req.FullName),
		CPF:                cpf,
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:              req.Phone,
		BirthDate:          birthDate,
		HireDate:           hireDate,
		Status:             models.EmployeeStatusActive,
	}
	employee.CreatedBy = actor(ctx)
	employee.UpdatedBy = employee.CreatedBy

	if err := s.repo.Create(employee); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmployeeExists
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	logger.WithContext(ctx).WithField("registration_number", employee.RegistrationNumber).Info("employee registered")
	return employee, nil
}

func (s *EmployeeService) ensureUnique(cpf, registration string) error {
	byCPF, err := s.repo.GetByCPF(cpf)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing employee by CPF: %w", err)
	}
	if byCPF != nil {
		return apperrors.ErrEmployeeExists
	}

	byNumber, err := s.repo.GetByRegistrationNumber(registration)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing employee by registration number: %w", err)
	}
	if byNumber != nil {
		return apperrors.ErrEmployeeExists
	}
	return nil
}

// GetByID retrieves an employee with current unit and position
func (s *EmployeeService) GetByID(id uuid.UUID) (*models.Employee, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrEmployeeNotFound, "employee")
	}
	return employee, nil
}

// List searches employees by name, CPF or registration number
func (s *EmployeeService) List(filter repository.EmployeeFilter, page, pageSize int) (*ListResponse[models.Employee], error) {
	page, pageSize = NormalizePage(page, pageSize)
	filter = normalizeEmployeeFilter(filter)
	employees, total, err := s.repo.List(filter, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return newList(employees, total, page, pageSize), nil
}

// normalizeEmployeeFilter strips a masked CPF down to digits so it matches
// the stored value.
func normalizeEmployeeFilter(filter repository.EmployeeFilter) repository.EmployeeFilter {
	filter.Query = strings.TrimSpace(filter.Query)
	if q := filter.Query; q != "" && strings.Trim(q, "0123456789.-") == "" && strings.ContainsAny(q, ".-") {
		filter.Query = validation.OnlyDigits(q)
	}
	return filter
}

// Update updates the editable fields of an employee
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, req *UpdateEmployeeRequest) (*models.Employee, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	employee, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrEmployeeNotFound, "employee")
	}

	birthDate, err := parseOptionalDate("birth_date", req.BirthDate)
	if err != nil {
		return nil, err
	}

	employee.FullName = strings.TrimSpace(req.FullName)
	employee.Email = strings.ToLower(strings.TrimSpace(req.Email))
	employee.Phone = req.Phone
	employee.BirthDate = birthDate
	employee.Status = models.EmployeeStatus(req.Status)
	employee.UpdatedBy = actor(ctx)

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

// Delete removes an employee that has no payroll history
func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return lookup(err, apperrors.ErrEmployeeNotFound, "employee")
	}
	if err := s.repo.Delete(id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("employee has payroll entries; terminate instead of deleting")
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	logger.WithContext(ctx).WithField("employee_id", id).Info("employee deleted")
	return nil
}

// Export writes the employees matching filter as an XLSX workbook
func (s *EmployeeService) Export(w io.Writer, filter repository.EmployeeFilter) error {
	filter = normalizeEmployeeFilter(filter)
	table := spreadsheet.Table{
		Sheet:   "Servidores",
		Headers: []string{"Matrícula", "Nome", "CPF", "E-mail", "Telefone", "Admissão", "Situação", "Unidade", "Cargo"},
		Widths:  []float64{14, 40, 16, 32, 18, 12, 12, 32, 32},
	}

	for offset := 0; ; offset += exportBatchSize {
		employees, total, err := s.repo.List(filter, exportBatchSize, offset)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		for _, e := range employees {
			unit, position := "", ""
			if e.CurrentUnit != nil {
				unit = e.CurrentUnit.Name
			}
			if e.CurrentPosition != nil {
				position = e.CurrentPosition.Title
			}
			table.Rows = append(table.Rows, []interface{}{
				e.RegistrationNumber, e.FullName, validation.FormatCPF(e.CPF), e.Email, e.Phone,
				e.HireDate, string(e.Status), unit, position,
			})
		}
		if len(employees) == 0 || int64(offset+len(employees)) >= total {
			break
		}
	}

	return spreadsheet.WriteXLSX(w, table)
}
