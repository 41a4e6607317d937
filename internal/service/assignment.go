package service

import (
	"context"
	"errors"
	"fmt"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentService handles lotação: placing employees in units and positions
type AssignmentService struct {
	repo         repository.AssignmentRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	unitRepo     repository.UnitRepositoryInterface
	positionRepo repository.PositionRepositoryInterface
	validator    *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	repo repository.AssignmentRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	unitRepo repository.UnitRepositoryInterface,
	positionRepo repository.PositionRepositoryInterface,
	validator *validator.Validate,
) *AssignmentService {
	return &AssignmentService{
		repo:         repo,
		employeeRepo: employeeRepo,
		unitRepo:     unitRepo,
		positionRepo: positionRepo,
		validator:    validator,
	}
}

// AssignRequest represents the request to move an employee to a unit/position
type AssignRequest struct {
	UnitID     uuid.UUID `json:"unit_id" validate:"required"`
	PositionID uuid.UUID `json:"position_id" validate:"required"`
	StartDate  string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	Reason     string    `json:"reason" validate:"max=500"`
}

// EndAssignmentRequest represents the request to close the active assignment
type EndAssignmentRequest struct {
	EndDate string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason  string `json:"reason" validate:"max=500"`
}

// Assign starts a new active assignment. The previous active one, if any,
// ends the day before the new start date.
func (s *AssignmentService) Assign(ctx context.Context, employeeID uuid.UUID, req *AssignRequest) (*models.Assignment, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrEmployeeNotFound, "employee")
	}
	if employee.Status == models.EmployeeStatusTerminated {
		return nil, apperrors.NewConflictError("terminated employees cannot be assigned")
	}

	unit, err := s.unitRepo.GetByID(req.UnitID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrUnitNotFound, "unit")
	}
	if !unit.IsActive {
		return nil, apperrors.NewValidationError("unit_id", "unit is inactive")
	}
	if _, err := s.positionRepo.GetByID(req.PositionID); err != nil {
		return nil, lookup(err, apperrors.ErrPositionNotFound, "position")
	}

	current, err := s.repo.GetActiveByEmployee(employeeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get active assignment: %w", err)
	}
	if current != nil && !start.After(dateOnly(current.StartDate)) {
		return nil, apperrors.NewValidationError("start_date",
			"must be after the start of the current assignment ("+current.StartDate.Format(DateLayout)+")")
	}

	next := &models.Assignment{
		EmployeeID: employeeID,
		UnitID:     req.UnitID,
		PositionID: req.PositionID,
		StartDate:  start,
		Reason:     req.Reason,
		IsActive:   true,
	}
	next.CreatedBy = actor(ctx)
	next.UpdatedBy = next.CreatedBy

	if err := s.repo.Assign(next, start.AddDate(0, 0, -1)); err != nil {
		return nil, fmt.Errorf("failed to assign employee: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"employee_id": employeeID,
		"unit":        unit.Code,
		"start_date":  req.StartDate,
	}).Info("employee assigned")
	return next, nil
}

// History lists every assignment of an employee, newest first
func (s *AssignmentService) History(employeeID uuid.UUID) ([]models.Assignment, error) {
	if _, err := s.employeeRepo.GetByID(employeeID); err != nil {
		return nil, lookup(err, apperrors.ErrEmployeeNotFound, "employee")
	}
	history, err := s.repo.GetHistory(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment history: %w", err)
	}
	if history == nil {
		history = []models.Assignment{}
	}
	return history, nil
}

// End closes the active assignment without starting a new one
func (s *AssignmentService) End(ctx context.Context, employeeID uuid.UUID, req *EndAssignmentRequest) error {
	if err := validation.Struct(s.validator, req); err != nil {
		return err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return err
	}

	current, err := s.repo.GetActiveByEmployee(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoActiveAssignment
		}
		return fmt.Errorf("failed to get active assignment: %w", err)
	}
	if end.Before(dateOnly(current.StartDate)) {
		return apperrors.NewValidationError("end_date", "must not be before the start of the assignment")
	}

	if err := s.repo.End(employeeID, end); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoActiveAssignment
		}
		return fmt.Errorf("failed to end assignment: %w", err)
	}

	logger.WithContext(ctx).WithField("employee_id", employeeID).Info("assignment ended")
	return nil
}
