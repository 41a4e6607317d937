package service

import (
	"context"
	"errors"
	"fmt"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionService handles business logic for positions (cargos)
type PositionService struct {
	repo      repository.PositionRepositoryInterface
	validator *validator.Validate
}

// NewPositionService creates a new position service
func NewPositionService(repo repository.PositionRepositoryInterface, validator *validator.Validate) *PositionService {
	return &PositionService{
		repo:      repo,
		validator: validator,
	}
}

// PositionRequest represents the request to create or update a position
type PositionRequest struct {
	Code  string `json:"code" validate:"required,max=20"`
	Title string `json:"title" validate:"required,max=200"`
	Kind  string `json:"kind" validate:"required,oneof=effective commissioned temporary"`
	Level string `json:"level" validate:"max=20"`
}

// Create creates a new position
func (s *PositionService) Create(ctx context.Context, req *PositionRequest) (*models.Position, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByCode(req.Code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing position: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrPositionExists
	}

	position := &models.Position{
		Code:  req.Code,
		Title: req.Title,
		Kind:  models.PositionKind(req.Kind),
		Level: req.Level,
	}
	position.CreatedBy = actor(ctx)
	position.UpdatedBy = position.CreatedBy

	if err := s.repo.Create(position); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrPositionExists
		}
		return nil, fmt.Errorf("failed to create position: %w", err)
	}
	return position, nil
}

// GetByID retrieves a position by ID
func (s *PositionService) GetByID(id uuid.UUID) (*models.Position, error) {
	position, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPositionNotFound, "position")
	}
	return position, nil
}

// List returns a page of positions
func (s *PositionService) List(page, pageSize int) (*ListResponse[models.Position], error) {
	page, pageSize = NormalizePage(page, pageSize)
	positions, total, err := s.repo.GetAll(pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	return newList(positions, total, page, pageSize), nil
}

// Update updates a position. The code may change as long as it stays unique.
func (s *PositionService) Update(ctx context.Context, id uuid.UUID, req *PositionRequest) (*models.Position, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	position, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPositionNotFound, "position")
	}

	if req.Code != position.Code {
		other, err := s.repo.GetByCode(req.Code)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing position: %w", err)
		}
		if other != nil {
			return nil, apperrors.ErrPositionExists
		}
	}

	position.Code = req.Code
	position.Title = req.Title
	position.Kind = models.PositionKind(req.Kind)
	position.Level = req.Level
	position.UpdatedBy = actor(ctx)

	if err := s.repo.Update(position); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrPositionExists
		}
		return nil, fmt.Errorf("failed to update position: %w", err)
	}
	return position, nil
}

// Delete deletes a position that no assignment references
func (s *PositionService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return lookup(err, apperrors.ErrPositionNotFound, "position")
	}
	if err := s.repo.Delete(id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("position is referenced by assignments")
		}
		return fmt.Errorf("failed to delete position: %w", err)
	}
	return nil
}
