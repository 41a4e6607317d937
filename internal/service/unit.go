package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnitService handles business logic for organisational units
type UnitService struct {
	repo      repository.UnitRepositoryInterface
	validator *validator.Validate
}

// NewUnitService creates a new unit service
func NewUnitService(repo repository.UnitRepositoryInterface, validator *validator.Validate) *UnitService {
	return &UnitService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUnitRequest represents the request to create a unit
type CreateUnitRequest struct {
	Code     string     `json:"code" validate:"required,max=20"`
	Name     string     `json:"name" validate:"required,max=200"`
	Acronym  string     `json:"acronym" validate:"max=20"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

// UpdateUnitRequest represents the request to update a unit
type UpdateUnitRequest struct {
	Name     string     `json:"name" validate:"required,max=200"`
	Acronym  string     `json:"acronym" validate:"max=20"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
	IsActive bool       `json:"is_active"`
}

// UnitNode is a unit with its children, as returned by the tree endpoint
type UnitNode struct {
	models.Unit
	Children []*UnitNode `json:"children"`
}

// Create creates a new unit
func (s *UnitService) Create(ctx context.Context, req *CreateUnitRequest) (*models.Unit, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByCode(req.Code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing unit: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUnitExists
	}

	if req.ParentID != nil {
		if _, err := s.repo.GetByID(*req.ParentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewValidationError("parent_id", "unit does not exist")
			}
			return nil, fmt.Errorf("failed to get parent unit: %w", err)
		}
	}

	unit := &models.Unit{
		Code:     req.Code,
		Name:     req.Name,
		Acronym:  req.Acronym,
		ParentID: req.ParentID,
		IsActive: true,
	}
	unit.CreatedBy = actor(ctx)
	unit.UpdatedBy = unit.CreatedBy

	if err := s.repo.Create(unit); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrUnitExists
		}
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}

	logger.WithContext(ctx).WithField("unit", unit.Code).Info("unit created")
	return unit, nil
}

// GetByID retrieves a unit by ID
func (s *UnitService) GetByID(id uuid.UUID) (*models.Unit, error) {
	unit, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrUnitNotFound, "unit")
	}
	return unit, nil
}

// List returns every unit ordered by name
func (s *UnitService) List() ([]models.Unit, error) {
	units, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	if units == nil {
		units = []models.Unit{}
	}
	return units, nil
}

// Tree returns the units nested under their parents
func (s *UnitService) Tree() ([]*UnitNode, error) {
	units, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return BuildUnitTree(units), nil
}

// BuildUnitTree nests units under their parents. Units whose parent is not
// in the slice become roots. Siblings are ordered by code.
func BuildUnitTree(units []models.Unit) []*UnitNode {
	nodes := make(map[uuid.UUID]*UnitNode, len(units))
	for i := range units {
		nodes[units[i].ID] = &UnitNode{Unit: units[i], Children: []*UnitNode{}}
	}

	roots := []*UnitNode{}
	for i := range units {
		node := nodes[units[i].ID]
		if units[i].ParentID != nil {
			if parent, ok := nodes[*units[i].ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	var sortNodes func([]*UnitNode)
	sortNodes = func(list []*UnitNode) {
		sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
		for _, n := range list {
			sortNodes(n.Children)
		}
	}
	sortNodes(roots)
	return roots
}

// Update updates a unit. Moving a unit under itself or one of its
// descendants is rejected.
func (s *UnitService) Update(ctx context.Context, id uuid.UUID, req *UpdateUnitRequest) (*models.Unit, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	unit, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrUnitNotFound, "unit")
	}

	if req.ParentID != nil {
		units, err := s.repo.GetAll()
		if err != nil {
			return nil, fmt.Errorf("failed to list units: %w", err)
		}
		if err := checkUnitParent(units, id, *req.ParentID); err != nil {
			return nil, err
		}
	}

	unit.Name = req.Name
	unit.Acronym = req.Acronym
	unit.ParentID = req.ParentID
	unit.IsActive = req.IsActive
	unit.UpdatedBy = actor(ctx)

	if err := s.repo.Update(unit); err != nil {
		return nil, fmt.Errorf("failed to update unit: %w", err)
	}
	return unit, nil
}

// checkUnitParent walks up from parentID and fails if it reaches id
func checkUnitParent(units []models.Unit, id, parentID uuid.UUID) error {
	parents := make(map[uuid.UUID]*uuid.UUID, len(units))
	for _, u := range units {
		parents[u.ID] = u.ParentID
	}
	if _, ok := parents[parentID]; !ok {
		return apperrors.NewValidationError("parent_id", "unit does not exist")
	}

	seen := map[uuid.UUID]bool{}
	for cur := &parentID; cur != nil; cur = parents[*cur] {
		if *cur == id {
			return apperrors.ErrUnitCycle
		}
		if seen[*cur] {
			// the stored tree already loops; refuse to make it worse
			return apperrors.ErrUnitCycle
		}
		seen[*cur] = true
	}
	return nil
}

// Delete deletes a unit without active assignments or child units
func (s *UnitService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return lookup(err, apperrors.ErrUnitNotFound, "unit")
	}

	active, err := s.repo.CountActiveAssignments(id)
	if err != nil {
		return fmt.Errorf("failed to count assignments: %w", err)
	}
	if active > 0 {
		return apperrors.ErrUnitHasAssignments
	}

	units, err := s.repo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to list units: %w", err)
	}
	for _, u := range units {
		if u.ParentID != nil && *u.ParentID == id {
			return apperrors.NewConflictError("unit has child units")
		}
	}

	if err := s.repo.Delete(id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("unit is still referenced by employees, assets or assignments")
		}
		return fmt.Errorf("failed to delete unit: %w", err)
	}

	logger.WithContext(ctx).WithField("unit_id", id).Info("unit deleted")
	return nil
}
