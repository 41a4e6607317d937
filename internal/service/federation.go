package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FederationService handles school-sports federations
type FederationService struct {
	repo      repository.FederationRepositoryInterface
	validator *validator.Validate
}

// NewFederationService creates a new federation service
func NewFederationService(repo repository.FederationRepositoryInterface, validator *validator.Validate) *FederationService {
	return &FederationService{
		repo:      repo,
		validator: validator,
	}
}

// FederationRequest represents the request to create or update a federation
type FederationRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Acronym string `json:"acronym" validate:"required,max=20"`
	State   string `json:"state" validate:"omitempty,uf"`
	Email   string `json:"email" validate:"omitempty,email,max=255"`
}

func (r *FederationRequest) apply(f *models.Federation) {
	f.Name = strings.TrimSpace(r.Name)
	f.Acronym = strings.ToUpper(strings.TrimSpace(r.Acronym))
	f.State = strings.ToUpper(r.State)
	f.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// Create creates a federation
func (s *FederationService) Create(ctx context.Context, req *FederationRequest) (*models.Federation, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	federation := &models.Federation{}
	req.apply(federation)

	if err := s.ensureAcronymFree(federation.Acronym, uuid.Nil); err != nil {
		return nil, err
	}
	federation.CreatedBy = actor(ctx)
	federation.UpdatedBy = federation.CreatedBy
	if err := s.repo.Create(federation); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrFederationExists
		}
		return nil, fmt.Errorf("failed to create federation: %w", err)
	}
	return federation, nil
}

func (s *FederationService) ensureAcronymFree(acronym string, self uuid.UUID) error {
	existing, err := s.repo.GetByAcronym(acronym)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check existing federation: %w", err)
	}
	if existing.ID != self {
		return apperrors.ErrFederationExists
	}
	return nil
}

// GetByID retrieves a federation by ID
func (s *FederationService) GetByID(id uuid.UUID) (*models.Federation, error) {
	federation, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrFederationNotFound, "federation")
	}
	return federation, nil
}

// List returns every federation
func (s *FederationService) List() ([]models.Federation, error) {
	federations, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list federations: %w", err)
	}
	if federations == nil {
		federations = []models.Federation{}
	}
	return federations, nil
}

// Update updates a federation
func (s *FederationService) Update(ctx context.Context, id uuid.UUID, req *FederationRequest) (*models.Federation, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	federation, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrFederationNotFound, "federation")
	}
	req.apply(federation)
	if err := s.ensureAcronymFree(federation.Acronym, federation.ID); err != nil {
		return nil, err
	}
	federation.UpdatedBy = actor(ctx)
	if err := s.repo.Update(federation); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrFederationExists
		}
		return nil, fmt.Errorf("failed to update federation: %w", err)
	}
	return federation, nil
}

// Delete removes a federation; its schools are detached
func (s *FederationService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return lookup(err, apperrors.ErrFederationNotFound, "federation")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete federation: %w", err)
	}
	return nil
}
