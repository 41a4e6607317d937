package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/storage"
	"institute-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

// PortariaService handles ordinances: numbering, drafting, publication and
// revocation
type PortariaService struct {
	repo         repository.PortariaRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	files        storage.Store
	validator    *validator.Validate
	now          func() time.Time
}

// NewPortariaService creates a new portaria service
func NewPortariaService(
	repo repository.PortariaRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	files storage.Store,
	validator *validator.Validate,
) *PortariaService {
	return &PortariaService{
		repo:         repo,
		employeeRepo: employeeRepo,
		files:        files,
		validator:    validator,
		now:          time.Now,
	}
}

// CreatePortariaRequest represents a new draft. Year defaults to the current
// year and Number to the next free number of that year.
type CreatePortariaRequest struct {
	Number     int        `json:"number" validate:"omitempty,min=1"`
	Year       int        `json:"year" validate:"omitempty,min=2000,max=2100"`
	Subject    string     `json:"subject" validate:"required,max=500"`
	Body       string     `json:"body"`
	EmployeeID *uuid.UUID `json:"employee_id,omitempty"`
}

// UpdatePortariaRequest represents the editable fields of a draft
type UpdatePortariaRequest struct {
	Subject    string     `json:"subject" validate:"required,max=500"`
	Body       string     `json:"body"`
	EmployeeID *uuid.UUID `json:"employee_id,omitempty"`
}

// RevokePortariaRequest carries the mandatory revocation reason
type RevokePortariaRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// Create creates a draft portaria
func (s *PortariaService) Create(ctx context.Context, req *CreatePortariaRequest) (*models.Portaria, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.checkEmployee(req.EmployeeID); err != nil {
		return nil, err
	}

	year := req.Year
	if year == 0 {
		year = s.now().Year()
	}
	number := req.Number
	if number == 0 {
		next, err := s.repo.NextNumber(year)
		if err != nil {
			return nil, fmt.Errorf("failed to get next portaria number: %w", err)
		}
		number = next
	} else {
		existing, err := s.repo.GetByNumber(number, year)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing portaria: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrPortariaExists
		}
	}

	portaria := &models.Portaria{
		Number:     number,
		Year:       year,
		Subject:    strings.TrimSpace(req.Subject),
		Body:       req.Body,
		Status:     models.PortariaStatusDraft,
		EmployeeID: req.EmployeeID,
	}
	portaria.CreatedBy = actor(ctx)
	portaria.UpdatedBy = portaria.CreatedBy

	if err := s.repo.Create(portaria); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrPortariaExists
		}
		return nil, fmt.Errorf("failed to create portaria: %w", err)
	}

	logger.WithContext(ctx).WithField("portaria", fmt.Sprintf("%d/%d", number, year)).Info("portaria drafted")
	return portaria, nil
}

func (s *PortariaService) checkEmployee(id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.employeeRepo.GetByID(*id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("employee_id", "employee does not exist")
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}
	return nil
}

// GetByID retrieves a portaria by ID
func (s *PortariaService) GetByID(id uuid.UUID) (*models.Portaria, error) {
	portaria, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPortariaNotFound, "portaria")
	}
	return portaria, nil
}

// List returns a page of portarias, newest first
func (s *PortariaService) List(filter repository.PortariaFilter, page, pageSize int) (*ListResponse[models.Portaria], error) {
	page, pageSize = NormalizePage(page, pageSize)
	portarias, total, err := s.repo.List(filter, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list portarias: %w", err)
	}
	return newList(portarias, total, page, pageSize), nil
}

// Update edits a draft
func (s *PortariaService) Update(ctx context.Context, id uuid.UUID, req *UpdatePortariaRequest) (*models.Portaria, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	portaria, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPortariaNotFound, "portaria")
	}
	if portaria.Status != models.PortariaStatusDraft {
		return nil, apperrors.ErrPortariaNotEditable
	}
	if err := s.checkEmployee(req.EmployeeID); err != nil {
		return nil, err
	}

	portaria.Subject = strings.TrimSpace(req.Subject)
	portaria.Body = req.Body
	portaria.EmployeeID = req.EmployeeID
	portaria.UpdatedBy = actor(ctx)
	if err := s.repo.Update(portaria); err != nil {
		return nil, fmt.Errorf("failed to update portaria: %w", err)
	}
	return portaria, nil
}

// Delete removes a draft
func (s *PortariaService) Delete(ctx context.Context, id uuid.UUID) error {
	portaria, err := s.repo.GetByID(id)
	if err != nil {
		return lookup(err, apperrors.ErrPortariaNotFound, "portaria")
	}
	if portaria.Status != models.PortariaStatusDraft {
		return apperrors.ErrPortariaNotEditable
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete portaria: %w", err)
	}
	if err := s.files.Delete(portaria.DocumentPath); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("failed to remove portaria document")
	}
	return nil
}

// Publish publishes a draft
func (s *PortariaService) Publish(ctx context.Context, id uuid.UUID) (*models.Portaria, error) {
	portaria, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPortariaNotFound, "portaria")
	}
	if portaria.Status != models.PortariaStatusDraft {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	now := s.now()
	portaria.Status = models.PortariaStatusPublished
	portaria.PublishedAt = &now
	portaria.UpdatedBy = actor(ctx)
	if err := s.repo.Update(portaria); err != nil {
		return nil, fmt.Errorf("failed to publish portaria: %w", err)
	}

	logger.WithContext(ctx).WithField("portaria", fmt.Sprintf("%d/%d", portaria.Number, portaria.Year)).Info("portaria published")
	return portaria, nil
}

// Revoke revokes a published portaria
func (s *PortariaService) Revoke(ctx context.Context, id uuid.UUID, req *RevokePortariaRequest) (*models.Portaria, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	portaria, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPortariaNotFound, "portaria")
	}
	if portaria.Status != models.PortariaStatusPublished {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	now := s.now()
	portaria.Status = models.PortariaStatusRevoked
	portaria.RevokedAt = &now
	portaria.RevokeReason = strings.TrimSpace(req.Reason)
	portaria.UpdatedBy = actor(ctx)
	if err := s.repo.Update(portaria); err != nil {
		return nil, fmt.Errorf("failed to revoke portaria: %w", err)
	}

	logger.WithContext(ctx).WithField("portaria", fmt.Sprintf("%d/%d", portaria.Number, portaria.Year)).Info("portaria revoked")
	return portaria, nil
}

// AttachDocument stores the signed PDF of a portaria, replacing any previous
// one. Revoked portarias keep the document they had.
func (s *PortariaService) AttachDocument(ctx context.Context, id uuid.UUID, filename string, r io.Reader) (*models.Portaria, error) {
	portaria, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPortariaNotFound, "portaria")
	}
	if portaria.Status == models.PortariaStatusRevoked {
		return nil, apperrors.NewConflictError("revoked portarias cannot change")
	}

	path, err := s.files.Save(storage.CategoryDocuments, filename, r)
	if err != nil {
		return nil, err
	}
	old := portaria.DocumentPath
	portaria.DocumentPath = path
	portaria.UpdatedBy = actor(ctx)
	if err := s.repo.Update(portaria); err != nil {
		_ = s.files.Delete(path)
		return nil, fmt.Errorf("failed to update portaria: %w", err)
	}
	if err := s.files.Delete(old); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("path", old).Warn("failed to remove previous portaria document")
	}
	return portaria, nil
}

// OpenPublicDocument opens the document of a published or revoked portaria
func (s *PortariaService) OpenPublicDocument(id uuid.UUID) (afero.File, *models.Portaria, error) {
	portaria, err := s.repo.GetByID(id)
	if err != nil {
		return nil, nil, lookup(err, apperrors.ErrPortariaNotFound, "portaria")
	}
	if portaria.Status == models.PortariaStatusDraft || portaria.DocumentPath == "" {
		return nil, nil, apperrors.ErrFileNotFound
	}
	f, err := s.files.Open(portaria.DocumentPath)
	if err != nil {
		return nil, nil, err
	}
	return f, portaria, nil
}
