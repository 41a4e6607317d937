package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// CredentialValidityYears is how long a school manager credential lasts
	CredentialValidityYears = 2

	protocolAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	protocolSuffix   = 6
	protocolAttempts = 5

	credentialAttempts = 5
)

// issueCredential reserves the next CRED-YYYY-NNNNN number and the validity
// end of a credential issued on now.
func issueCredential(repo repository.SchoolManagerRepositoryInterface, now time.Time) (string, time.Time, error) {
	seq, err := repo.NextCredentialSequence(now.Year())
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to reserve credential number: %w", err)
	}
	return fmt.Sprintf("CRED-%d-%05d", now.Year(), seq), dateOnly(now).AddDate(CredentialValidityYears, 0, 0), nil
}

// credentialed gives manager a fresh credential number and runs insert. A
// concurrent issue of the same number makes it draw again.
func credentialed(repo repository.SchoolManagerRepositoryInterface, manager *models.SchoolManager, now time.Time, insert func() error) error {
	for attempt := 1; ; attempt++ {
		number, validUntil, err := issueCredential(repo, now)
		if err != nil {
			return err
		}
		manager.CredentialNumber = number
		manager.ValidUntil = validUntil
		err = insert()
		if err == nil || !repository.IsUniqueViolationOn(err, "credential_number") {
			return err
		}
		if attempt == credentialAttempts {
			return fmt.Errorf("failed to reserve credential number: %w", err)
		}
	}
}

// managerInsertError maps a failed manager insert. The credential number
// case never reaches here as a duplicate CPF.
func managerInsertError(err error, action string) error {
	if repository.IsUniqueViolation(err) && !repository.IsUniqueViolationOn(err, "credential_number") {
		return apperrors.ErrSchoolManagerExists
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// newProtocol returns a YYYYMMDD-XXXXXX protocol. The suffix skips the
// characters that are easy to confuse when read over the phone.
func newProtocol(now time.Time) (string, error) {
	var b strings.Builder
	b.WriteString(now.Format("20060102"))
	b.WriteByte('-')
	max := big.NewInt(int64(len(protocolAlphabet)))
	for i := 0; i < protocolSuffix; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(protocolAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// PreRegistrationService handles the public pre-cadastro and its review
type PreRegistrationService struct {
	repo        repository.PreRegistrationRepositoryInterface
	schoolRepo  repository.SchoolRepositoryInterface
	managerRepo repository.SchoolManagerRepositoryInterface
	validator   *validator.Validate
	now         func() time.Time
	protocol    func(time.Time) (string, error)
}

// NewPreRegistrationService creates a new pre-registration service
func NewPreRegistrationService(
	repo repository.PreRegistrationRepositoryInterface,
	schoolRepo repository.SchoolRepositoryInterface,
	managerRepo repository.SchoolManagerRepositoryInterface,
	validator *validator.Validate,
) *PreRegistrationService {
	return &PreRegistrationService{
		repo:        repo,
		schoolRepo:  schoolRepo,
		managerRepo: managerRepo,
		validator:   validator,
		now:         time.Now,
		protocol:    newProtocol,
	}
}

// SubmitPreRegistrationRequest is the public pre-cadastro form
type SubmitPreRegistrationRequest struct {
	Kind       string `json:"kind" validate:"required,oneof=employee school_manager"`
	FullName   string `json:"full_name" validate:"required,min=3,max=200"`
	CPF        string `json:"cpf" validate:"required,cpf"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Phone      string `json:"phone" validate:"omitempty,phone_br"`
	BirthDate  string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	SchoolINEP string `json:"school_inep" validate:"omitempty,inep"`
	Position   string `json:"position" validate:"max=200"`
}

// SubmitPreRegistrationResponse is returned to the applicant
type SubmitPreRegistrationResponse struct {
	Protocol    string    `json:"protocol"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// PreRegistrationStatusResponse is what the public status lookup reveals
type PreRegistrationStatusResponse struct {
	Protocol     string     `json:"protocol"`
	Kind         string     `json:"kind"`
	Status       string     `json:"status"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	RejectReason string     `json:"reject_reason,omitempty"`
}

// RejectPreRegistrationRequest carries the reason shown to the applicant
type RejectPreRegistrationRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// ApprovalResult is an approved pre-registration and, for school managers,
// the credential it produced
type ApprovalResult struct {
	PreRegistration *models.PreRegistration `json:"pre_registration"`
	Manager         *models.SchoolManager   `json:"manager,omitempty"`
}

// Submit records a public pre-registration and returns its protocol. Only one
// pending pre-registration per CPF and kind is accepted.
func (s *PreRegistrationService) Submit(ctx context.Context, req *SubmitPreRegistrationRequest) (*SubmitPreRegistrationResponse, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	birth, err := parseOptionalDate("birth_date", req.BirthDate)
	if err != nil {
		return nil, err
	}
	kind := models.PreRegistrationKind(req.Kind)
	cpf := validation.NormalizeCPF(req.CPF)

	if kind == models.PreRegistrationKindSchoolManager {
		if req.SchoolINEP == "" {
			return nil, apperrors.NewValidationError("school_inep", "is required for school managers")
		}
		if _, err := s.schoolRepo.GetByINEP(req.SchoolINEP); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewValidationError("school_inep", "school not found")
			}
			return nil, fmt.Errorf("failed to get school: %w", err)
		}
	}

	pending, err := s.repo.FindPending(cpf, kind)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check pending pre-registration: %w", err)
	}
	if pending != nil {
		return nil, apperrors.ErrPreRegistrationExists
	}

	now := s.now()
	reg := &models.PreRegistration{
		Kind:      kind,
		FullName:  strings.TrimSpace(req.FullName),
		CPF:       cpf,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     validation.OnlyDigits(req.Phone),
		Position:  strings.TrimSpace(req.Position),
		BirthDate: birth,
		Status:    models.PreRegistrationStatusPending,
	}
	if kind == models.PreRegistrationKindSchoolManager {
		reg.SchoolINEP = req.SchoolINEP
	}
	reg.CreatedBy = "public"
	reg.UpdatedBy = reg.CreatedBy

	// a protocol collision only costs another draw
	for attempt := 1; ; attempt++ {
		reg.Protocol, err = s.protocol(now)
		if err != nil {
			return nil, fmt.Errorf("failed to generate protocol: %w", err)
		}
		err = s.repo.Create(reg)
		if err == nil {
			break
		}
		if !repository.IsUniqueViolation(err) || attempt == protocolAttempts {
			return nil, fmt.Errorf("failed to create pre-registration: %w", err)
		}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"protocol": reg.Protocol,
		"kind":     reg.Kind,
		"cpf":      validation.MaskCPF(cpf),
	}).Info("pre-registration submitted")

	return &SubmitPreRegistrationResponse{
		Protocol:    reg.Protocol,
		Status:      string(reg.Status),
		SubmittedAt: reg.CreatedAt,
	}, nil
}

// Status looks up a pre-registration by protocol. The CPF must match, and a
// mismatch is reported as not found.
func (s *PreRegistrationService) Status(protocol, cpf string) (*PreRegistrationStatusResponse, error) {
	protocol = strings.ToUpper(strings.TrimSpace(protocol))
	cpf = validation.NormalizeCPF(cpf)
	if protocol == "" || !validation.IsCPF(cpf) {
		return nil, apperrors.NewValidationError("cpf", "protocol and a valid CPF are required")
	}
	reg, err := s.repo.GetByProtocol(protocol)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPreRegistrationNotFound, "pre-registration")
	}
	if reg.CPF != cpf {
		return nil, apperrors.ErrPreRegistrationNotFound
	}
	return &PreRegistrationStatusResponse{
		Protocol:     reg.Protocol,
		Kind:         string(reg.Kind),
		Status:       string(reg.Status),
		SubmittedAt:  reg.CreatedAt,
		ReviewedAt:   reg.ReviewedAt,
		RejectReason: reg.RejectReason,
	}, nil
}

// GetByID retrieves a pre-registration for review
func (s *PreRegistrationService) GetByID(id uuid.UUID) (*models.PreRegistration, error) {
	reg, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPreRegistrationNotFound, "pre-registration")
	}
	return reg, nil
}

// List returns a page of pre-registrations, oldest first
func (s *PreRegistrationService) List(filter repository.PreRegistrationFilter, page, pageSize int) (*ListResponse[models.PreRegistration], error) {
	page, pageSize = NormalizePage(page, pageSize)
	regs, total, err := s.repo.List(filter, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list pre-registrations: %w", err)
	}
	return newList(regs, total, page, pageSize), nil
}

func (s *PreRegistrationService) pending(id uuid.UUID) (*models.PreRegistration, error) {
	reg, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPreRegistrationNotFound, "pre-registration")
	}
	if reg.Status != models.PreRegistrationStatusPending {
		return nil, apperrors.ErrPreRegistrationReviewed
	}
	return reg, nil
}

// Approve accepts a pending pre-registration. A school manager gets a
// credential in the same transaction; an employee approval is only recorded.
func (s *PreRegistrationService) Approve(ctx context.Context, id uuid.UUID) (*ApprovalResult, error) {
	reg, err := s.pending(id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	who := actor(ctx)
	reg.Status = models.PreRegistrationStatusApproved
	reg.ReviewedBy = who
	reg.ReviewedAt = &now
	reg.UpdatedBy = who
	result := &ApprovalResult{PreRegistration: reg}

	if reg.Kind != models.PreRegistrationKindSchoolManager {
		if err := s.repo.Update(reg); err != nil {
			return nil, fmt.Errorf("failed to approve pre-registration: %w", err)
		}
		logger.WithContext(ctx).WithField("protocol", reg.Protocol).Info("pre-registration approved")
		return result, nil
	}

	school, err := s.schoolRepo.GetByINEP(reg.SchoolINEP)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewConflictError("school " + reg.SchoolINEP + " is no longer registered")
		}
		return nil, fmt.Errorf("failed to get school: %w", err)
	}
	existing, err := s.managerRepo.GetByCPF(reg.CPF)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing manager: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSchoolManagerExists
	}

	manager := &models.SchoolManager{
		CPF:               reg.CPF,
		FullName:          reg.FullName,
		Email:             reg.Email,
		Phone:             reg.Phone,
		SchoolID:          school.ID,
		Status:            models.ManagerStatusActive,
		PreRegistrationID: &reg.ID,
	}
	manager.CreatedBy = who
	manager.UpdatedBy = who

	err = credentialed(s.managerRepo, manager, now, func() error {
		return s.repo.ApproveWithManager(reg, manager)
	})
	if err != nil {
		return nil, managerInsertError(err, "approve pre-registration")
	}
	result.Manager = manager

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"protocol":   reg.Protocol,
		"credential": manager.CredentialNumber,
	}).Info("school manager credentialed")
	return result, nil
}

// Reject turns down a pending pre-registration
func (s *PreRegistrationService) Reject(ctx context.Context, id uuid.UUID, req *RejectPreRegistrationRequest) (*models.PreRegistration, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	reg, err := s.pending(id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	reg.Status = models.PreRegistrationStatusRejected
	reg.ReviewedBy = actor(ctx)
	reg.ReviewedAt = &now
	reg.RejectReason = strings.TrimSpace(req.Reason)
	reg.UpdatedBy = reg.ReviewedBy
	if err := s.repo.Update(reg); err != nil {
		return nil, fmt.Errorf("failed to reject pre-registration: %w", err)
	}
	logger.WithContext(ctx).WithField("protocol", reg.Protocol).Info("pre-registration rejected")
	return reg, nil
}

// SchoolManagerService handles credentialed school managers
type SchoolManagerService struct {
	repo       repository.SchoolManagerRepositoryInterface
	schoolRepo repository.SchoolRepositoryInterface
	validator  *validator.Validate
	now        func() time.Time
}

// NewSchoolManagerService creates a new school manager service
func NewSchoolManagerService(repo repository.SchoolManagerRepositoryInterface, schoolRepo repository.SchoolRepositoryInterface, validator *validator.Validate) *SchoolManagerService {
	return &SchoolManagerService{
		repo:       repo,
		schoolRepo: schoolRepo,
		validator:  validator,
		now:        time.Now,
	}
}

// CreateManagerRequest registers a manager directly, without pre-cadastro
type CreateManagerRequest struct {
	CPF      string    `json:"cpf" validate:"required,cpf"`
	FullName string    `json:"full_name" validate:"required,min=3,max=200"`
	Email    string    `json:"email" validate:"omitempty,email,max=255"`
	Phone    string    `json:"phone" validate:"omitempty,phone_br"`
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
}

// UpdateManagerRequest represents the editable fields of a manager
type UpdateManagerRequest struct {
	FullName string    `json:"full_name" validate:"required,min=3,max=200"`
	Email    string    `json:"email" validate:"omitempty,email,max=255"`
	Phone    string    `json:"phone" validate:"omitempty,phone_br"`
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
}

func (s *SchoolManagerService) checkSchool(id uuid.UUID) error {
	if _, err := s.schoolRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("school_id", "school does not exist")
		}
		return fmt.Errorf("failed to get school: %w", err)
	}
	return nil
}

// Create credentials a school manager
func (s *SchoolManagerService) Create(ctx context.Context, req *CreateManagerRequest) (*models.SchoolManager, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	cpf := validation.NormalizeCPF(req.CPF)
	existing, err := s.repo.GetByCPF(cpf)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing manager: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSchoolManagerExists
	}
	if err := s.checkSchool(req.SchoolID); err != nil {
		return nil, err
	}

	manager := &models.SchoolManager{
		CPF:      cpf,
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    validation.OnlyDigits(req.Phone),
		SchoolID: req.SchoolID,
		Status:   models.ManagerStatusActive,
	}
	manager.CreatedBy = actor(ctx)
	manager.UpdatedBy = manager.CreatedBy
	err = credentialed(s.repo, manager, s.now(), func() error {
		return s.repo.Create(manager)
	})
	if err != nil {
		return nil, managerInsertError(err, "create school manager")
	}
	return manager, nil
}

// GetByID retrieves a manager with the school
func (s *SchoolManagerService) GetByID(id uuid.UUID) (*models.SchoolManager, error) {
	manager, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrSchoolManagerNotFound, "school manager")
	}
	return manager, nil
}

// List returns a page of managers ordered by name
func (s *SchoolManagerService) List(filter repository.SchoolManagerFilter, page, pageSize int) (*ListResponse[models.SchoolManager], error) {
	page, pageSize = NormalizePage(page, pageSize)
	managers, total, err := s.repo.List(filter, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list school managers: %w", err)
	}
	return newList(managers, total, page, pageSize), nil
}

// Update edits a manager's contact data and school
func (s *SchoolManagerService) Update(ctx context.Context, id uuid.UUID, req *UpdateManagerRequest) (*models.SchoolManager, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	manager, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrSchoolManagerNotFound, "school manager")
	}
	if manager.SchoolID != req.SchoolID {
		if err := s.checkSchool(req.SchoolID); err != nil {
			return nil, err
		}
		manager.School = nil
	}
	manager.FullName = strings.TrimSpace(req.FullName)
	manager.Email = strings.ToLower(strings.TrimSpace(req.Email))
	manager.Phone = validation.OnlyDigits(req.Phone)
	manager.SchoolID = req.SchoolID
	manager.UpdatedBy = actor(ctx)
	if err := s.repo.Update(manager); err != nil {
		return nil, fmt.Errorf("failed to update school manager: %w", err)
	}
	return manager, nil
}

// Delete removes a manager
func (s *SchoolManagerService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return lookup(err, apperrors.ErrSchoolManagerNotFound, "school manager")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete school manager: %w", err)
	}
	return nil
}

func (s *SchoolManagerService) setStatus(ctx context.Context, id uuid.UUID, from, to models.ManagerStatus) (*models.SchoolManager, error) {
	manager, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrSchoolManagerNotFound, "school manager")
	}
	if manager.Status != from {
		return nil, apperrors.ErrInvalidStatusTransition
	}
	manager.Status = to
	manager.UpdatedBy = actor(ctx)
	if err := s.repo.Update(manager); err != nil {
		return nil, fmt.Errorf("failed to update school manager: %w", err)
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"credential": manager.CredentialNumber,
		"status":     to,
	}).Info("school manager status changed")
	return manager, nil
}

// Suspend suspends an active credential
func (s *SchoolManagerService) Suspend(ctx context.Context, id uuid.UUID) (*models.SchoolManager, error) {
	return s.setStatus(ctx, id, models.ManagerStatusActive, models.ManagerStatusSuspended)
}

// Reactivate lifts a suspension
func (s *SchoolManagerService) Reactivate(ctx context.Context, id uuid.UUID) (*models.SchoolManager, error) {
	return s.setStatus(ctx, id, models.ManagerStatusSuspended, models.ManagerStatusActive)
}

// Renew extends an active credential for another validity period counted
// from today. The credential number stays the same.
func (s *SchoolManagerService) Renew(ctx context.Context, id uuid.UUID) (*models.SchoolManager, error) {
	manager, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrSchoolManagerNotFound, "school manager")
	}
	if manager.Status != models.ManagerStatusActive {
		return nil, apperrors.NewConflictError("suspended credentials cannot be renewed")
	}
	manager.ValidUntil = dateOnly(s.now()).AddDate(CredentialValidityYears, 0, 0)
	manager.UpdatedBy = actor(ctx)
	if err := s.repo.Update(manager); err != nil {
		return nil, fmt.Errorf("failed to renew credential: %w", err)
	}
	return manager, nil
}
