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

// school import columns, as normalized header keys
const (
	colINEP       = "inep"
	colName       = "nome"
	colCity       = "municipio"
	colState      = "uf"
	colNetwork    = "rede"
	colFederation = "federacao"
)

// networkAliases maps the network names used in spreadsheets to SchoolNetwork
var networkAliases = map[string]models.SchoolNetwork{
	"":           models.SchoolNetworkState,
	"estadual":   models.SchoolNetworkState,
	"state":      models.SchoolNetworkState,
	"municipal":  models.SchoolNetworkMunicipal,
	"privada":    models.SchoolNetworkPrivate,
	"particular": models.SchoolNetworkPrivate,
	"private":    models.SchoolNetworkPrivate,
	"federal":    models.SchoolNetworkFederal,
}

// SchoolService handles schools identified by their INEP code
type SchoolService struct {
	repo           repository.SchoolRepositoryInterface
	federationRepo repository.FederationRepositoryInterface
	validator      *validator.Validate
}

// NewSchoolService creates a new school service
func NewSchoolService(repo repository.SchoolRepositoryInterface, federationRepo repository.FederationRepositoryInterface, validator *validator.Validate) *SchoolService {
	return &SchoolService{
		repo:           repo,
		federationRepo: federationRepo,
		validator:      validator,
	}
}

// SchoolRequest represents the request to create or update a school
type SchoolRequest struct {
	INEP         string     `json:"inep" validate:"required,inep"`
	Name         string     `json:"name" validate:"required,max=300"`
	City         string     `json:"city" validate:"max=100"`
	State        string     `json:"state" validate:"omitempty,uf"`
	FederationID *uuid.UUID `json:"federation_id,omitempty"`
	Network      string     `json:"network" validate:"omitempty,oneof=state municipal private federal"`
}

func (r *SchoolRequest) apply(school *models.School) {
	school.INEP = r.INEP
	school.Name = strings.TrimSpace(r.Name)
	school.City = strings.TrimSpace(r.City)
	school.State = strings.ToUpper(r.State)
	school.FederationID = r.FederationID
	school.Network = models.SchoolNetwork(r.Network)
	if school.Network == "" {
		school.Network = models.SchoolNetworkState
	}
}

// Create creates a school
func (s *SchoolService) Create(ctx context.Context, req *SchoolRequest) (*models.School, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.ensureINEPFree(req.INEP, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.checkFederation(req.FederationID); err != nil {
		return nil, err
	}

	school := &models.School{}
	req.apply(school)
	school.CreatedBy = actor(ctx)
	school.UpdatedBy = school.CreatedBy
	if err := s.repo.Create(school); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrSchoolExists
		}
		return nil, fmt.Errorf("failed to create school: %w", err)
	}
	return school, nil
}

func (s *SchoolService) ensureINEPFree(inep string, self uuid.UUID) error {
	existing, err := s.repo.GetByINEP(inep)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check existing school: %w", err)
	}
	if existing.ID != self {
		return apperrors.ErrSchoolExists
	}
	return nil
}

func (s *SchoolService) checkFederation(id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.federationRepo.GetByID(*id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("federation_id", "federation does not exist")
		}
		return fmt.Errorf("failed to get federation: %w", err)
	}
	return nil
}

// GetByID retrieves a school by ID
func (s *SchoolService) GetByID(id uuid.UUID) (*models.School, error) {
	school, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrSchoolNotFound, "school")
	}
	return school, nil
}

// GetByINEP retrieves a school by its INEP code
func (s *SchoolService) GetByINEP(inep string) (*models.School, error) {
	if !validation.IsINEP(inep) {
		return nil, apperrors.NewValidationError("inep", "must have exactly 8 digits")
	}
	school, err := s.repo.GetByINEP(inep)
	if err != nil {
		return nil, lookup(err, apperrors.ErrSchoolNotFound, "school")
	}
	return school, nil
}

// List returns a page of schools ordered by name
func (s *SchoolService) List(filter repository.SchoolFilter, page, pageSize int) (*ListResponse[models.School], error) {
	page, pageSize = NormalizePage(page, pageSize)
	filter.State = strings.ToUpper(filter.State)
	schools, total, err := s.repo.List(filter, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}
	return newList(schools, total, page, pageSize), nil
}

// Update updates a school
func (s *SchoolService) Update(ctx context.Context, id uuid.UUID, req *SchoolRequest) (*models.School, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	school, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrSchoolNotFound, "school")
	}
	if err := s.ensureINEPFree(req.INEP, school.ID); err != nil {
		return nil, err
	}
	if err := s.checkFederation(req.FederationID); err != nil {
		return nil, err
	}

	req.apply(school)
	school.Federation = nil
	school.UpdatedBy = actor(ctx)
	if err := s.repo.Update(school); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrSchoolExists
		}
		return nil, fmt.Errorf("failed to update school: %w", err)
	}
	return school, nil
}

// Delete removes a school without credentialed managers
func (s *SchoolService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return lookup(err, apperrors.ErrSchoolNotFound, "school")
	}
	if err := s.repo.Delete(id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("school has credentialed managers")
		}
		return fmt.Errorf("failed to delete school: %w", err)
	}
	return nil
}

// ImportXLSX loads schools from a sheet with the columns INEP, Nome,
// Município, UF, Rede and Federação. Rows whose INEP is already registered
// or appeared earlier in the file are reported as duplicates; rows failing
// validation as invalid. Neither is inserted.
func (s *SchoolService) ImportXLSX(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, err := spreadsheet.ReadFirstSheet(r, colINEP, colName)
	if err != nil {
		return nil, sheetError(err)
	}
	result := newImportResult(len(rows))

	federations, err := s.federationRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load federations: %w", err)
	}
	byAcronym := make(map[string]uuid.UUID, len(federations))
	for _, f := range federations {
		byAcronym[strings.ToUpper(f.Acronym)] = f.ID
	}

	ineps := make([]string, 0, len(rows))
	for _, row := range rows {
		if inep := validation.OnlyDigits(row.Get(colINEP)); validation.IsINEP(inep) {
			ineps = append(ineps, inep)
		}
	}
	existing, err := s.repo.ExistingINEPs(ineps)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing schools: %w", err)
	}
	seen := make(map[string]bool, len(existing)+len(rows))
	for _, inep := range existing {
		seen[inep] = true
	}
	inDB := make(map[string]bool, len(existing))
	for _, inep := range existing {
		inDB[inep] = true
	}

	who := actor(ctx)
	var batch []models.School
	for _, row := range rows {
		raw := row.Get(colINEP)
		inep := validation.OnlyDigits(raw)
		if !validation.IsINEP(inep) || len(inep) != len(strings.TrimSpace(raw)) {
			result.invalid(row.Line, raw, "INEP must have exactly 8 digits")
			continue
		}
		name := row.Get(colName)
		if name == "" {
			result.invalid(row.Line, inep, "name is required")
			continue
		}
		state := strings.ToUpper(row.Get(colState))
		if state != "" && !validation.IsUF(state) {
			result.invalid(row.Line, inep, "invalid state abbreviation: "+state)
			continue
		}
		network, ok := networkAliases[strings.ToLower(row.Get(colNetwork))]
		if !ok {
			result.invalid(row.Line, inep, "unknown network: "+row.Get(colNetwork))
			continue
		}
		var federationID *uuid.UUID
		if acronym := strings.ToUpper(row.Get(colFederation)); acronym != "" {
			id, ok := byAcronym[acronym]
			if !ok {
				result.invalid(row.Line, inep, "unknown federation: "+acronym)
				continue
			}
			federationID = &id
		}

		if seen[inep] {
			reason := "INEP appears earlier in the file"
			if inDB[inep] {
				reason = "school with this INEP is already registered"
			}
			result.duplicate(row.Line, inep, reason)
			continue
		}
		seen[inep] = true

		school := models.School{
			INEP:         inep,
			Name:         truncate(name, 300),
			City:         truncate(row.Get(colCity), 100),
			State:        state,
			FederationID: federationID,
			Network:      network,
		}
		school.CreatedBy = who
		school.UpdatedBy = who
		batch = append(batch, school)
	}

	if len(batch) > 0 {
		if err := s.repo.CreateBatch(batch); err != nil {
			if repository.IsUniqueViolation(err) {
				return nil, apperrors.NewConflictError("schools were registered concurrently; retry the import")
			}
			return nil, fmt.Errorf("failed to insert schools: %w", err)
		}
	}
	result.Inserted = len(batch)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"total":      result.Total,
		"inserted":   result.Inserted,
		"duplicates": len(result.Duplicates),
		"invalid":    len(result.Invalid),
	}).Info("schools imported")
	return result, nil
}
