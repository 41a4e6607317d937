package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssetService handles the property inventory (patrimônio)
type AssetService struct {
	repo      repository.AssetRepositoryInterface
	unitRepo  repository.UnitRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewAssetService creates a new asset service
func NewAssetService(repo repository.AssetRepositoryInterface, unitRepo repository.UnitRepositoryInterface, validator *validator.Validate) *AssetService {
	return &AssetService{
		repo:      repo,
		unitRepo:  unitRepo,
		validator: validator,
		now:       time.Now,
	}
}

// CreateAssetRequest represents the request to register an asset
type CreateAssetRequest struct {
	Tag              string          `json:"tag" validate:"required,max=30"`
	Description      string          `json:"description" validate:"required,max=500"`
	Category         string          `json:"category" validate:"required,max=100"`
	UnitID           uuid.UUID       `json:"unit_id" validate:"required"`
	AcquisitionDate  string          `json:"acquisition_date" validate:"required,datetime=2006-01-02"`
	AcquisitionValue decimal.Decimal `json:"acquisition_value" swaggertype:"string" example:"3499.90"`
	Notes            string          `json:"notes" validate:"max=1000"`
}

// UpdateAssetRequest represents the editable fields of an asset. The unit
// changes only through transfers.
type UpdateAssetRequest struct {
	Description      string          `json:"description" validate:"required,max=500"`
	Category         string          `json:"category" validate:"required,max=100"`
	AcquisitionDate  string          `json:"acquisition_date" validate:"required,datetime=2006-01-02"`
	AcquisitionValue decimal.Decimal `json:"acquisition_value" swaggertype:"string"`
	Status           string          `json:"status" validate:"required,oneof=active maintenance"`
	Notes            string          `json:"notes" validate:"max=1000"`
}

// TransferAssetRequest moves an asset to another unit
type TransferAssetRequest struct {
	ToUnitID uuid.UUID `json:"to_unit_id" validate:"required"`
	Date     string    `json:"date" validate:"required,datetime=2006-01-02"`
	Reason   string    `json:"reason" validate:"max=500"`
}

// WriteOffRequest carries the mandatory write-off reason
type WriteOffRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// AssetSummary is the inventory grouped by unit and category
type AssetSummary struct {
	Rows       []repository.AssetSummaryRow `json:"rows"`
	TotalCount int64                        `json:"total_count"`
	TotalValue decimal.Decimal              `json:"total_value"`
}

// Create registers an asset
func (s *AssetService) Create(ctx context.Context, req *CreateAssetRequest) (*models.Asset, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	acquired, err := parseDate("acquisition_date", req.AcquisitionDate)
	if err != nil {
		return nil, err
	}
	if req.AcquisitionValue.IsNegative() {
		return nil, apperrors.NewValidationError("acquisition_value", "must not be negative")
	}

	tag := strings.ToUpper(strings.TrimSpace(req.Tag))
	existing, err := s.repo.GetByTag(tag)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing asset: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAssetExists
	}
	if _, err := s.unitRepo.GetByID(req.UnitID); err != nil {
		return nil, lookup(err, apperrors.ErrUnitNotFound, "unit")
	}

	asset := &models.Asset{
		Tag:              tag,
		Description:      strings.TrimSpace(req.Description),
		Category:         strings.TrimSpace(req.Category),
		UnitID:           req.UnitID,
		AcquisitionDate:  acquired,
		AcquisitionValue: req.AcquisitionValue.Round(2),
		Status:           models.AssetStatusActive,
		Notes:            req.Notes,
	}
	asset.CreatedBy = actor(ctx)
	asset.UpdatedBy = asset.CreatedBy
	if err := s.repo.Create(asset); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrAssetExists
		}
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	return asset, nil
}

// GetByID retrieves an asset with its unit
func (s *AssetService) GetByID(id uuid.UUID) (*models.Asset, error) {
	asset, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrAssetNotFound, "asset")
	}
	return asset, nil
}

// List returns a page of assets ordered by tag
func (s *AssetService) List(filter repository.AssetFilter, page, pageSize int) (*ListResponse[models.Asset], error) {
	page, pageSize = NormalizePage(page, pageSize)
	assets, total, err := s.repo.List(filter, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return newList(assets, total, page, pageSize), nil
}

// Update edits an asset that has not been written off
func (s *AssetService) Update(ctx context.Context, id uuid.UUID, req *UpdateAssetRequest) (*models.Asset, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	acquired, err := parseDate("acquisition_date", req.AcquisitionDate)
	if err != nil {
		return nil, err
	}
	if req.AcquisitionValue.IsNegative() {
		return nil, apperrors.NewValidationError("acquisition_value", "must not be negative")
	}

	asset, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrAssetNotFound, "asset")
	}
	if asset.Status == models.AssetStatusWrittenOff {
		return nil, apperrors.ErrAssetWrittenOff
	}

	asset.Description = strings.TrimSpace(req.Description)
	asset.Category = strings.TrimSpace(req.Category)
	asset.AcquisitionDate = acquired
	asset.AcquisitionValue = req.AcquisitionValue.Round(2)
	asset.Status = models.AssetStatus(req.Status)
	asset.Notes = req.Notes
	asset.UpdatedBy = actor(ctx)
	if err := s.repo.Update(asset); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}
	return asset, nil
}

// Delete removes an asset registered by mistake
func (s *AssetService) Delete(ctx context.Context, id uuid.UUID) error {
	asset, err := s.repo.GetByID(id)
	if err != nil {
		return lookup(err, apperrors.ErrAssetNotFound, "asset")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	logger.WithContext(ctx).WithField("tag", asset.Tag).Info("asset deleted")
	return nil
}

// Transfer moves an asset to another unit and records the transfer.
// Written-off assets cannot move.
func (s *AssetService) Transfer(ctx context.Context, id uuid.UUID, req *TransferAssetRequest) (*models.AssetTransfer, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	asset, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrAssetNotFound, "asset")
	}
	if asset.Status == models.AssetStatusWrittenOff {
		return nil, apperrors.ErrAssetWrittenOff
	}
	if asset.UnitID == req.ToUnitID {
		return nil, apperrors.NewValidationError("to_unit_id", "asset is already in this unit")
	}
	unit, err := s.unitRepo.GetByID(req.ToUnitID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrUnitNotFound, "unit")
	}
	if !unit.IsActive {
		return nil, apperrors.NewValidationError("to_unit_id", "unit is inactive")
	}

	who := actor(ctx)
	transfer := &models.AssetTransfer{
		AssetID:       asset.ID,
		FromUnitID:    asset.UnitID,
		ToUnitID:      req.ToUnitID,
		Date:          date,
		Reason:        req.Reason,
		TransferredBy: who,
	}
	transfer.CreatedBy = who
	transfer.UpdatedBy = who
	asset.UpdatedBy = who

	if err := s.repo.Transfer(asset, transfer); err != nil {
		return nil, fmt.Errorf("failed to transfer asset: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"tag": asset.Tag, "from": transfer.FromUnitID, "to": transfer.ToUnitID,
	}).Info("asset transferred")
	return transfer, nil
}

// Transfers lists the transfer history of an asset, newest first
func (s *AssetService) Transfers(id uuid.UUID) ([]models.AssetTransfer, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, lookup(err, apperrors.ErrAssetNotFound, "asset")
	}
	transfers, err := s.repo.ListTransfers(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	if transfers == nil {
		transfers = []models.AssetTransfer{}
	}
	return transfers, nil
}

// WriteOff removes an asset from the active inventory (baixa)
func (s *AssetService) WriteOff(ctx context.Context, id uuid.UUID, req *WriteOffRequest) (*models.Asset, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	asset, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrAssetNotFound, "asset")
	}
	if asset.Status == models.AssetStatusWrittenOff {
		return nil, apperrors.ErrAssetWrittenOff
	}

	now := s.now()
	asset.Status = models.AssetStatusWrittenOff
	asset.WrittenOffAt = &now
	asset.WriteOffReason = strings.TrimSpace(req.Reason)
	asset.UpdatedBy = actor(ctx)
	if err := s.repo.Update(asset); err != nil {
		return nil, fmt.Errorf("failed to write off asset: %w", err)
	}

	logger.WithContext(ctx).WithField("tag", asset.Tag).Info("asset written off")
	return asset, nil
}

// Summary counts and values the assets in use by unit and category
func (s *AssetService) Summary() (*AssetSummary, error) {
	rows, err := s.repo.Summary()
	if err != nil {
		return nil, fmt.Errorf("failed to summarize assets: %w", err)
	}
	summary := &AssetSummary{Rows: rows, TotalValue: decimal.Zero}
	if summary.Rows == nil {
		summary.Rows = []repository.AssetSummaryRow{}
	}
	for _, row := range rows {
		summary.TotalCount += row.Count
		summary.TotalValue = summary.TotalValue.Add(row.Value)
	}
	return summary, nil
}
