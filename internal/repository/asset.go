package repository

import (
	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssetRepository handles database operations for the asset inventory
type AssetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create creates a new asset
func (r *AssetRepository) Create(asset *models.Asset) error {
	return r.db.Omit(clause.Associations).Create(asset).Error
}

// GetByID retrieves an asset with its unit
func (r *AssetRepository) GetByID(id uuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	if err := r.db.Preload("Unit").First(&asset, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

// GetByTag retrieves an asset by its tag number
func (r *AssetRepository) GetByTag(tag string) (*models.Asset, error) {
	var asset models.Asset
	if err := r.db.First(&asset, "tag = ?", tag).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

// List retrieves assets matching the filter
func (r *AssetRepository) List(filter AssetFilter, limit, offset int) ([]models.Asset, int64, error) {
	var assets []models.Asset
	var total int64

	query := r.db.Model(&models.Asset{})
	if filter.UnitID != nil {
		query = query.Where("unit_id = ?", *filter.UnitID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Query != "" {
		pattern := likePattern(filter.Query)
		query = query.Where("tag ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Unit").Order("tag").Limit(limit).Offset(offset).Find(&assets).Error
	if err != nil {
		return nil, 0, err
	}

	return assets, total, nil
}

// Update updates an asset
func (r *AssetRepository) Update(asset *models.Asset) error {
	return r.db.Omit(clause.Associations).Save(asset).Error
}

// Delete deletes an asset and its transfer history
func (r *AssetRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_id = ?", id).Delete(&models.AssetTransfer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Asset{}, "id = ?", id).Error
	})
}

// Transfer records the transfer and moves the asset in one transaction
func (r *AssetRepository) Transfer(asset *models.Asset, transfer *models.AssetTransfer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transfer).Error; err != nil {
			return err
		}
		return tx.Model(&models.Asset{}).
			Where("id = ?", asset.ID).
			Updates(map[string]interface{}{"unit_id": transfer.ToUnitID, "updated_by": asset.UpdatedBy}).Error
	})
}

// ListTransfers retrieves the transfer history of an asset, newest first
func (r *AssetRepository) ListTransfers(assetID uuid.UUID) ([]models.AssetTransfer, error) {
	var transfers []models.AssetTransfer
	err := r.db.Where("asset_id = ?", assetID).Order("date DESC, created_at DESC").Find(&transfers).Error
	return transfers, err
}

// Summary counts and values non written-off assets by unit and category
func (r *AssetRepository) Summary() ([]AssetSummaryRow, error) {
	var rows []AssetSummaryRow
	err := r.db.Table("assets AS a").
		Select(`a.unit_id AS unit_id,
			u.name AS unit_name,
			a.category AS category,
			COUNT(*) AS count,
			COALESCE(SUM(a.acquisition_value), 0) AS value`).
		Joins("JOIN units u ON u.id = a.unit_id").
		Where("a.status <> ?", models.AssetStatusWrittenOff).
		Group("a.unit_id, u.name, a.category").
		Order("u.name, a.category").
		Scan(&rows).Error
	return rows, err
}

// CountByStatus counts assets in a given status
func (r *AssetRepository) CountByStatus(status models.AssetStatus) (int64, error) {
	var total int64
	err := r.db.Model(&models.Asset{}).Where("status = ?", status).Count(&total).Error
	return total, err
}
