package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset is an inventoried item of institute property (patrimônio)
type Asset struct {
	BaseModel
	Tag              string          `json:"tag" gorm:"uniqueIndex;not null;size:30"`
	Description      string          `json:"description" gorm:"not null;size:500"`
	Category         string          `json:"category" gorm:"not null;size:100;index"`
	UnitID           uuid.UUID       `json:"unit_id" gorm:"type:uuid;not null;index"`
	AcquisitionDate  time.Time       `json:"acquisition_date" gorm:"type:date;not null"`
	AcquisitionValue decimal.Decimal `json:"acquisition_value" gorm:"type:numeric(14,2);not null;default:0"`
	Status           AssetStatus     `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	Notes            string          `json:"notes,omitempty" gorm:"size:1000"`
	WrittenOffAt     *time.Time      `json:"written_off_at,omitempty"`
	WriteOffReason   string          `json:"write_off_reason,omitempty" gorm:"size:500"`

	Unit *Unit `json:"unit,omitempty" gorm:"foreignKey:UnitID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Asset
func (Asset) TableName() string {
	return "assets"
}

// AssetTransfer records an asset moving between units
type AssetTransfer struct {
	BaseModel
	AssetID       uuid.UUID `json:"asset_id" gorm:"type:uuid;not null;index"`
	FromUnitID    uuid.UUID `json:"from_unit_id" gorm:"type:uuid;not null"`
	ToUnitID      uuid.UUID `json:"to_unit_id" gorm:"type:uuid;not null"`
	Date          time.Time `json:"date" gorm:"type:date;not null"`
	Reason        string    `json:"reason" gorm:"size:500"`
	TransferredBy string    `json:"transferred_by" gorm:"size:255"`
}

// TableName returns the table name for AssetTransfer
func (AssetTransfer) TableName() string {
	return "asset_transfers"
}
