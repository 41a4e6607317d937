package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProcurementCase is an administrative purchasing process
type ProcurementCase struct {
	BaseModel
	ProcessNumber  string              `json:"process_number" gorm:"uniqueIndex;not null;size:20"`
	Object         string              `json:"object" gorm:"not null;size:1000"`
	Modality       Modality            `json:"modality" gorm:"type:varchar(20);not null;index"`
	EstimatedValue decimal.Decimal     `json:"estimated_value" gorm:"type:numeric(14,2);not null;default:0"`
	AwardedValue   decimal.NullDecimal `json:"awarded_value" gorm:"type:numeric(14,2)"`
	Status         ProcurementStatus   `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	UnitID         *uuid.UUID          `json:"unit_id,omitempty" gorm:"type:uuid"`
	OpenedAt       time.Time           `json:"opened_at" gorm:"not null"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
	CancelledAt    *time.Time          `json:"cancelled_at,omitempty"`
	CancelReason   string              `json:"cancel_reason,omitempty" gorm:"size:500"`

	Items []ChecklistItem `json:"items,omitempty" gorm:"foreignKey:CaseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProcurementCase
func (ProcurementCase) TableName() string {
	return "procurement_cases"
}

// ChecklistItem is one step of a procurement case checklist
type ChecklistItem struct {
	BaseModel
	CaseID   uuid.UUID  `json:"case_id" gorm:"type:uuid;not null;index"`
	Step     int        `json:"step" gorm:"not null"`
	Title    string     `json:"title" gorm:"not null;size:300"`
	Required bool       `json:"required" gorm:"not null;default:true"`
	Done     bool       `json:"done" gorm:"not null;default:false"`
	DoneAt   *time.Time `json:"done_at,omitempty"`
	DoneBy   string     `json:"done_by,omitempty" gorm:"size:255"`
}

// TableName returns the table name for ChecklistItem
func (ChecklistItem) TableName() string {
	return "procurement_checklist_items"
}
