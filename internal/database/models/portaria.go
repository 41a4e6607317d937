package models

import (
	"time"

	"github.com/google/uuid"
)

// Portaria is an administrative ordinance, numbered per year
type Portaria struct {
	BaseModel
	Number       int            `json:"number" gorm:"not null;uniqueIndex:idx_portarias_number_year"`
	Year         int            `json:"year" gorm:"not null;uniqueIndex:idx_portarias_number_year"`
	Subject      string         `json:"subject" gorm:"not null;size:500"`
	Body         string         `json:"body" gorm:"type:text"`
	Status       PortariaStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	PublishedAt  *time.Time     `json:"published_at,omitempty"`
	RevokedAt    *time.Time     `json:"revoked_at,omitempty"`
	RevokeReason string         `json:"revoke_reason,omitempty" gorm:"size:500"`
	DocumentPath string         `json:"document_path,omitempty" gorm:"size:500"`
	EmployeeID   *uuid.UUID     `json:"employee_id,omitempty" gorm:"type:uuid;index"`
}

// TableName returns the table name for Portaria
func (Portaria) TableName() string {
	return "portarias"
}
