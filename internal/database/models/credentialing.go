package models

import (
	"time"

	"github.com/google/uuid"
)

// Federation is a state school-sports federation
type Federation struct {
	BaseModel
	Name    string `json:"name" gorm:"not null;size:200"`
	Acronym string `json:"acronym" gorm:"uniqueIndex;not null;size:20"`
	State   string `json:"state" gorm:"size:2"`
	Email   string `json:"email" gorm:"size:255"`
}

// TableName returns the table name for Federation
func (Federation) TableName() string {
	return "federations"
}

// School is a school identified by its INEP code
type School struct {
	BaseModel
	INEP         string        `json:"inep" gorm:"uniqueIndex;not null;size:8"`
	Name         string        `json:"name" gorm:"not null;size:300;index"`
	City         string        `json:"city" gorm:"size:100"`
	State        string        `json:"state" gorm:"size:2"`
	FederationID *uuid.UUID    `json:"federation_id,omitempty" gorm:"type:uuid;index"`
	Network      SchoolNetwork `json:"network" gorm:"type:varchar(20);not null;default:'state'"`

	Federation *Federation `json:"federation,omitempty" gorm:"foreignKey:FederationID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for School
func (School) TableName() string {
	return "schools"
}

// PreRegistration is a public pre-cadastro waiting for review
type PreRegistration struct {
	BaseModel
	Protocol     string                `json:"protocol" gorm:"uniqueIndex;not null;size:20"`
	Kind         PreRegistrationKind   `json:"kind" gorm:"type:varchar(20);not null;index:idx_pre_registrations_cpf_kind"`
	FullName     string                `json:"full_name" gorm:"not null;size:200"`
	CPF          string                `json:"cpf" gorm:"not null;size:11;index:idx_pre_registrations_cpf_kind"`
	Email        string                `json:"email" gorm:"not null;size:255"`
	Phone        string                `json:"phone" gorm:"size:20"`
	BirthDate    *time.Time            `json:"birth_date,omitempty" gorm:"type:date"`
	SchoolINEP   string                `json:"school_inep,omitempty" gorm:"size:8"`
	Position     string                `json:"position,omitempty" gorm:"size:200"`
	Status       PreRegistrationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ReviewedBy   string                `json:"reviewed_by,omitempty" gorm:"size:255"`
	ReviewedAt   *time.Time            `json:"reviewed_at,omitempty"`
	RejectReason string                `json:"reject_reason,omitempty" gorm:"size:500"`
}

// TableName returns the table name for PreRegistration
func (PreRegistration) TableName() string {
	return "pre_registrations"
}

// SchoolManager is a credentialed school manager
type SchoolManager struct {
	BaseModel
	CPF               string        `json:"cpf" gorm:"uniqueIndex;not null;size:11"`
	FullName          string        `json:"full_name" gorm:"not null;size:200"`
	Email             string        `json:"email" gorm:"size:255"`
	Phone             string        `json:"phone" gorm:"size:20"`
	SchoolID          uuid.UUID     `json:"school_id" gorm:"type:uuid;not null;index"`
	CredentialNumber  string        `json:"credential_number" gorm:"uniqueIndex;not null;size:20"`
	Status            ManagerStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	ValidUntil        time.Time     `json:"valid_until" gorm:"type:date;not null"`
	PreRegistrationID *uuid.UUID    `json:"pre_registration_id,omitempty" gorm:"type:uuid"`

	School *School `json:"school,omitempty" gorm:"foreignKey:SchoolID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for SchoolManager
func (SchoolManager) TableName() string {
	return "school_managers"
}
