package repository

import (
	"time"

	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeFilter narrows employee listings
type EmployeeFilter struct {
	Query  string // name, CPF or registration number
	UnitID *uuid.UUID
	Status models.EmployeeStatus
}

// PayrollRunFilter narrows payroll run listings
type PayrollRunFilter struct {
	Year   int
	Status models.PayrollStatus
}

// ProcurementFilter narrows procurement case listings
type ProcurementFilter struct {
	Status       models.ProcurementStatus
	Modality     models.Modality
	Year         int
	ExcludeDraft bool
}

// MeetingFilter narrows meeting listings; Upcoming selects meetings at or after Now
type MeetingFilter struct {
	Upcoming *bool
	Now      time.Time
}

// PortariaFilter narrows portaria listings
type PortariaFilter struct {
	Year     int
	Statuses []models.PortariaStatus
	Query    string
}

// NewsFilter narrows news listings
type NewsFilter struct {
	Status models.NewsStatus
	Query  string
}

// AssetFilter narrows asset listings
type AssetFilter struct {
	UnitID   *uuid.UUID
	Status   models.AssetStatus
	Category string
	Query    string
}

// SchoolFilter narrows school listings
type SchoolFilter struct {
	Query        string
	State        string
	FederationID *uuid.UUID
}

// PreRegistrationFilter narrows pre-registration listings
type PreRegistrationFilter struct {
	Status models.PreRegistrationStatus
	Kind   models.PreRegistrationKind
}

// SchoolManagerFilter narrows school manager listings
type SchoolManagerFilter struct {
	Status   models.ManagerStatus
	SchoolID *uuid.UUID
	Query    string
}

// EntryTotals aggregates the entries of a payroll run
type EntryTotals struct {
	Gross      decimal.Decimal
	Deductions decimal.Decimal
	Net        decimal.Decimal
	Count      int64
}

// UnitTotals aggregates payroll entries by the employee's current unit
type UnitTotals struct {
	UnitID     *uuid.UUID      `json:"unit_id"`
	UnitName   string          `json:"unit_name"`
	Employees  int64           `json:"employees"`
	Gross      decimal.Decimal `json:"gross"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
}

// AssetSummaryRow aggregates assets by unit and category
type AssetSummaryRow struct {
	UnitID   uuid.UUID       `json:"unit_id"`
	UnitName string          `json:"unit_name"`
	Category string          `json:"category"`
	Count    int64           `json:"count"`
	Value    decimal.Decimal `json:"value"`
}
