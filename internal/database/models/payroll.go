package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollRun is one payroll batch (folha) for a competence year/month
type PayrollRun struct {
	BaseModel
	Year            int             `json:"year" gorm:"not null;uniqueIndex:idx_payroll_runs_period"`
	Month           int             `json:"month" gorm:"not null;uniqueIndex:idx_payroll_runs_period"`
	Kind            PayrollKind     `json:"kind" gorm:"type:varchar(20);not null;default:'monthly';uniqueIndex:idx_payroll_runs_period"`
	Status          PayrollStatus   `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	OpenedAt        time.Time       `json:"opened_at" gorm:"not null"`
	ProcessingAt    *time.Time      `json:"processing_at,omitempty"`
	ClosedAt        *time.Time      `json:"closed_at,omitempty"`
	ReopenedAt      *time.Time      `json:"reopened_at,omitempty"`
	ReopenReason    string          `json:"reopen_reason,omitempty" gorm:"size:500"`
	TotalGross      decimal.Decimal `json:"total_gross" gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeductions decimal.Decimal `json:"total_deductions" gorm:"type:numeric(14,2);not null;default:0"`
	TotalNet        decimal.Decimal `json:"total_net" gorm:"type:numeric(14,2);not null;default:0"`
	EntryCount      int             `json:"entry_count" gorm:"not null;default:0"`

	Entries []PayrollEntry `json:"entries,omitempty" gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PayrollRun
func (PayrollRun) TableName() string {
	return "payroll_runs"
}

// PayrollEntry is one employee's line in a payroll run
type PayrollEntry struct {
	BaseModel
	RunID       uuid.UUID       `json:"run_id" gorm:"type:uuid;not null;uniqueIndex:idx_payroll_entries_run_employee"`
	EmployeeID  uuid.UUID       `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_payroll_entries_run_employee"`
	GrossAmount decimal.Decimal `json:"gross_amount" gorm:"type:numeric(14,2);not null"`
	Deductions  decimal.Decimal `json:"deductions" gorm:"type:numeric(14,2);not null;default:0"`
	NetAmount   decimal.Decimal `json:"net_amount" gorm:"type:numeric(14,2);not null"`
	Notes       string          `json:"notes,omitempty" gorm:"size:500"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for PayrollEntry
func (PayrollEntry) TableName() string {
	return "payroll_entries"
}
