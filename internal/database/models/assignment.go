package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment (lotação) places an employee in a unit and position for a
// period. At most one assignment per employee is active; the service closes
// the previous one when a new one starts.
type Assignment struct {
	BaseModel
	EmployeeID uuid.UUID  `json:"employee_id" gorm:"type:uuid;not null;index:idx_assignments_employee_active"`
	UnitID     uuid.UUID  `json:"unit_id" gorm:"type:uuid;not null;index"`
	PositionID uuid.UUID  `json:"position_id" gorm:"type:uuid;not null"`
	StartDate  time.Time  `json:"start_date" gorm:"type:date;not null"`
	EndDate    *time.Time `json:"end_date,omitempty" gorm:"type:date"`
	Reason     string     `json:"reason" gorm:"size:500"`
	IsActive   bool       `json:"is_active" gorm:"not null;default:true;index:idx_assignments_employee_active"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Unit     *Unit     `json:"unit,omitempty" gorm:"foreignKey:UnitID;constraint:OnDelete:RESTRICT"`
	Position *Position `json:"position,omitempty" gorm:"foreignKey:PositionID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}
