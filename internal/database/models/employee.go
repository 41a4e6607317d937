package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a member of the institute staff
type Employee struct {
	BaseModel
	RegistrationNumber string         `json:"registration_number" gorm:"uniqueIndex;not null;size:20"`
	FullName           string         `json:"full_name" gorm:"not null;size:200;index"`
	CPF                string         `json:"cpf" gorm:"uniqueIndex;not null;size:11"`
	Email              string         `json:"email" gorm:"size:255"`
	Phone              string         `json:"phone" gorm:"size:20"`
	BirthDate          *time.Time     `json:"birth_date,omitempty" gorm:"type:date"`
	HireDate           time.Time      `json:"hire_date" gorm:"type:date;not null"`
	Status             EmployeeStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	CurrentUnitID      *uuid.UUID     `json:"current_unit_id,omitempty" gorm:"type:uuid;index"`
	CurrentPositionID  *uuid.UUID     `json:"current_position_id,omitempty" gorm:"type:uuid"`

	CurrentUnit     *Unit     `json:"current_unit,omitempty" gorm:"foreignKey:CurrentUnitID;constraint:OnDelete:SET NULL"`
	CurrentPosition *Position `json:"current_position,omitempty" gorm:"foreignKey:CurrentPositionID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
