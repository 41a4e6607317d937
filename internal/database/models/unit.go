package models

import "github.com/google/uuid"

// Unit is a node of the organisational tree (directorate, department, sector)
type Unit struct {
	BaseModel
	Code     string     `json:"code" gorm:"uniqueIndex;not null;size:20"`
	Name     string     `json:"name" gorm:"not null;size:200"`
	Acronym  string     `json:"acronym" gorm:"size:20"`
	ParentID *uuid.UUID `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	IsActive bool       `json:"is_active" gorm:"not null;default:true"`

	Parent *Unit `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Unit
func (Unit) TableName() string {
	return "units"
}
