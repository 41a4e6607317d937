package models

// Position is a job title employees are assigned to
type Position struct {
	BaseModel
	Code  string       `json:"code" gorm:"uniqueIndex;not null;size:20"`
	Title string       `json:"title" gorm:"not null;size:200"`
	Kind  PositionKind `json:"kind" gorm:"type:varchar(20);not null;default:'effective'"`
	Level string       `json:"level" gorm:"size:20"`
}

// TableName returns the table name for Position
func (Position) TableName() string {
	return "positions"
}
