package models

import "time"

// Meeting is a council or board meeting
type Meeting struct {
	BaseModel
	Title       string        `json:"title" gorm:"not null;size:200"`
	Kind        MeetingKind   `json:"kind" gorm:"type:varchar(20);not null;default:'ordinary'"`
	Date        time.Time     `json:"date" gorm:"not null;index"`
	Location    string        `json:"location" gorm:"size:200"`
	Agenda      string        `json:"agenda" gorm:"type:text"`
	MinutesPath string        `json:"minutes_path,omitempty" gorm:"size:500"`
	Status      MeetingStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
}

// TableName returns the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}
