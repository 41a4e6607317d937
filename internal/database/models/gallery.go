package models

import (
	"time"

	"github.com/google/uuid"
)

// Gallery is a photo album of an institutional event
type Gallery struct {
	BaseModel
	Title       string     `json:"title" gorm:"not null;size:200"`
	Description string     `json:"description" gorm:"size:1000"`
	EventDate   *time.Time `json:"event_date,omitempty" gorm:"type:date"`
	Published   bool       `json:"published" gorm:"not null;default:false"`

	Photos []Photo `json:"photos,omitempty" gorm:"foreignKey:GalleryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Gallery
func (Gallery) TableName() string {
	return "galleries"
}

// Photo is an image inside a gallery
type Photo struct {
	BaseModel
	GalleryID uuid.UUID `json:"gallery_id" gorm:"type:uuid;not null;index"`
	Path      string    `json:"path" gorm:"not null;size:500"`
	Caption   string    `json:"caption" gorm:"size:300"`
	Position  int       `json:"position" gorm:"not null;default:0"`
}

// TableName returns the table name for Photo
func (Photo) TableName() string {
	return "photos"
}
