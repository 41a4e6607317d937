package models

import (
	"time"

	"github.com/google/uuid"
)

// NewsArticle is a news item shown on the public portal
type NewsArticle struct {
	BaseModel
	Slug        string     `json:"slug" gorm:"uniqueIndex;not null;size:200"`
	Title       string     `json:"title" gorm:"not null;size:200"`
	Summary     string     `json:"summary" gorm:"size:500"`
	Body        string     `json:"body" gorm:"type:text"`
	CoverPath   string     `json:"cover_path,omitempty" gorm:"size:500"`
	Status      NewsStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	PublishedAt *time.Time `json:"published_at,omitempty" gorm:"index"`
	AuthorID    *uuid.UUID `json:"author_id,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for NewsArticle
func (NewsArticle) TableName() string {
	return "news_articles"
}
