package models

// Page is an institutional page of the public portal (about, history, contacts)
type Page struct {
	BaseModel
	Slug      string `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	Title     string `json:"title" gorm:"not null;size:200"`
	Body      string `json:"body" gorm:"type:text"`
	Published bool   `json:"published" gorm:"not null;default:false"`
	MenuOrder int    `json:"menu_order" gorm:"not null;default:0"`
}

// TableName returns the table name for Page
func (Page) TableName() string {
	return "pages"
}
