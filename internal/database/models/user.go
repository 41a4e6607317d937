package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a back-office account. Accounts are provisioned by admins; gov.br
// logins are linked by email.
type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255"`
	FullName     string     `json:"full_name" gorm:"not null;size:200"`
	PasswordHash string     `json:"-" gorm:"size:100"`
	Role         Role       `json:"role" gorm:"type:varchar(30);not null;default:'viewer'"`
	IsActive     bool       `json:"is_active" gorm:"not null;default:true"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	EmployeeID   *uuid.UUID `json:"employee_id,omitempty" gorm:"type:uuid;index"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
