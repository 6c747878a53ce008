// Package model provides domain models and DTOs for the member module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Member represents a member row. The id is assigned by the store and
// immutable afterwards.
type Member struct {
	ID         int64     `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	FirstName  string    `gorm:"column:first_name;type:varchar(255);not null" json:"first_name"`
	LastName   string    `gorm:"column:last_name;type:varchar(255);not null;index:idx_members_last_name" json:"last_name"`
	Email      string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_members_email" json:"email"`
	Phone      string    `gorm:"column:phone;type:varchar(64)" json:"phone"`
	Active     bool      `gorm:"column:active;type:boolean;not null;default:true" json:"active"`
	Newsletter bool      `gorm:"column:newsletter;type:boolean;not null;default:false" json:"newsletter"`
	Volunteer  bool      `gorm:"column:volunteer;type:boolean;not null;default:false" json:"volunteer"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt  time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Member) TableName() string {
	return "members"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (m *Member) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now()
	return nil
}

// BoolFields names the member fields stored as booleans, for the cast
// adapter and filter parsing.
var BoolFields = map[string]bool{
	"active":     true,
	"newsletter": true,
	"volunteer":  true,
}

// FilterFields is the allow-list of filterable fields, mapping query
// parameter names to columns. Anything else is rejected before SQL is built.
var FilterFields = map[string]string{
	"first_name": "first_name",
	"last_name":  "last_name",
	"email":      "email",
	"phone":      "phone",
	"active":     "active",
	"newsletter": "newsletter",
	"volunteer":  "volunteer",
}
