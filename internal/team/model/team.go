// Package model provides domain models and DTOs for the team module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Team represents a team row.
type Team struct {
	ID          int64     `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex:idx_teams_name" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Notes       string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// FilterFields is the allow-list of filterable fields.
var FilterFields = map[string]string{
	"name": "name",
}
