package models

import (
	"github.com/google/uuid"
)

// Driver represents a league driver identified by full name
type Driver struct {
	BaseModel
	FullName    string     `json:"full_name" gorm:"size:150;not null;uniqueIndex" validate:"required,min=1,max=150"`
	Nickname    *string    `json:"nickname,omitempty" gorm:"size:50"`
	Nationality *string    `json:"nationality,omitempty" gorm:"size:50"`
	TeamID      *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Driver
func (Driver) TableName() string {
	return "drivers"
}
