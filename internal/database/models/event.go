package models

import (
	"time"
)

// Event represents a championship round, e.g. "Round 1 - Monza"
type Event struct {
	BaseModel
	Name      string    `json:"name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	TrackName string    `json:"track_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	EventDate time.Time `json:"event_date" gorm:"type:date;not null;index"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}
