package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RaceResult stores one driver's result in one event. A driver has at most one
// result per event; re-ingesting a file updates the existing row.
type RaceResult struct {
	BaseModel
	EventID       uuid.UUID      `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_race_results_event_driver,priority:1"`
	DriverID      uuid.UUID      `json:"driver_id" gorm:"type:uuid;not null;uniqueIndex:idx_race_results_event_driver,priority:2;index"`
	TeamID        *uuid.UUID     `json:"team_id,omitempty" gorm:"type:uuid;index"`
	CarModel      string         `json:"car_model" gorm:"size:100;not null;default:''"`
	FinalPosition int            `json:"final_position" gorm:"type:integer;not null;default:0;check:chk_race_results_final_position,final_position >= 0"`
	BestLapTime   *time.Duration `json:"best_lap_time,omitempty" gorm:"type:bigint"`
	Incidents     int            `json:"incidents" gorm:"type:integer;not null;default:0;check:chk_race_results_incidents,incidents >= 0"`
	PointsEarned  int            `json:"points_earned" gorm:"type:integer;not null;default:0;check:chk_race_results_points_earned,points_earned >= 0"`
	RawPayload    datatypes.JSON `json:"raw_payload" gorm:"not null"`

	// Relationships
	Event  *Event  `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Driver *Driver `json:"driver,omitempty" gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE"`
	Team   *Team   `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for RaceResult
func (RaceResult) TableName() string {
	return "race_results"
}
