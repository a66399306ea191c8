package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DriverStandingRow is one aggregated line of the drivers' championship
type DriverStandingRow struct {
	DriverID    uuid.UUID
	FullName    string
	Nickname    *string
	TeamName    *string
	TotalPoints int64
	Events      int64
}

// StandingsRepository runs the championship aggregation queries
type StandingsRepository struct {
	db *gorm.DB
}

// NewStandingsRepository creates a new standings repository
func NewStandingsRepository(db *gorm.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

// GetDriverStandings sums points per driver over all events. Drivers without results
// or with zero points are left out. Equal totals are ordered by full name.
func (r *StandingsRepository) GetDriverStandings() ([]DriverStandingRow, error) {
	var rows []DriverStandingRow
	err := r.db.Table("drivers").
		Select(`drivers.id AS driver_id,
			drivers.full_name AS full_name,
			drivers.nickname AS nickname,
			teams.name AS team_name,
			SUM(race_results.points_earned) AS total_points,
			COUNT(race_results.id) AS events`).
		Joins("JOIN race_results ON race_results.driver_id = drivers.id").
		Joins("LEFT JOIN teams ON teams.id = drivers.team_id").
		Group("drivers.id, drivers.full_name, drivers.nickname, teams.name").
		Having("SUM(race_results.points_earned) > 0").
		Order("total_points DESC").
		Order("drivers.full_name ASC").
		Scan(&rows).Error
	return rows, err
}
