package repository

import (
	"time"

	"league-results-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertColumns are overwritten when a result for the same (event, driver) already exists
var upsertColumns = []string{
	"team_id",
	"car_model",
	"final_position",
	"best_lap_time",
	"incidents",
	"points_earned",
	"raw_payload",
	"updated_at",
}

// RaceResultRepository handles database operations for race results
type RaceResultRepository struct {
	db *gorm.DB
}

// NewRaceResultRepository creates a new race result repository
func NewRaceResultRepository(db *gorm.DB) *RaceResultRepository {
	return &RaceResultRepository{db: db}
}

// Upsert inserts the result or updates the existing row for the same event and driver
// in one statement. On return result holds the stored row, including its original ID.
func (r *RaceResultRepository) Upsert(result *models.RaceResult) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "driver_id"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(result).Error
	if err != nil {
		return err
	}

	stored, err := r.GetByEventAndDriver(result.EventID, result.DriverID)
	if err != nil {
		return err
	}
	*result = *stored
	return nil
}

// GetByID retrieves a race result by ID with its event, driver and team
func (r *RaceResultRepository) GetByID(id uuid.UUID) (*models.RaceResult, error) {
	var result models.RaceResult
	err := r.db.Preload("Event").Preload("Driver").Preload("Team").First(&result, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByEventAndDriver retrieves the single result a driver has in an event
func (r *RaceResultRepository) GetByEventAndDriver(eventID, driverID uuid.UUID) (*models.RaceResult, error) {
	var result models.RaceResult
	err := r.db.First(&result, "event_id = ? AND driver_id = ?", eventID, driverID).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByEventID retrieves the classification of an event ordered by final position
func (r *RaceResultRepository) GetByEventID(eventID uuid.UUID) ([]models.RaceResult, error) {
	var results []models.RaceResult
	err := r.db.Preload("Driver").Preload("Team").
		Where("event_id = ?", eventID).
		Order("final_position ASC").
		Find(&results).Error
	return results, err
}

// GetByDriverID retrieves all results of a driver across events
func (r *RaceResultRepository) GetByDriverID(driverID uuid.UUID) ([]models.RaceResult, error) {
	var results []models.RaceResult
	err := r.db.Preload("Event").Preload("Team").
		Where("driver_id = ?", driverID).
		Order("final_position ASC").
		Find(&results).Error
	return results, err
}

// CountByEventID returns the number of results stored for an event
func (r *RaceResultRepository) CountByEventID(eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.RaceResult{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}

// UpdateScoring sets the points and incident count of a result
func (r *RaceResultRepository) UpdateScoring(id uuid.UUID, pointsEarned, incidents int) error {
	res := r.db.Model(&models.RaceResult{}).Where("id = ?", id).Updates(map[string]interface{}{
		"points_earned": pointsEarned,
		"incidents":     incidents,
		"updated_at":    time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
