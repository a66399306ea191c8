package repository

import (
	"strings"
	"time"

	"league-results-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DriverFilter narrows driver listings
type DriverFilter struct {
	TeamID *uuid.UUID
	Query  string // matches full name or nickname, case-insensitive
}

// DriverRepository handles database operations for drivers
type DriverRepository struct {
	db *gorm.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

// GetByID retrieves a driver by ID with its team
func (r *DriverRepository) GetByID(id uuid.UUID) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.Preload("Team").First(&driver, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

// GetByFullName retrieves a driver by the unique full name
func (r *DriverRepository) GetByFullName(fullName string) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.Preload("Team").First(&driver, "full_name = ?", fullName).Error
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

// List retrieves drivers matching filter, ordered by full name
func (r *DriverRepository) List(filter DriverFilter, limit, offset int) ([]models.Driver, int64, error) {
	var drivers []models.Driver
	var total int64

	query := r.db.Model(&models.Driver{})
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(COALESCE(nickname, '')) LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Team").Order("full_name ASC").Limit(limit).Offset(offset).Find(&drivers).Error
	if err != nil {
		return nil, 0, err
	}

	return drivers, total, nil
}

// FindOrCreateByFullName returns the driver with the given full name, inserting it when
// missing. See TeamRepository.FindOrCreateByName for the concurrency contract.
func (r *DriverRepository) FindOrCreateByFullName(fullName string) (*models.Driver, bool, error) {
	driver := models.Driver{FullName: fullName}
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "full_name"}},
		DoNothing: true,
	}).Create(&driver)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return &driver, true, nil
	}

	var existing models.Driver
	if err := r.db.First(&existing, "full_name = ?", fullName).Error; err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

// AssignTeamIfUnset sets the driver's team only when it has none. The first team a
// driver is seen with sticks; the bool reports whether the assignment happened.
func (r *DriverRepository) AssignTeamIfUnset(driverID, teamID uuid.UUID) (bool, error) {
	res := r.db.Model(&models.Driver{}).
		Where("id = ? AND team_id IS NULL", driverID).
		Updates(map[string]interface{}{"team_id": teamID, "updated_at": time.Now()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SetNicknameIfUnset fills the nickname only when it is empty
func (r *DriverRepository) SetNicknameIfUnset(driverID uuid.UUID, nickname string) (bool, error) {
	res := r.db.Model(&models.Driver{}).
		Where("id = ? AND (nickname IS NULL OR nickname = '')", driverID).
		Updates(map[string]interface{}{"nickname": nickname, "updated_at": time.Now()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Delete deletes a driver together with its race results
func (r *DriverRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Driver{}, "id = ?", id).Error
}
