package repository

import (
	"league-results-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	FindOrCreateByName(name string) (*models.Team, bool, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// DriverRepositoryInterface defines the interface for driver repository operations
type DriverRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Driver, error)
	GetByFullName(fullName string) (*models.Driver, error)
	List(filter DriverFilter, limit, offset int) ([]models.Driver, int64, error)
	FindOrCreateByFullName(fullName string) (*models.Driver, bool, error)
	AssignTeamIfUnset(driverID, teamID uuid.UUID) (bool, error)
	SetNicknameIfUnset(driverID uuid.UUID, nickname string) (bool, error)
	Delete(id uuid.UUID) error
}

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	Create(event *models.Event) error
	GetByID(id uuid.UUID) (*models.Event, error)
	GetAll(limit, offset int) ([]models.Event, int64, error)
	Update(event *models.Event) error
	Delete(id uuid.UUID) error
}

// RaceResultRepositoryInterface defines the interface for race result repository operations
type RaceResultRepositoryInterface interface {
	Upsert(result *models.RaceResult) error
	GetByID(id uuid.UUID) (*models.RaceResult, error)
	GetByEventAndDriver(eventID, driverID uuid.UUID) (*models.RaceResult, error)
	GetByEventID(eventID uuid.UUID) ([]models.RaceResult, error)
	GetByDriverID(driverID uuid.UUID) ([]models.RaceResult, error)
	CountByEventID(eventID uuid.UUID) (int64, error)
	UpdateScoring(id uuid.UUID, pointsEarned, incidents int) error
}

// StandingsRepositoryInterface defines the interface for championship aggregation queries
type StandingsRepositoryInterface interface {
	GetDriverStandings() ([]DriverStandingRow, error)
}
