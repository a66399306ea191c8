package testutils

import (
	"encoding/json"
	"time"

	"league-results-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique name
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Team " + uuid.NewString()[:8],
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// DriverFactory provides methods to create test Driver data
type DriverFactory struct{}

// NewDriverFactory creates a new DriverFactory
func NewDriverFactory() *DriverFactory {
	return &DriverFactory{}
}

// Create creates a test Driver with a unique full name
func (f *DriverFactory) Create() *models.Driver {
	return &models.Driver{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName: "Driver " + uuid.NewString()[:8],
	}
}

// WithName sets a custom full name for the driver
func (f *DriverFactory) WithName(fullName string) *models.Driver {
	driver := f.Create()
	driver.FullName = fullName
	return driver
}

// WithTeam sets the team of the driver
func (f *DriverFactory) WithTeam(fullName string, teamID uuid.UUID) *models.Driver {
	driver := f.WithName(fullName)
	driver.TeamID = &teamID
	return driver
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates a test Event dated today
func (f *EventFactory) Create() *models.Event {
	return &models.Event{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "Test Race",
		TrackName: "Test Track",
		EventDate: time.Now().UTC().Truncate(24 * time.Hour),
	}
}

// WithName sets custom event and track names
func (f *EventFactory) WithName(name, track string) *models.Event {
	event := f.Create()
	event.Name = name
	event.TrackName = track
	return event
}

// RaceResultFactory provides methods to create test RaceResult data
type RaceResultFactory struct{}

// NewRaceResultFactory creates a new RaceResultFactory
func NewRaceResultFactory() *RaceResultFactory {
	return &RaceResultFactory{}
}

// Create creates a test RaceResult for the event and driver
func (f *RaceResultFactory) Create(eventID, driverID uuid.UUID) *models.RaceResult {
	raw, _ := json.Marshal(map[string]interface{}{"source": "factory"})
	return &models.RaceResult{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EventID:       eventID,
		DriverID:      driverID,
		CarModel:      "Porsche 991 GT3 R",
		FinalPosition: 1,
		RawPayload:    datatypes.JSON(raw),
	}
}

// WithPoints creates a result with the given position and points
func (f *RaceResultFactory) WithPoints(eventID, driverID uuid.UUID, position, points int) *models.RaceResult {
	result := f.Create(eventID, driverID)
	result.FinalPosition = position
	result.PointsEarned = points
	return result
}

// FactorySet holds all factories for easy access
type FactorySet struct {
	Team       *TeamFactory
	Driver     *DriverFactory
	Event      *EventFactory
	RaceResult *RaceResultFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:       NewTeamFactory(),
		Driver:     NewDriverFactory(),
		Event:      NewEventFactory(),
		RaceResult: NewRaceResultFactory(),
	}
}
