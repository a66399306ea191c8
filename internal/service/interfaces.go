package service

import (
	"context"

	"league-results-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ResultParserInterface defines the interface for the result file parser
type ResultParserInterface interface {
	Parse(ctx context.Context, payload []byte, event *models.Event) (*ParseOutcome, error)
}

// IngestionServiceInterface defines the interface for result ingestion
type IngestionServiceInterface interface {
	Ingest(ctx context.Context, eventID uuid.UUID, payload []byte) (*IngestionResponse, error)
}

// StandingsServiceInterface defines the interface for championship standings
type StandingsServiceInterface interface {
	ComputeStandings() (*StandingsResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	GetAll(page, pageSize int) (*TeamListResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
}

// EventServiceInterface defines the interface for event service
type EventServiceInterface interface {
	Create(req *CreateEventRequest) (*EventResponse, error)
	GetByID(id uuid.UUID) (*EventResponse, error)
	GetAll(page, pageSize int) (*EventListResponse, error)
	Update(id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error)
	Delete(id uuid.UUID) error
	GetResults(id uuid.UUID) (*EventResultsResponse, error)
}

// DriverServiceInterface defines the interface for driver service
type DriverServiceInterface interface {
	GetByID(id uuid.UUID) (*DriverResponse, error)
	GetByFullName(fullName string) (*DriverResponse, error)
	List(teamID *uuid.UUID, query string, page, pageSize int) (*DriverListResponse, error)
	GetResults(id uuid.UUID) (*DriverResultsResponse, error)
	Delete(id uuid.UUID) error
}

// RaceResultServiceInterface defines the interface for race result edits
type RaceResultServiceInterface interface {
	GetByID(id uuid.UUID) (*RaceResultResponse, error)
	UpdateScoring(id uuid.UUID, req *UpdateScoringRequest) (*RaceResultResponse, error)
}

var (
	_ ResultParserInterface      = (*ResultParser)(nil)
	_ IngestionServiceInterface  = (*IngestionService)(nil)
	_ StandingsServiceInterface  = (*StandingsService)(nil)
	_ TeamServiceInterface       = (*TeamService)(nil)
	_ EventServiceInterface      = (*EventService)(nil)
	_ DriverServiceInterface     = (*DriverService)(nil)
	_ RaceResultServiceInterface = (*RaceResultService)(nil)
)
