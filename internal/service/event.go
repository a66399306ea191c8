package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"league-results-backend/internal/database/models"
	apperrors "league-results-backend/internal/errors"
	"league-results-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventDateLayout is the wire format of event dates
const EventDateLayout = "2006-01-02"

// EventService handles business logic for events
type EventService struct {
	repo       repository.EventRepositoryInterface
	resultRepo repository.RaceResultRepositoryInterface
	validator  *validator.Validate
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventRepositoryInterface, resultRepo repository.RaceResultRepositoryInterface, validator *validator.Validate) *EventService {
	return &EventService{
		repo:       repo,
		resultRepo: resultRepo,
		validator:  validator,
	}
}

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	TrackName string `json:"track_name" validate:"required,min=1,max=100"`
	EventDate string `json:"event_date" validate:"required,datetime=2006-01-02"`
}

// UpdateEventRequest represents the request to update an event
type UpdateEventRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	TrackName string `json:"track_name" validate:"required,min=1,max=100"`
	EventDate string `json:"event_date" validate:"required,datetime=2006-01-02"`
}

// EventResponse represents the response for event operations
type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	TrackName   string    `json:"track_name"`
	EventDate   string    `json:"event_date"`
	ResultCount *int64    `json:"result_count,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// EventListResponse represents a paginated list of events
type EventListResponse struct {
	Events   []EventResponse `json:"events"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// EventResultsResponse is the classification of one event
type EventResultsResponse struct {
	Event   EventResponse        `json:"event"`
	Results []RaceResultResponse `json:"results"`
}

// Create creates a new event
func (s *EventService) Create(req *CreateEventRequest) (*EventResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	event := &models.Event{}
	if err := applyEventFields(event, req.Name, req.TrackName, req.EventDate); err != nil {
		return nil, err
	}

	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return toEventResponse(event), nil
}

// GetByID retrieves an event with the number of stored results
func (s *EventService) GetByID(id uuid.UUID) (*EventResponse, error) {
	event, err := s.getEvent(id)
	if err != nil {
		return nil, err
	}

	count, err := s.resultRepo.CountByEventID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count results: %w", err)
	}

	resp := toEventResponse(event)
	resp.ResultCount = &count
	return resp, nil
}

// GetAll retrieves events, most recent first, with pagination
func (s *EventService) GetAll(page, pageSize int) (*EventListResponse, error) {
	page, pageSize = normalizePage(page, pageSize, 20, 100)

	offset := (page - 1) * pageSize
	events, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = *toEventResponse(&events[i])
	}

	return &EventListResponse{
		Events:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates an event
func (s *EventService) Update(id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	event, err := s.getEvent(id)
	if err != nil {
		return nil, err
	}
	if err := applyEventFields(event, req.Name, req.TrackName, req.EventDate); err != nil {
		return nil, err
	}

	if err := s.repo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return toEventResponse(event), nil
}

// Delete deletes an event together with its race results
func (s *EventService) Delete(id uuid.UUID) error {
	if _, err := s.getEvent(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// GetResults returns the event's results ordered by final position
func (s *EventService) GetResults(id uuid.UUID) (*EventResultsResponse, error) {
	event, err := s.getEvent(id)
	if err != nil {
		return nil, err
	}

	results, err := s.resultRepo.GetByEventID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	responses := make([]RaceResultResponse, len(results))
	for i := range results {
		responses[i] = *toRaceResultResponse(&results[i], false)
	}

	return &EventResultsResponse{
		Event:   *toEventResponse(event),
		Results: responses,
	}, nil
}

func (s *EventService) getEvent(id uuid.UUID) (*models.Event, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func applyEventFields(event *models.Event, name, track, date string) error {
	name, err := requireName("name", name)
	if err != nil {
		return err
	}
	track, err = requireName("track_name", track)
	if err != nil {
		return err
	}
	eventDate, err := time.Parse(EventDateLayout, strings.TrimSpace(date))
	if err != nil {
		return apperrors.NewValidationError("event_date", "must be a date formatted as "+EventDateLayout)
	}

	event.Name = name
	event.TrackName = track
	event.EventDate = eventDate
	return nil
}

func toEventResponse(event *models.Event) *EventResponse {
	return &EventResponse{
		ID:        event.ID,
		Name:      event.Name,
		TrackName: event.TrackName,
		EventDate: event.EventDate.Format(EventDateLayout),
		CreatedAt: event.CreatedAt.Format(time.RFC3339),
		UpdatedAt: event.UpdatedAt.Format(time.RFC3339),
	}
}
