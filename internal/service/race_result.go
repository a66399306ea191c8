package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"league-results-backend/internal/database/models"
	apperrors "league-results-backend/internal/errors"
	"league-results-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RaceResultService handles manual edits of stored race results
type RaceResultService struct {
	repo      repository.RaceResultRepositoryInterface
	validator *validator.Validate
}

// NewRaceResultService creates a new race result service
func NewRaceResultService(repo repository.RaceResultRepositoryInterface, validator *validator.Validate) *RaceResultService {
	return &RaceResultService{
		repo:      repo,
		validator: validator,
	}
}

// UpdateScoringRequest sets points and incidents. Omitted fields keep their value.
type UpdateScoringRequest struct {
	PointsEarned *int `json:"points_earned,omitempty" validate:"omitempty,min=0"`
	Incidents    *int `json:"incidents,omitempty" validate:"omitempty,min=0"`
}

// RaceResultResponse represents a stored race result
type RaceResultResponse struct {
	ID            uuid.UUID       `json:"id"`
	EventID       uuid.UUID       `json:"event_id"`
	DriverID      uuid.UUID       `json:"driver_id"`
	DriverName    string          `json:"driver_name,omitempty"`
	TeamID        *uuid.UUID      `json:"team_id,omitempty"`
	TeamName      string          `json:"team_name,omitempty"`
	EventName     string          `json:"event_name,omitempty"`
	CarModel      string          `json:"car_model"`
	FinalPosition int             `json:"final_position"`
	BestLapMs     *int64          `json:"best_lap_ms,omitempty"`
	BestLapTime   string          `json:"best_lap_time,omitempty"`
	Incidents     int             `json:"incidents"`
	PointsEarned  int             `json:"points_earned"`
	RawPayload    json.RawMessage `json:"raw_payload,omitempty"`
	UpdatedAt     string          `json:"updated_at"`
}

// GetByID retrieves a race result including its stored leaderboard fragment
func (s *RaceResultService) GetByID(id uuid.UUID) (*RaceResultResponse, error) {
	result, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRaceResultNotFound
		}
		return nil, fmt.Errorf("failed to get race result: %w", err)
	}

	return toRaceResultResponse(result, true), nil
}

// UpdateScoring sets the points and incidents of a race result
func (s *RaceResultService) UpdateScoring(id uuid.UUID, req *UpdateScoringRequest) (*RaceResultResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if req.PointsEarned == nil && req.Incidents == nil {
		return nil, apperrors.NewValidationError("", "points_earned or incidents is required")
	}

	result, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRaceResultNotFound
		}
		return nil, fmt.Errorf("failed to get race result: %w", err)
	}

	points, incidents := result.PointsEarned, result.Incidents
	if req.PointsEarned != nil {
		points = *req.PointsEarned
	}
	if req.Incidents != nil {
		incidents = *req.Incidents
	}

	if err := s.repo.UpdateScoring(id, points, incidents); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRaceResultNotFound
		}
		return nil, fmt.Errorf("failed to update race result: %w", err)
	}

	result.PointsEarned = points
	result.Incidents = incidents
	return toRaceResultResponse(result, false), nil
}

func toRaceResultResponse(result *models.RaceResult, withPayload bool) *RaceResultResponse {
	resp := &RaceResultResponse{
		ID:            result.ID,
		EventID:       result.EventID,
		DriverID:      result.DriverID,
		TeamID:        result.TeamID,
		CarModel:      result.CarModel,
		FinalPosition: result.FinalPosition,
		Incidents:     result.Incidents,
		PointsEarned:  result.PointsEarned,
		UpdatedAt:     result.UpdatedAt.Format(time.RFC3339),
	}
	if result.Driver != nil {
		resp.DriverName = result.Driver.FullName
	}
	if result.Team != nil {
		resp.TeamName = result.Team.Name
	}
	if result.Event != nil {
		resp.EventName = result.Event.Name
	}
	if result.BestLapTime != nil {
		ms := result.BestLapTime.Milliseconds()
		resp.BestLapMs = &ms
		resp.BestLapTime = FormatLapTime(*result.BestLapTime)
	}
	if withPayload && len(result.RawPayload) > 0 {
		resp.RawPayload = json.RawMessage(result.RawPayload)
	}
	return resp
}

// FormatLapTime renders a lap as m:ss.mmm
func FormatLapTime(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, (ms/1000)%60, ms%1000)
}
