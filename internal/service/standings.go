package service

import (
	"fmt"

	"league-results-backend/internal/metrics"
	"league-results-backend/internal/repository"

	"github.com/google/uuid"
)

// StandingResponse is one line of the drivers' championship
type StandingResponse struct {
	Rank        int       `json:"rank"`
	DriverID    uuid.UUID `json:"driver_id"`
	DisplayName string    `json:"display_name"`
	Nickname    *string   `json:"nickname,omitempty"`
	TeamName    *string   `json:"team_name,omitempty"`
	TotalPoints int64     `json:"total_points"`
	Events      int64     `json:"events"`
}

// StandingsResponse is the full championship table
type StandingsResponse struct {
	Standings []StandingResponse `json:"standings"`
	Total     int                `json:"total"`
}

// StandingsService computes championship standings
type StandingsService struct {
	repo    repository.StandingsRepositoryInterface
	metrics *metrics.Recorder
}

// NewStandingsService creates a new standings service. recorder may be nil.
func NewStandingsService(repo repository.StandingsRepositoryInterface, recorder *metrics.Recorder) *StandingsService {
	return &StandingsService{
		repo:    repo,
		metrics: recorder,
	}
}

// ComputeStandings sums every driver's points over all events, drops drivers with no
// points and orders the rest by total points, then by name. Ranks are 1-based and
// follow that order.
func (s *StandingsService) ComputeStandings() (*StandingsResponse, error) {
	rows, err := s.repo.GetDriverStandings()
	if err != nil {
		return nil, fmt.Errorf("failed to compute standings: %w", err)
	}
	s.metrics.RecordStandings()

	standings := make([]StandingResponse, 0, len(rows))
	for _, row := range rows {
		if row.TotalPoints <= 0 {
			continue
		}
		standings = append(standings, StandingResponse{
			Rank:        len(standings) + 1,
			DriverID:    row.DriverID,
			DisplayName: row.FullName,
			Nickname:    row.Nickname,
			TeamName:    row.TeamName,
			TotalPoints: row.TotalPoints,
			Events:      row.Events,
		})
	}

	return &StandingsResponse{
		Standings: standings,
		Total:     len(standings),
	}, nil
}
