package service

import (
	"errors"
	"fmt"
	"time"

	"league-results-backend/internal/database/models"
	apperrors "league-results-backend/internal/errors"
	"league-results-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DriverService handles business logic for drivers. Drivers are created by result
// ingestion only.
type DriverService struct {
	repo       repository.DriverRepositoryInterface
	resultRepo repository.RaceResultRepositoryInterface
}

// NewDriverService creates a new driver service
func NewDriverService(repo repository.DriverRepositoryInterface, resultRepo repository.RaceResultRepositoryInterface) *DriverService {
	return &DriverService{
		repo:       repo,
		resultRepo: resultRepo,
	}
}

// DriverResponse represents the response for driver operations
type DriverResponse struct {
	ID          uuid.UUID  `json:"id"`
	FullName    string     `json:"full_name"`
	Nickname    *string    `json:"nickname,omitempty"`
	Nationality *string    `json:"nationality,omitempty"`
	TeamID      *uuid.UUID `json:"team_id,omitempty"`
	TeamName    string     `json:"team_name,omitempty"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

// DriverListResponse represents a paginated list of drivers
type DriverListResponse struct {
	Drivers  []DriverResponse `json:"drivers"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// DriverResultsResponse lists a driver's results across events
type DriverResultsResponse struct {
	Driver  DriverResponse       `json:"driver"`
	Results []RaceResultResponse `json:"results"`
}

// GetByID retrieves a driver by ID
func (s *DriverService) GetByID(id uuid.UUID) (*DriverResponse, error) {
	driver, err := s.getDriver(id)
	if err != nil {
		return nil, err
	}
	return toDriverResponse(driver), nil
}

// GetByFullName retrieves a driver by exact full name
func (s *DriverService) GetByFullName(fullName string) (*DriverResponse, error) {
	name, err := requireName("full_name", fullName)
	if err != nil {
		return nil, err
	}

	driver, err := s.repo.GetByFullName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return toDriverResponse(driver), nil
}

// List retrieves drivers, optionally narrowed to a team or a name search
func (s *DriverService) List(teamID *uuid.UUID, query string, page, pageSize int) (*DriverListResponse, error) {
	page, pageSize = normalizePage(page, pageSize, 20, 100)

	offset := (page - 1) * pageSize
	drivers, total, err := s.repo.List(repository.DriverFilter{TeamID: teamID, Query: query}, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	responses := make([]DriverResponse, len(drivers))
	for i := range drivers {
		responses[i] = *toDriverResponse(&drivers[i])
	}

	return &DriverListResponse{
		Drivers:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetResults lists the driver's results across all events
func (s *DriverService) GetResults(id uuid.UUID) (*DriverResultsResponse, error) {
	driver, err := s.getDriver(id)
	if err != nil {
		return nil, err
	}

	results, err := s.resultRepo.GetByDriverID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	responses := make([]RaceResultResponse, len(results))
	for i := range results {
		responses[i] = *toRaceResultResponse(&results[i], false)
	}

	return &DriverResultsResponse{
		Driver:  *toDriverResponse(driver),
		Results: responses,
	}, nil
}

// Delete deletes a driver together with the driver's race results
func (s *DriverService) Delete(id uuid.UUID) error {
	if _, err := s.getDriver(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	return nil
}

func (s *DriverService) getDriver(id uuid.UUID) (*models.Driver, error) {
	driver, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return driver, nil
}

func toDriverResponse(driver *models.Driver) *DriverResponse {
	resp := &DriverResponse{
		ID:          driver.ID,
		FullName:    driver.FullName,
		Nickname:    driver.Nickname,
		Nationality: driver.Nationality,
		TeamID:      driver.TeamID,
		CreatedAt:   driver.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   driver.UpdatedAt.Format(time.RFC3339),
	}
	if driver.Team != nil {
		resp.TeamName = driver.Team.Name
	}
	return resp
}
