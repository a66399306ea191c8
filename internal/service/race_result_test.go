package service_test

import (
	"testing"
	"time"

	"league-results-backend/internal/database/models"
	apperrors "league-results-backend/internal/errors"
	"league-results-backend/internal/mocks"
	"league-results-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RaceResultServiceTestSuite defines the test suite for RaceResultService
type RaceResultServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockResultRepo    *mocks.MockRaceResultRepositoryInterface
	raceResultService *service.RaceResultService
}

func (suite *RaceResultServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockResultRepo = mocks.NewMockRaceResultRepositoryInterface(suite.ctrl)
	suite.raceResultService = service.NewRaceResultService(suite.mockResultRepo, validator.New())
}

func (suite *RaceResultServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func intPtr(v int) *int { return &v }

func newRaceResult() *models.RaceResult {
	return &models.RaceResult{
		BaseModel:     models.BaseModel{ID: uuid.New(), UpdatedAt: time.Now()},
		EventID:       uuid.New(),
		DriverID:      uuid.New(),
		FinalPosition: 4,
		Incidents:     3,
		PointsEarned:  12,
		RawPayload:    []byte(`{"currentDriver":{"firstName":"John"}}`),
	}
}

func (suite *RaceResultServiceTestSuite) TestGetByID_IncludesPayload() {
	result := newRaceResult()
	suite.mockResultRepo.EXPECT().GetByID(result.ID).Return(result, nil)

	resp, err := suite.raceResultService.GetByID(result.ID)

	assert.NoError(suite.T(), err)
	assert.JSONEq(suite.T(), `{"currentDriver":{"firstName":"John"}}`, string(resp.RawPayload))
	assert.Nil(suite.T(), resp.BestLapMs)
}

func (suite *RaceResultServiceTestSuite) TestUpdateScoring_PointsOnly() {
	result := newRaceResult()
	suite.mockResultRepo.EXPECT().GetByID(result.ID).Return(result, nil)
	suite.mockResultRepo.EXPECT().UpdateScoring(result.ID, 25, 3).Return(nil)

	resp, err := suite.raceResultService.UpdateScoring(result.ID, &service.UpdateScoringRequest{PointsEarned: intPtr(25)})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 25, resp.PointsEarned)
	assert.Equal(suite.T(), 3, resp.Incidents)
}

func (suite *RaceResultServiceTestSuite) TestUpdateScoring_Both() {
	result := newRaceResult()
	suite.mockResultRepo.EXPECT().GetByID(result.ID).Return(result, nil)
	suite.mockResultRepo.EXPECT().UpdateScoring(result.ID, 18, 0).Return(nil)

	_, err := suite.raceResultService.UpdateScoring(result.ID, &service.UpdateScoringRequest{
		PointsEarned: intPtr(18),
		Incidents:    intPtr(0),
	})

	assert.NoError(suite.T(), err)
}

func (suite *RaceResultServiceTestSuite) TestUpdateScoring_NegativePoints() {
	_, err := suite.raceResultService.UpdateScoring(uuid.New(), &service.UpdateScoringRequest{PointsEarned: intPtr(-5)})

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "points_earned")
}

func (suite *RaceResultServiceTestSuite) TestUpdateScoring_EmptyRequest() {
	_, err := suite.raceResultService.UpdateScoring(uuid.New(), &service.UpdateScoringRequest{})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *RaceResultServiceTestSuite) TestUpdateScoring_NotFound() {
	id := uuid.New()
	suite.mockResultRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.raceResultService.UpdateScoring(id, &service.UpdateScoringRequest{Incidents: intPtr(1)})

	assert.ErrorIs(suite.T(), err, apperrors.ErrRaceResultNotFound)
}

func TestFormatLapTime(t *testing.T) {
	assert.Equal(t, "1:30.500", service.FormatLapTime(90500*time.Millisecond))
	assert.Equal(t, "0:59.009", service.FormatLapTime(59009*time.Millisecond))
	assert.Equal(t, "2:00.000", service.FormatLapTime(2*time.Minute))
}

func TestRaceResultServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RaceResultServiceTestSuite))
}
