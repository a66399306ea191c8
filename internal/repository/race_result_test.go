package repository

import (
	"encoding/json"
	"time"

	"league-results-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RaceResultRepositoryTestSuite tests the RaceResultRepository
type RaceResultRepositoryTestSuite struct {
	repositorySuite
	repo *RaceResultRepository
}

func (suite *RaceResultRepositoryTestSuite) SetupTest() {
	suite.repositorySuite.SetupTest()
	suite.repo = NewRaceResultRepository(suite.db)
}

func rawEntry(raceNumber int) datatypes.JSON {
	raw, _ := json.Marshal(map[string]interface{}{"car": map[string]interface{}{"raceNumber": raceNumber}})
	return datatypes.JSON(raw)
}

// TestUpsertUpdatesExistingRow tests that a second upsert for the same event and driver
// keeps the row identity and overwrites the ingested columns
func (suite *RaceResultRepositoryTestSuite) TestUpsertUpdatesExistingRow() {
	team := suite.createTeam("Team Racing")
	driver := suite.createDriver("John Doe", nil)
	event := suite.createEvent("Round 1")
	lap := 90500 * time.Millisecond

	first := &models.RaceResult{
		EventID:       event.ID,
		DriverID:      driver.ID,
		CarModel:      "Audi R8 LMS",
		FinalPosition: 3,
		RawPayload:    rawEntry(7),
	}
	suite.Require().NoError(suite.repo.Upsert(first))
	suite.NotEqual(uuid.Nil, first.ID)

	second := &models.RaceResult{
		EventID:       event.ID,
		DriverID:      driver.ID,
		TeamID:        &team.ID,
		CarModel:      "Porsche 991 GT3 R",
		FinalPosition: 1,
		BestLapTime:   &lap,
		RawPayload:    rawEntry(12),
	}
	suite.Require().NoError(suite.repo.Upsert(second))

	suite.Equal(first.ID, second.ID)
	suite.Equal(int64(1), suite.countRows(&models.RaceResult{}))

	stored, err := suite.repo.GetByEventAndDriver(event.ID, driver.ID)
	suite.Require().NoError(err)
	suite.Equal("Porsche 991 GT3 R", stored.CarModel)
	suite.Equal(1, stored.FinalPosition)
	suite.Require().NotNil(stored.TeamID)
	suite.Equal(team.ID, *stored.TeamID)
	suite.Require().NotNil(stored.BestLapTime)
	suite.Equal(lap, *stored.BestLapTime)
	suite.JSONEq(`{"car":{"raceNumber":12}}`, string(stored.RawPayload))
}

// TestUpsertResetsScoring tests that re-ingesting a result clears manually entered scoring
func (suite *RaceResultRepositoryTestSuite) TestUpsertResetsScoring() {
	driver := suite.createDriver("John Doe", nil)
	event := suite.createEvent("Round 1")
	result := &models.RaceResult{EventID: event.ID, DriverID: driver.ID, FinalPosition: 1, RawPayload: rawEntry(12)}
	suite.Require().NoError(suite.repo.Upsert(result))
	suite.Require().NoError(suite.repo.UpdateScoring(result.ID, 25, 2))

	again := &models.RaceResult{EventID: event.ID, DriverID: driver.ID, FinalPosition: 1, RawPayload: rawEntry(12)}
	suite.Require().NoError(suite.repo.Upsert(again))

	suite.Equal(0, again.PointsEarned)
	suite.Equal(0, again.Incidents)
}

func (suite *RaceResultRepositoryTestSuite) TestUpsertUnknownEvent() {
	driver := suite.createDriver("John Doe", nil)

	err := suite.repo.Upsert(&models.RaceResult{EventID: uuid.New(), DriverID: driver.ID, RawPayload: rawEntry(1)})

	suite.Error(err)
	suite.Equal(int64(0), suite.countRows(&models.RaceResult{}))
}

func (suite *RaceResultRepositoryTestSuite) TestGetByIDPreloadsRelations() {
	team := suite.createTeam("Team Racing")
	driver := suite.createDriver("John Doe", &team.ID)
	event := suite.createEvent("Round 1")
	result := suite.factories.RaceResult.Create(event.ID, driver.ID)
	result.TeamID = &team.ID
	suite.Require().NoError(suite.db.Create(result).Error)

	stored, err := suite.repo.GetByID(result.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.Event)
	suite.Require().NotNil(stored.Driver)
	suite.Require().NotNil(stored.Team)
	suite.Equal("Round 1", stored.Event.Name)
	suite.Equal("John Doe", stored.Driver.FullName)
	suite.Equal("Team Racing", stored.Team.Name)

	_, err = suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *RaceResultRepositoryTestSuite) TestGetByEventIDOrderedByPosition() {
	event := suite.createEvent("Round 1")
	other := suite.createEvent("Round 2")
	third := suite.createDriver("Third Driver", nil)
	winner := suite.createDriver("Winner Driver", nil)
	suite.createResult(event.ID, third.ID, 3, 15)
	suite.createResult(event.ID, winner.ID, 1, 25)
	suite.createResult(other.ID, winner.ID, 2, 18)

	results, err := suite.repo.GetByEventID(event.ID)
	suite.Require().NoError(err)
	suite.Require().Len(results, 2)
	suite.Equal(winner.ID, results[0].DriverID)
	suite.Require().NotNil(results[0].Driver)
	suite.Equal("Winner Driver", results[0].Driver.FullName)
	suite.Equal(3, results[1].FinalPosition)

	count, err := suite.repo.CountByEventID(event.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *RaceResultRepositoryTestSuite) TestGetByDriverID() {
	driver := suite.createDriver("John Doe", nil)
	round1 := suite.createEvent("Round 1")
	round2 := suite.createEvent("Round 2")
	suite.createResult(round1.ID, driver.ID, 4, 12)
	suite.createResult(round2.ID, driver.ID, 1, 25)

	results, err := suite.repo.GetByDriverID(driver.ID)
	suite.Require().NoError(err)
	suite.Require().Len(results, 2)
	suite.Equal(1, results[0].FinalPosition)
	suite.Require().NotNil(results[0].Event)
	suite.Equal("Round 2", results[0].Event.Name)
}

func (suite *RaceResultRepositoryTestSuite) TestUpdateScoring() {
	driver := suite.createDriver("John Doe", nil)
	event := suite.createEvent("Round 1")
	result := suite.createResult(event.ID, driver.ID, 1, 0)

	suite.Require().NoError(suite.repo.UpdateScoring(result.ID, 25, 1))

	stored, err := suite.repo.GetByEventAndDriver(event.ID, driver.ID)
	suite.Require().NoError(err)
	suite.Equal(25, stored.PointsEarned)
	suite.Equal(1, stored.Incidents)

	suite.ErrorIs(suite.repo.UpdateScoring(uuid.New(), 10, 0), gorm.ErrRecordNotFound)
}
