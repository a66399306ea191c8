package repository

import (
	"time"

	"league-results-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepositoryTestSuite tests the EventRepository
type EventRepositoryTestSuite struct {
	repositorySuite
	repo *EventRepository
}

func (suite *EventRepositoryTestSuite) SetupTest() {
	suite.repositorySuite.SetupTest()
	suite.repo = NewEventRepository(suite.db)
}

func (suite *EventRepositoryTestSuite) TestCreateAndGet() {
	event := &models.Event{
		Name:      "Round 1",
		TrackName: "Monza",
		EventDate: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	suite.Require().NoError(suite.repo.Create(event))
	suite.NotEqual(uuid.Nil, event.ID)

	stored, err := suite.repo.GetByID(event.ID)
	suite.Require().NoError(err)
	suite.Equal("Round 1", stored.Name)
	suite.Equal("2025-03-09", stored.EventDate.Format("2006-01-02"))

	_, err = suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllMostRecentFirst tests ordering by date, then name
func (suite *EventRepositoryTestSuite) TestGetAllMostRecentFirst() {
	dates := map[string]time.Time{
		"Round 1":  time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
		"Round 2":  time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC),
		"Round 2B": time.Date(2025, 4, 6, 0, 0, 0, 0, time.UTC),
	}
	for name, date := range dates {
		event := suite.factories.Event.WithName(name, "Spa")
		event.EventDate = date
		suite.Require().NoError(suite.repo.Create(event))
	}

	events, total, err := suite.repo.GetAll(10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(events, 3)
	suite.Equal("Round 2", events[0].Name)
	suite.Equal("Round 2B", events[1].Name)
	suite.Equal("Round 1", events[2].Name)
}

func (suite *EventRepositoryTestSuite) TestUpdate() {
	event := suite.createEvent("Round 1")
	event.TrackName = "Imola"

	suite.Require().NoError(suite.repo.Update(event))

	stored, err := suite.repo.GetByID(event.ID)
	suite.Require().NoError(err)
	suite.Equal("Imola", stored.TrackName)
}

// TestDeleteCascadesResults tests that deleting an event removes only its results
func (suite *EventRepositoryTestSuite) TestDeleteCascadesResults() {
	driver := suite.createDriver("John Doe", nil)
	round1 := suite.createEvent("Round 1")
	round2 := suite.createEvent("Round 2")
	suite.createResult(round1.ID, driver.ID, 1, 25)
	kept := suite.createResult(round2.ID, driver.ID, 3, 15)

	suite.Require().NoError(suite.repo.Delete(round1.ID))

	var results []models.RaceResult
	suite.Require().NoError(suite.db.Find(&results).Error)
	suite.Require().Len(results, 1)
	suite.Equal(kept.ID, results[0].ID)
	suite.Equal(int64(1), suite.countRows(&models.Driver{}))
}
