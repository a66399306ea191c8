package repository

import (
	"sync"

	"league-results-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	repositorySuite
	repo *TeamRepository
}

func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.repositorySuite.SetupTest()
	suite.repo = NewTeamRepository(suite.db)
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := &models.Team{Name: "Team Racing"}

	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)
	suite.NotZero(team.UpdatedAt)
}

// TestCreateDuplicateName tests the unique index on team name
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	suite.createTeam("Team Racing")

	err := suite.repo.Create(&models.Team{Name: "Team Racing"})

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *TeamRepositoryTestSuite) TestGetByIDAndName() {
	team := suite.createTeam("Team Racing")

	byID, err := suite.repo.GetByID(team.ID)
	suite.Require().NoError(err)
	suite.Equal("Team Racing", byID.Name)

	byName, err := suite.repo.GetByName("Team Racing")
	suite.Require().NoError(err)
	suite.Equal(team.ID, byName.ID)

	_, err = suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = suite.repo.GetByName("team racing")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamRepositoryTestSuite) TestGetAllOrderedByName() {
	suite.createTeam("Zeta Motorsport")
	suite.createTeam("Alpha Racing")
	suite.createTeam("Mid Pack")

	teams, total, err := suite.repo.GetAll(2, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(teams, 2)
	suite.Equal("Alpha Racing", teams[0].Name)
	suite.Equal("Mid Pack", teams[1].Name)

	teams, _, err = suite.repo.GetAll(2, 2)
	suite.Require().NoError(err)
	suite.Require().Len(teams, 1)
	suite.Equal("Zeta Motorsport", teams[0].Name)
}

func (suite *TeamRepositoryTestSuite) TestFindOrCreateByName() {
	created, isNew, err := suite.repo.FindOrCreateByName("Team Racing")
	suite.Require().NoError(err)
	suite.True(isNew)

	found, isNew, err := suite.repo.FindOrCreateByName("Team Racing")
	suite.Require().NoError(err)
	suite.False(isNew)
	suite.Equal(created.ID, found.ID)
	suite.Equal(int64(1), suite.countRows(&models.Team{}))
}

func (suite *TeamRepositoryTestSuite) TestFindOrCreateByNameConcurrent() {
	const workers = 8
	ids := make([]uuid.UUID, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			team, _, err := suite.repo.FindOrCreateByName("Shared Team")
			errs[i] = err
			if team != nil {
				ids[i] = team.ID
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		suite.NoError(errs[i])
		suite.Equal(ids[0], ids[i])
	}
	suite.Equal(int64(1), suite.countRows(&models.Team{}))
}

func (suite *TeamRepositoryTestSuite) TestUpdate() {
	team := suite.createTeam("Team Racing")
	team.Name = "Team Racing Evo"

	suite.Require().NoError(suite.repo.Update(team))

	stored, err := suite.repo.GetByID(team.ID)
	suite.Require().NoError(err)
	suite.Equal("Team Racing Evo", stored.Name)
}

// TestDeleteKeepsDrivers tests that deleting a team nulls the references to it
func (suite *TeamRepositoryTestSuite) TestDeleteKeepsDrivers() {
	team := suite.createTeam("Team Racing")
	driver := suite.createDriver("John Doe", &team.ID)
	event := suite.createEvent("Round 1")
	result := suite.factories.RaceResult.Create(event.ID, driver.ID)
	result.TeamID = &team.ID
	suite.Require().NoError(suite.db.Create(result).Error)

	suite.Require().NoError(suite.repo.Delete(team.ID))

	var storedDriver models.Driver
	suite.Require().NoError(suite.db.First(&storedDriver, "id = ?", driver.ID).Error)
	suite.Nil(storedDriver.TeamID)

	var storedResult models.RaceResult
	suite.Require().NoError(suite.db.First(&storedResult, "id = ?", result.ID).Error)
	suite.Nil(storedResult.TeamID)
}
