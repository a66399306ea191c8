package repository

import (
	"league-results-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DriverRepositoryTestSuite tests the DriverRepository
type DriverRepositoryTestSuite struct {
	repositorySuite
	repo *DriverRepository
}

func (suite *DriverRepositoryTestSuite) SetupTest() {
	suite.repositorySuite.SetupTest()
	suite.repo = NewDriverRepository(suite.db)
}

func (suite *DriverRepositoryTestSuite) TestGetByIDPreloadsTeam() {
	team := suite.createTeam("Team Racing")
	driver := suite.createDriver("John Doe", &team.ID)

	stored, err := suite.repo.GetByID(driver.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.Team)
	suite.Equal("Team Racing", stored.Team.Name)

	_, err = suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *DriverRepositoryTestSuite) TestGetByFullName() {
	driver := suite.createDriver("John Doe", nil)

	stored, err := suite.repo.GetByFullName("John Doe")
	suite.Require().NoError(err)
	suite.Equal(driver.ID, stored.ID)
	suite.Nil(stored.Team)

	_, err = suite.repo.GetByFullName("Jane Roe")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *DriverRepositoryTestSuite) TestListFilters() {
	team := suite.createTeam("Team Racing")
	suite.createDriver("John Doe", &team.ID)
	suite.createDriver("Jane Roe", nil)
	nicknamed := suite.createDriver("Max Power", nil)
	suite.Require().NoError(suite.db.Model(nicknamed).Update("nickname", "DOEFAN").Error)

	all, total, err := suite.repo.List(DriverFilter{}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(all, 3)
	suite.Equal("Jane Roe", all[0].FullName)
	suite.Equal("John Doe", all[1].FullName)

	byTeam, total, err := suite.repo.List(DriverFilter{TeamID: &team.ID}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("John Doe", byTeam[0].FullName)
	suite.Require().NotNil(byTeam[0].Team)

	byQuery, total, err := suite.repo.List(DriverFilter{Query: "  doe "}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal("John Doe", byQuery[0].FullName)
	suite.Equal("Max Power", byQuery[1].FullName)
}

func (suite *DriverRepositoryTestSuite) TestFindOrCreateByFullName() {
	created, isNew, err := suite.repo.FindOrCreateByFullName("John Doe")
	suite.Require().NoError(err)
	suite.True(isNew)

	found, isNew, err := suite.repo.FindOrCreateByFullName("John Doe")
	suite.Require().NoError(err)
	suite.False(isNew)
	suite.Equal(created.ID, found.ID)
	suite.Equal(int64(1), suite.countRows(&models.Driver{}))
}

// TestAssignTeamIfUnset tests that the first team a driver is seen with sticks
func (suite *DriverRepositoryTestSuite) TestAssignTeamIfUnset() {
	first := suite.createTeam("Team Racing")
	second := suite.createTeam("Other Team")
	driver := suite.createDriver("John Doe", nil)

	assigned, err := suite.repo.AssignTeamIfUnset(driver.ID, first.ID)
	suite.Require().NoError(err)
	suite.True(assigned)

	assigned, err = suite.repo.AssignTeamIfUnset(driver.ID, second.ID)
	suite.Require().NoError(err)
	suite.False(assigned)

	stored, err := suite.repo.GetByID(driver.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.TeamID)
	suite.Equal(first.ID, *stored.TeamID)
}

func (suite *DriverRepositoryTestSuite) TestSetNicknameIfUnset() {
	driver := suite.createDriver("John Doe", nil)

	set, err := suite.repo.SetNicknameIfUnset(driver.ID, "DOE")
	suite.Require().NoError(err)
	suite.True(set)

	set, err = suite.repo.SetNicknameIfUnset(driver.ID, "JDO")
	suite.Require().NoError(err)
	suite.False(set)

	stored, err := suite.repo.GetByID(driver.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.Nickname)
	suite.Equal("DOE", *stored.Nickname)
}

// TestDeleteCascadesResults tests that a driver's results are removed with the driver
func (suite *DriverRepositoryTestSuite) TestDeleteCascadesResults() {
	driver := suite.createDriver("John Doe", nil)
	other := suite.createDriver("Jane Roe", nil)
	event := suite.createEvent("Round 1")
	suite.createResult(event.ID, driver.ID, 1, 25)
	suite.createResult(event.ID, other.ID, 2, 18)

	suite.Require().NoError(suite.repo.Delete(driver.ID))

	suite.Equal(int64(1), suite.countRows(&models.Driver{}))
	suite.Equal(int64(1), suite.countRows(&models.RaceResult{}))
	suite.Equal(int64(1), suite.countRows(&models.Event{}))
}
