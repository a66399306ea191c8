package repository

// StandingsRepositoryTestSuite tests the championship aggregation
type StandingsRepositoryTestSuite struct {
	repositorySuite
	repo *StandingsRepository
}

func (suite *StandingsRepositoryTestSuite) SetupTest() {
	suite.repositorySuite.SetupTest()
	suite.repo = NewStandingsRepository(suite.db)
}

func (suite *StandingsRepositoryTestSuite) TestEmpty() {
	rows, err := suite.repo.GetDriverStandings()

	suite.NoError(err)
	suite.Empty(rows)
}

func (suite *StandingsRepositoryTestSuite) TestGetDriverStandings() {
	team := suite.createTeam("Team Racing")
	john := suite.createDriver("John Doe", &team.ID)
	jane := suite.createDriver("Jane Roe", nil)
	adam := suite.createDriver("Adam Ant", nil)
	zero := suite.createDriver("Zero Points", nil)
	suite.createDriver("No Results", nil)

	round1 := suite.createEvent("Round 1")
	round2 := suite.createEvent("Round 2")
	suite.createResult(round1.ID, john.ID, 1, 25)
	suite.createResult(round2.ID, john.ID, 2, 18)
	suite.createResult(round1.ID, jane.ID, 2, 18)
	suite.createResult(round2.ID, jane.ID, 1, 25)
	suite.createResult(round1.ID, adam.ID, 3, 15)
	suite.createResult(round1.ID, zero.ID, 4, 0)

	rows, err := suite.repo.GetDriverStandings()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)

	// equal totals fall back to full name
	suite.Equal("Jane Roe", rows[0].FullName)
	suite.Equal(int64(43), rows[0].TotalPoints)
	suite.Equal(int64(2), rows[0].Events)
	suite.Nil(rows[0].TeamName)

	suite.Equal("John Doe", rows[1].FullName)
	suite.Equal(john.ID, rows[1].DriverID)
	suite.Require().NotNil(rows[1].TeamName)
	suite.Equal("Team Racing", *rows[1].TeamName)

	suite.Equal("Adam Ant", rows[2].FullName)
	suite.Equal(int64(15), rows[2].TotalPoints)
	suite.Equal(int64(1), rows[2].Events)
}
