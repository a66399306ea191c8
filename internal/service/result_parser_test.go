package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"league-results-backend/internal/database/models"
	apperrors "league-results-backend/internal/errors"
	"league-results-backend/internal/repository"
	"league-results-backend/internal/service"
	"league-results-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"golang.org/x/text/encoding/unicode"
	"gorm.io/gorm"
)

const scenarioAPayload = `{"sessionResult":{"leaderBoardLines":[{"currentDriver":{"firstName":"John","lastName":"Doe"},"car":{"carModel":"Porsche 991 GT3 R","teamName":"Team Racing","raceNumber":1},"timing":{"bestLap":90500}}]}}`

// leaderboardLine builds one simulator leaderboard entry
func leaderboardLine(first, last, team, car string, raceNumber, bestLap int) map[string]interface{} {
	return map[string]interface{}{
		"currentDriver": map[string]interface{}{"firstName": first, "lastName": last},
		"car":           map[string]interface{}{"carModel": car, "teamName": team, "raceNumber": raceNumber},
		"timing":        map[string]interface{}{"bestLap": bestLap},
	}
}

func resultFile(lines ...interface{}) []byte {
	doc := map[string]interface{}{
		"sessionType": "R",
		"trackName":   "monza",
		"sessionResult": map[string]interface{}{
			"leaderBoardLines": lines,
		},
	}
	b, _ := json.Marshal(doc)
	return b
}

type ResultParserTestSuite struct {
	suite.Suite
	db         *gorm.DB
	teamRepo   *repository.TeamRepository
	driverRepo *repository.DriverRepository
	resultRepo *repository.RaceResultRepository
	parser     *service.ResultParser
	event      *models.Event
	factories  *testutils.FactorySet
}

func (suite *ResultParserTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.teamRepo = repository.NewTeamRepository(suite.db)
	suite.driverRepo = repository.NewDriverRepository(suite.db)
	suite.resultRepo = repository.NewRaceResultRepository(suite.db)
	suite.parser = service.NewResultParser(suite.teamRepo, suite.driverRepo, suite.resultRepo, service.RaceNumberFallbackResolver{}, 3)
	suite.factories = testutils.NewFactorySet()

	suite.event = suite.factories.Event.WithName("Round 1", "Monza")
	suite.Require().NoError(suite.db.Create(suite.event).Error)
}

func (suite *ResultParserTestSuite) count(model interface{}) int64 {
	var n int64
	suite.Require().NoError(suite.db.Model(model).Count(&n).Error)
	return n
}

func (suite *ResultParserTestSuite) parse(payload []byte) *service.ParseOutcome {
	outcome, err := suite.parser.Parse(context.Background(), payload, suite.event)
	suite.Require().NoError(err)
	return outcome
}

func (suite *ResultParserTestSuite) TestScenarioA_SingleEntry() {
	outcome := suite.parse([]byte(scenarioAPayload))

	suite.Equal(1, outcome.ProcessedCount)
	suite.Equal(1, outcome.Upserted)

	driver, err := suite.driverRepo.GetByFullName("John Doe")
	suite.Require().NoError(err)
	team, err := suite.teamRepo.GetByName("Team Racing")
	suite.Require().NoError(err)
	suite.Require().NotNil(driver.TeamID)
	suite.Equal(team.ID, *driver.TeamID)

	result, err := suite.resultRepo.GetByEventAndDriver(suite.event.ID, driver.ID)
	suite.Require().NoError(err)
	suite.Equal("Porsche 991 GT3 R", result.CarModel)
	suite.Equal(1, result.FinalPosition)
	suite.Require().NotNil(result.BestLapTime)
	suite.Equal(90500*time.Millisecond, *result.BestLapTime)
	suite.Equal(0, result.Incidents)
	suite.Equal(0, result.PointsEarned)
	suite.Require().NotNil(result.TeamID)
	suite.Equal(team.ID, *result.TeamID)

	var lines map[string]interface{}
	suite.Require().NoError(json.Unmarshal(result.RawPayload, &lines))
	suite.Equal("Team Racing", lines["car"].(map[string]interface{})["teamName"])
}

func (suite *ResultParserTestSuite) TestIdempotentReingestion() {
	payload := resultFile(
		leaderboardLine("John", "Doe", "Team Racing", "Porsche 991 GT3 R", 1, 90500),
		leaderboardLine("Jane", "Roe", "Blue Bulls", "Ferrari 488 GT3", 2, 91000),
	)

	first := suite.parse(payload)
	second := suite.parse(payload)

	suite.Equal(2, first.ProcessedCount)
	suite.Equal(2, second.ProcessedCount)
	suite.Equal(int64(2), suite.count(&models.RaceResult{}))
	suite.Equal(int64(2), suite.count(&models.Driver{}))
	suite.Equal(int64(2), suite.count(&models.Team{}))
}

func (suite *ResultParserTestSuite) TestReingestionKeepsRowAndRefreshesFields() {
	suite.parse(resultFile(leaderboardLine("John", "Doe", "Team Racing", "Porsche 991 GT3 R", 7, 90500)))
	driver, err := suite.driverRepo.GetByFullName("John Doe")
	suite.Require().NoError(err)
	before, err := suite.resultRepo.GetByEventAndDriver(suite.event.ID, driver.ID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.resultRepo.UpdateScoring(before.ID, 25, 2))

	suite.parse(resultFile(leaderboardLine("John", "Doe", "Team Racing", "Audi R8 LMS", 3, 0)))

	after, err := suite.resultRepo.GetByEventAndDriver(suite.event.ID, driver.ID)
	suite.Require().NoError(err)
	suite.Equal(before.ID, after.ID)
	suite.Equal("Audi R8 LMS", after.CarModel)
	suite.Equal(3, after.FinalPosition)
	suite.Nil(after.BestLapTime)
	// re-ingestion stores the parser's values, including zero points
	suite.Equal(0, after.PointsEarned)
	suite.Equal(0, after.Incidents)
}

func (suite *ResultParserTestSuite) TestStickyTeamAssignment() {
	suite.parse(resultFile(leaderboardLine("John", "Doe", "Team Racing", "Porsche 991 GT3 R", 1, 90500)))

	other := suite.factories.Event.WithName("Round 2", "Spa")
	suite.Require().NoError(suite.db.Create(other).Error)
	_, err := suite.parser.Parse(context.Background(),
		resultFile(leaderboardLine("John", "Doe", "Other Team", "Porsche 991 GT3 R", 1, 90500)), other)
	suite.Require().NoError(err)

	driver, err := suite.driverRepo.GetByFullName("John Doe")
	suite.Require().NoError(err)
	suite.Require().NotNil(driver.Team)
	suite.Equal("Team Racing", driver.Team.Name)

	// the result keeps the team named in its own file
	otherTeam, err := suite.teamRepo.GetByName("Other Team")
	suite.Require().NoError(err)
	result, err := suite.resultRepo.GetByEventAndDriver(other.ID, driver.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(result.TeamID)
	suite.Equal(otherTeam.ID, *result.TeamID)
}

func (suite *ResultParserTestSuite) TestExistingDriverWithoutTeamGetsOne() {
	suite.Require().NoError(suite.db.Create(suite.factories.Driver.WithName("John Doe")).Error)

	suite.parse([]byte(scenarioAPayload))

	driver, err := suite.driverRepo.GetByFullName("John Doe")
	suite.Require().NoError(err)
	suite.Require().NotNil(driver.Team)
	suite.Equal("Team Racing", driver.Team.Name)
	suite.Equal(int64(1), suite.count(&models.Driver{}))
}

func (suite *ResultParserTestSuite) TestEmptyNameIsSkippedButCounted() {
	outcome := suite.parse(resultFile(
		leaderboardLine("", "", "Ghost Team", "Lamborghini Huracan GT3", 9, 95000),
		leaderboardLine("  ", " ", "", "", 0, 0),
		leaderboardLine("John", "Doe", "Team Racing", "Porsche 991 GT3 R", 1, 90500),
	))

	suite.Equal(3, outcome.ProcessedCount)
	suite.Equal(1, outcome.Upserted)
	suite.Equal(2, outcome.Skipped)
	suite.Equal(int64(1), suite.count(&models.Driver{}))
	suite.Equal(int64(1), suite.count(&models.RaceResult{}))
	// skipped entries do not create their team either
	_, err := suite.teamRepo.GetByName("Ghost Team")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ResultParserTestSuite) TestNonObjectEntryDoesNotStopBatch() {
	outcome := suite.parse(resultFile(
		"garbage",
		leaderboardLine("John", "Doe", "", "Porsche 991 GT3 R", 1, 90500),
	))

	suite.Equal(2, outcome.ProcessedCount)
	suite.Equal(1, outcome.Failed)
	suite.Equal(1, outcome.Upserted)
}

func (suite *ResultParserTestSuite) TestNoTeamLeavesReferencesEmpty() {
	suite.parse(resultFile(leaderboardLine("Solo", "Driver", "", "BMW M4 GT3", 12, 0)))

	driver, err := suite.driverRepo.GetByFullName("Solo Driver")
	suite.Require().NoError(err)
	suite.Nil(driver.TeamID)
	result, err := suite.resultRepo.GetByEventAndDriver(suite.event.ID, driver.ID)
	suite.Require().NoError(err)
	suite.Nil(result.TeamID)
	suite.Nil(result.BestLapTime)
	suite.Equal(12, result.FinalPosition)
	suite.Equal(int64(0), suite.count(&models.Team{}))
}

func (suite *ResultParserTestSuite) TestMissingLeaderboardIsEmpty() {
	outcome := suite.parse([]byte(`{"sessionResult":{"bestlap":90000}}`))

	suite.Equal(0, outcome.ProcessedCount)
	suite.Equal(int64(0), suite.count(&models.RaceResult{}))
}

func (suite *ResultParserTestSuite) TestInvalidPayloadLeavesStoreUnchanged() {
	payloads := map[string][]byte{
		"not json":      []byte("not json"),
		"invalid utf-8": {'{', 0xC3, 0x28, '}'},
		"json array":    []byte(`[{"sessionResult":{}}]`),
		"truncated":     []byte(scenarioAPayload[:40]),
	}

	for name, payload := range payloads {
		outcome, err := suite.parser.Parse(context.Background(), payload, suite.event)
		suite.Nil(outcome, name)
		suite.True(apperrors.IsInvalidPayload(err), name)
	}

	suite.Equal(int64(0), suite.count(&models.Driver{}))
	suite.Equal(int64(0), suite.count(&models.Team{}))
	suite.Equal(int64(0), suite.count(&models.RaceResult{}))
}

func (suite *ResultParserTestSuite) TestUTF16ResultFile() {
	payload, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes(
		resultFile(leaderboardLine("Kimi", "Räikkönen", "Iceman Racing", "Ferrari 296 GT3", 7, 100123)))
	suite.Require().NoError(err)

	outcome := suite.parse(payload)

	suite.Equal(1, outcome.Upserted)
	driver, err := suite.driverRepo.GetByFullName("Kimi Räikkönen")
	suite.Require().NoError(err)
	result, err := suite.resultRepo.GetByEventAndDriver(suite.event.ID, driver.ID)
	suite.Require().NoError(err)
	suite.Equal(100123*time.Millisecond, *result.BestLapTime)
}

func (suite *ResultParserTestSuite) TestNicknameFromShortName() {
	line := leaderboardLine("John", "Doe", "", "Porsche 991 GT3 R", 1, 0)
	line["currentDriver"].(map[string]interface{})["shortName"] = "DOE"
	suite.parse(resultFile(line))

	line["currentDriver"].(map[string]interface{})["shortName"] = "JDO"
	suite.parse(resultFile(line))

	driver, err := suite.driverRepo.GetByFullName("John Doe")
	suite.Require().NoError(err)
	suite.Require().NotNil(driver.Nickname)
	suite.Equal("DOE", *driver.Nickname)
}

func (suite *ResultParserTestSuite) TestLeaderboardOrderStrategy() {
	parser := service.NewResultParser(suite.teamRepo, suite.driverRepo, suite.resultRepo, service.LeaderboardOrderResolver{}, 3)

	lines := make([]interface{}, 0, 3)
	for i, name := range []string{"Alpha", "Bravo", "Charlie"} {
		lines = append(lines, leaderboardLine(name, "Driver", "", "Porsche 991 GT3 R", 90+i, 0))
	}
	_, err := parser.Parse(context.Background(), resultFile(lines...), suite.event)
	suite.Require().NoError(err)

	results, err := suite.resultRepo.GetByEventID(suite.event.ID)
	suite.Require().NoError(err)
	suite.Require().Len(results, 3)
	for i, result := range results {
		suite.Equal(i+1, result.FinalPosition)
		suite.Equal(fmt.Sprintf("%s Driver", []string{"Alpha", "Bravo", "Charlie"}[i]), result.Driver.FullName)
	}
}

func TestResultParserTestSuite(t *testing.T) {
	suite.Run(t, new(ResultParserTestSuite))
}
