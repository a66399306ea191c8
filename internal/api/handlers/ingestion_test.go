package handlers_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"league-results-backend/internal/api/handlers"
	apperrors "league-results-backend/internal/errors"
	"league-results-backend/internal/mocks"
	"league-results-backend/internal/service"
	"league-results-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const resultFile = `{"sessionResult":{"leaderBoardLines":[{"car":{"raceNumber":7,"teamName":"Team Racing"},"currentDriver":{"firstName":"John","lastName":"Doe"}}]}}`

// IngestionHandlerTestSuite defines the test suite for IngestionHandler
type IngestionHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockIngestionServiceInterface
	handler     *handlers.IngestionHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *IngestionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockIngestionServiceInterface(suite.ctrl)
	suite.handler = handlers.NewIngestionHandler(suite.mockService, 1024)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/api/v1/events/:id/results", suite.handler.UploadResults)
}

func (suite *IngestionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *IngestionHandlerTestSuite) url(id string) string {
	return "/api/v1/events/" + id + "/results"
}

func (suite *IngestionHandlerTestSuite) TestUploadMultipart() {
	eventID := uuid.New()
	suite.mockService.EXPECT().
		Ingest(gomock.Any(), eventID, []byte(resultFile)).
		Return(&service.IngestionResponse{EventID: eventID, Message: "1 results processed.", Processed: 1, Upserted: 1}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, suite.url(eventID.String()), handlers.ResultFileField, "race.json", []byte(resultFile), nil)

	var response service.IngestionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "1 results processed.", response.Message)
	assert.Equal(suite.T(), 1, response.Processed)
}

func (suite *IngestionHandlerTestSuite) TestUploadRawBody() {
	eventID := uuid.New()
	suite.mockService.EXPECT().
		Ingest(gomock.Any(), eventID, []byte(resultFile)).
		Return(&service.IngestionResponse{EventID: eventID, Processed: 1}, nil)

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, suite.url(eventID.String()), "application/json", []byte(resultFile), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *IngestionHandlerTestSuite) TestUploadEventNotFound() {
	eventID := uuid.New()
	suite.mockService.EXPECT().Ingest(gomock.Any(), eventID, gomock.Any()).Return(nil, apperrors.ErrEventNotFound)

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, suite.url(eventID.String()), "application/json", []byte(resultFile), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "event not found")
}

func (suite *IngestionHandlerTestSuite) TestUploadInvalidPayload() {
	eventID := uuid.New()
	suite.mockService.EXPECT().
		Ingest(gomock.Any(), eventID, gomock.Any()).
		Return(nil, apperrors.NewInvalidPayloadError("not JSON", errors.New("unexpected end of JSON input")))

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, suite.url(eventID.String()), "application/json", []byte("{"), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid result file")
}

func (suite *IngestionHandlerTestSuite) TestUploadServiceFailure() {
	eventID := uuid.New()
	suite.mockService.EXPECT().Ingest(gomock.Any(), eventID, gomock.Any()).Return(nil, errors.New("db down"))

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, suite.url(eventID.String()), "application/json", []byte(resultFile), nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
}

func (suite *IngestionHandlerTestSuite) TestUploadWrongField() {
	recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, suite.url(uuid.NewString()), "results", "race.json", []byte(resultFile), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "result file is required")
}

func (suite *IngestionHandlerTestSuite) TestUploadEmptyBody() {
	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, suite.url(uuid.NewString()), "application/json", nil, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "result file is required")
}

func (suite *IngestionHandlerTestSuite) TestUploadTooLarge() {
	body := []byte(strings.Repeat(" ", 2048) + resultFile)

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, suite.url(uuid.NewString()), "application/json", body, nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusRequestEntityTooLarge, "exceeds 1024 bytes")
}

func (suite *IngestionHandlerTestSuite) TestUploadInvalidEventID() {
	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, suite.url("round-1"), "application/json", []byte(resultFile), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid event ID")
}

func TestIngestionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(IngestionHandlerTestSuite))
}
