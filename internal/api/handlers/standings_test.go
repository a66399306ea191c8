package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"league-results-backend/internal/api/handlers"
	"league-results-backend/internal/mocks"
	"league-results-backend/internal/service"
	"league-results-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetStandings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockStandingsServiceInterface(ctrl)
	handler := handlers.NewStandingsHandler(mockService)
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/v1/standings", handler.GetStandings)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().ComputeStandings().Return(&service.StandingsResponse{
			Standings: []service.StandingResponse{
				{Rank: 1, DriverID: uuid.New(), DisplayName: "Driver One", TotalPoints: 40, Events: 2},
				{Rank: 2, DriverID: uuid.New(), DisplayName: "Driver Two", TotalPoints: 18, Events: 1},
			},
			Total: 2,
		}, nil)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/standings", nil)

		var response service.StandingsResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 2, response.Total)
		assert.Equal(t, int64(40), response.Standings[0].TotalPoints)
	})

	t.Run("Failure", func(t *testing.T) {
		mockService.EXPECT().ComputeStandings().Return(nil, errors.New("failed to compute standings"))

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/standings", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "failed to compute standings")
	})
}
