package handlers

import (
	"net/http"

	"league-results-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StandingsHandler serves the championship table
type StandingsHandler struct {
	standingsService service.StandingsServiceInterface
}

// NewStandingsHandler creates a new standings handler
func NewStandingsHandler(standingsService service.StandingsServiceInterface) *StandingsHandler {
	return &StandingsHandler{
		standingsService: standingsService,
	}
}

// GetStandings handles GET /standings
// @Summary Championship standings
// @Description Drivers with positive total points, ranked by total points descending
// @Tags standings
// @Produce json
// @Success 200 {object} service.StandingsResponse "Current standings"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /standings [get]
func (h *StandingsHandler) GetStandings(c *gin.Context) {
	standings, err := h.standingsService.ComputeStandings()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, standings)
}
