package handlers

import (
	"net/http"

	"league-results-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RaceResultHandler handles HTTP requests for single race results
type RaceResultHandler struct {
	resultService service.RaceResultServiceInterface
}

// NewRaceResultHandler creates a new race result handler
func NewRaceResultHandler(resultService service.RaceResultServiceInterface) *RaceResultHandler {
	return &RaceResultHandler{
		resultService: resultService,
	}
}

// GetResult handles GET /results/:id
// @Summary Get a race result
// @Description Get a race result including the stored leaderboard entry
// @Tags results
// @Produce json
// @Param id path string true "Race result ID (UUID)"
// @Success 200 {object} service.RaceResultResponse "Race result"
// @Failure 404 {object} ErrorResponse "Race result not found"
// @Router /results/{id} [get]
func (h *RaceResultHandler) GetResult(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "race result")
	if !ok {
		return
	}

	result, err := h.resultService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateScoring handles PATCH /results/:id
// @Summary Set points and incidents
// @Description Set the points and incidents of a race result. Omitted fields are unchanged.
// @Tags results
// @Accept json
// @Produce json
// @Param id path string true "Race result ID (UUID)"
// @Param scoring body service.UpdateScoringRequest true "Scoring"
// @Success 200 {object} service.RaceResultResponse "Updated race result"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Race result not found"
// @Security BearerAuth
// @Router /results/{id} [patch]
func (h *RaceResultHandler) UpdateScoring(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "race result")
	if !ok {
		return
	}

	var req service.UpdateScoringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.resultService.UpdateScoring(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
