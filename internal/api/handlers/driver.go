package handlers

import (
	"net/http"

	"league-results-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DriverHandler handles HTTP requests for driver operations
type DriverHandler struct {
	driverService service.DriverServiceInterface
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(driverService service.DriverServiceInterface) *DriverHandler {
	return &DriverHandler{
		driverService: driverService,
	}
}

// ListDrivers handles GET /drivers
// @Summary List drivers
// @Description List drivers with optional team filter and name search
// @Tags drivers
// @Produce json
// @Param team_id query string false "Team ID (UUID) to filter drivers"
// @Param q query string false "Search in full name and nickname"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DriverListResponse "Successfully retrieved drivers"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Router /drivers [get]
func (h *DriverHandler) ListDrivers(c *gin.Context) {
	var teamID *uuid.UUID
	if raw := c.Query("team_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid team ID"})
			return
		}
		teamID = &id
	}
	page, pageSize := pageParams(c)

	drivers, err := h.driverService.List(teamID, c.Query("q"), page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, drivers)
}

// GetDriver handles GET /drivers/:id
// @Summary Get driver by ID
// @Tags drivers
// @Produce json
// @Param id path string true "Driver ID (UUID)"
// @Success 200 {object} service.DriverResponse "Successfully retrieved driver"
// @Failure 404 {object} ErrorResponse "Driver not found"
// @Router /drivers/{id} [get]
func (h *DriverHandler) GetDriver(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "driver")
	if !ok {
		return
	}

	driver, err := h.driverService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, driver)
}

// GetDriverByName handles GET /drivers/by-name/:name
// @Summary Get driver by full name
// @Tags drivers
// @Produce json
// @Param name path string true "Exact full name"
// @Success 200 {object} service.DriverResponse "Successfully retrieved driver"
// @Failure 404 {object} ErrorResponse "Driver not found"
// @Router /drivers/by-name/{name} [get]
func (h *DriverHandler) GetDriverByName(c *gin.Context) {
	driver, err := h.driverService.GetByFullName(c.Param("name"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, driver)
}

// GetDriverResults handles GET /drivers/:id/results
// @Summary List a driver's results
// @Tags drivers
// @Produce json
// @Param id path string true "Driver ID (UUID)"
// @Success 200 {object} service.DriverResultsResponse "Driver results"
// @Failure 404 {object} ErrorResponse "Driver not found"
// @Router /drivers/{id}/results [get]
func (h *DriverHandler) GetDriverResults(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "driver")
	if !ok {
		return
	}

	results, err := h.driverService.GetResults(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// DeleteDriver handles DELETE /drivers/:id
// @Summary Delete a driver
// @Description Delete a driver together with the driver's race results
// @Tags drivers
// @Param id path string true "Driver ID (UUID)"
// @Success 204 "Driver deleted"
// @Failure 404 {object} ErrorResponse "Driver not found"
// @Security BearerAuth
// @Router /drivers/{id} [delete]
func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "driver")
	if !ok {
		return
	}

	if err := h.driverService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
