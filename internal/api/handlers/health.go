package handlers

import (
	"fmt"
	"net/http"
	"time"

	"league-results-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler reports liveness and whether the league store can take uploads
type HealthHandler struct {
	db      *gorm.DB
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Database  string            `json:"database"`
	Services  map[string]string `json:"services"`
}

// ReadyResponse lists the checks behind readiness
type ReadyResponse struct {
	Ready     bool              `json:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Overall status including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Database:  h.db.Dialector.Name(),
		Services:  map[string]string{"database": "healthy"},
	}

	statusCode := http.StatusOK
	if err := h.pingDatabase(); err != nil {
		response.Status = "unhealthy"
		response.Services["database"] = "error: " + err.Error()
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready reports whether result files can be ingested: the database answers and
// every league table exists
// @Summary Readiness check
// @Description Check if the application is ready to accept result uploads
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Application is ready"
// @Failure 503 {object} ReadyResponse "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	response := ReadyResponse{
		Ready:     true,
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	if err := h.pingDatabase(); err != nil {
		response.Ready = false
		response.Checks["database"] = "not ready: " + err.Error()
	} else {
		response.Checks["database"] = "ready"
		if err := h.checkSchema(); err != nil {
			response.Ready = false
			response.Checks["schema"] = "not ready: " + err.Error()
		} else {
			response.Checks["schema"] = "ready"
		}
	}

	statusCode := http.StatusOK
	if !response.Ready {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

func (h *HealthHandler) pingDatabase() error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (h *HealthHandler) checkSchema() error {
	migrator := h.db.Migrator()
	for _, model := range []interface{}{&models.Team{}, &models.Driver{}, &models.Event{}, &models.RaceResult{}} {
		if !migrator.HasTable(model) {
			return fmt.Errorf("table for %T is missing", model)
		}
	}
	return nil
}
