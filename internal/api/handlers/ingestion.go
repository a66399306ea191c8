package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"league-results-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ResultFileField is the multipart field carrying the result file
const ResultFileField = "file"

var errNoResultFile = errors.New("result file is required")

// IngestionHandler accepts race result uploads
type IngestionHandler struct {
	ingestionService service.IngestionServiceInterface
	maxUploadBytes   int64
}

// NewIngestionHandler creates a new ingestion handler
func NewIngestionHandler(ingestionService service.IngestionServiceInterface, maxUploadBytes int64) *IngestionHandler {
	return &IngestionHandler{
		ingestionService: ingestionService,
		maxUploadBytes:   maxUploadBytes,
	}
}

// UploadResults handles POST /events/:id/results
// @Summary Upload a result file
// @Description Ingest a race server result file for the event. Send it as multipart field "file" or as the raw request body.
// @Tags results
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Param file formData file false "Result file"
// @Success 200 {object} service.IngestionResponse "Result file processed"
// @Failure 400 {object} ErrorResponse "Missing or invalid result file"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 413 {object} ErrorResponse "Result file too large"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /events/{id}/results [post]
func (h *IngestionHandler) UploadResults(c *gin.Context) {
	eventID, ok := parseUUIDParam(c, "id", "event")
	if !ok {
		return
	}

	if c.Request.Body == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: errNoResultFile.Error()})
		return
	}
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	payload, err := h.readPayload(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: fmt.Sprintf("result file exceeds %d bytes", tooLarge.Limit),
			})
		case errors.Is(err, errNoResultFile):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid result file", Details: err.Error()})
		}
		return
	}

	response, err := h.ingestionService.Ingest(c, eventID, payload)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *IngestionHandler) readPayload(c *gin.Context) ([]byte, error) {
	var reader io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fileHeader, err := c.FormFile(ResultFileField)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				return nil, errNoResultFile
			}
			return nil, err
		}
		file, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		defer file.Close()
		reader = file
	}

	payload, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, errNoResultFile
	}
	return payload, nil
}
