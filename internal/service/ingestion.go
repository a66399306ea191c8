package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"league-results-backend/internal/database/models"
	apperrors "league-results-backend/internal/errors"
	"league-results-backend/internal/logger"
	"league-results-backend/internal/metrics"
	"league-results-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngestionResponse is returned after a result file was stored for an event
type IngestionResponse struct {
	EventID   uuid.UUID `json:"event_id"`
	Message   string    `json:"message"`
	Processed int       `json:"processed"`
	Upserted  int       `json:"upserted"`
	Skipped   int       `json:"skipped"`
	Failed    int       `json:"failed"`
}

// IngestionService connects uploaded result files to the result parser
type IngestionService struct {
	eventRepo repository.EventRepositoryInterface
	parser    ResultParserInterface
	metrics   *metrics.Recorder
}

// NewIngestionService creates a new ingestion service. recorder may be nil.
func NewIngestionService(eventRepo repository.EventRepositoryInterface, parser ResultParserInterface, recorder *metrics.Recorder) *IngestionService {
	return &IngestionService{
		eventRepo: eventRepo,
		parser:    parser,
		metrics:   recorder,
	}
}

// Ingest parses a result file for the event. Unknown events return ErrEventNotFound;
// undecodable files return an InvalidPayloadError and leave the store untouched.
func (s *IngestionService) Ingest(ctx context.Context, eventID uuid.UUID, payload []byte) (*IngestionResponse, error) {
	started := time.Now()
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id": eventID,
		"bytes":    len(payload),
	})

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.record(metrics.OutcomeEventNotFound, started)
			return nil, apperrors.ErrEventNotFound
		}
		s.record(metrics.OutcomeError, started)
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	outcome, err := s.parser.Parse(ctx, payload, event)
	if err != nil {
		if apperrors.IsInvalidPayload(err) {
			log.WithError(err).Warn("Rejected result file")
			s.record(metrics.OutcomeInvalidPayload, started)
			return nil, err
		}
		s.record(metrics.OutcomeError, started)
		return nil, fmt.Errorf("failed to parse result file: %w", err)
	}

	s.record(metrics.OutcomeSuccess, started)
	s.metrics.RecordEntries(outcome.Upserted, outcome.Skipped, outcome.Failed)

	return toIngestionResponse(event, outcome), nil
}

func (s *IngestionService) record(outcome string, started time.Time) {
	s.metrics.RecordIngestion(outcome, time.Since(started).Seconds())
}

func toIngestionResponse(event *models.Event, outcome *ParseOutcome) *IngestionResponse {
	return &IngestionResponse{
		EventID:   event.ID,
		Message:   fmt.Sprintf("%d results processed.", outcome.ProcessedCount),
		Processed: outcome.ProcessedCount,
		Upserted:  outcome.Upserted,
		Skipped:   outcome.Skipped,
		Failed:    outcome.Failed,
	}
}
