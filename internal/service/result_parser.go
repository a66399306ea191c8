package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"league-results-backend/internal/database/models"
	apperrors "league-results-backend/internal/errors"
	"league-results-backend/internal/logger"
	"league-results-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// maxNicknameLength matches the size of drivers.nickname
const maxNicknameLength = 50

// ParseOutcome summarizes one parsed result file. ProcessedCount is the length of the
// leaderboard, skipped and failed entries included.
type ParseOutcome struct {
	ProcessedCount int `json:"processed"`
	Upserted       int `json:"upserted"`
	Skipped        int `json:"skipped"`
	Failed         int `json:"failed"`
}

// ResultParser stores the leaderboard of a result file against an event
type ResultParser struct {
	teamRepo   repository.TeamRepositoryInterface
	driverRepo repository.DriverRepositoryInterface
	resultRepo repository.RaceResultRepositoryInterface
	positions  PositionResolver
	maxRetries int
}

// NewResultParser creates a new result parser
func NewResultParser(
	teamRepo repository.TeamRepositoryInterface,
	driverRepo repository.DriverRepositoryInterface,
	resultRepo repository.RaceResultRepositoryInterface,
	positions PositionResolver,
	maxRetries int,
) *ResultParser {
	if positions == nil {
		positions = RaceNumberFallbackResolver{}
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &ResultParser{
		teamRepo:   teamRepo,
		driverRepo: driverRepo,
		resultRepo: resultRepo,
		positions:  positions,
		maxRetries: maxRetries,
	}
}

// Parse decodes payload and upserts one race result per named leaderboard entry.
// Decode failures return an InvalidPayloadError before anything is written. After
// that, entries are stored independently: a failing entry is logged and counted,
// and the entries before and after it are kept.
func (p *ResultParser) Parse(ctx context.Context, payload []byte, event *models.Event) (*ParseOutcome, error) {
	text, err := decodeResultText(payload)
	if err != nil {
		return nil, err
	}
	lines, err := leaderboardLines(text)
	if err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx).WithField("event_id", event.ID)
	outcome := &ParseOutcome{ProcessedCount: len(lines)}

	for i, raw := range lines {
		entry, ok := parseLeaderboardEntry(i, raw)
		if !ok {
			log.WithField("index", i).Warn("Leaderboard entry is not an object")
			outcome.Failed++
			continue
		}
		if entry.FullName() == "" {
			outcome.Skipped++
			continue
		}

		if err := p.storeEntry(log.WithField("index", i), event, entry); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"index":  i,
				"driver": entry.FullName(),
			}).Error("Failed to store leaderboard entry")
			outcome.Failed++
			continue
		}
		outcome.Upserted++
	}

	log.WithFields(map[string]interface{}{
		"processed": outcome.ProcessedCount,
		"upserted":  outcome.Upserted,
		"skipped":   outcome.Skipped,
		"failed":    outcome.Failed,
	}).Info("Result file parsed")

	return outcome, nil
}

func (p *ResultParser) storeEntry(log *logger.Logger, event *models.Event, entry *LeaderboardEntry) error {
	name := entry.FullName()

	driver, err := retryOnConflict(p.maxRetries, func() (*models.Driver, error) {
		d, _, err := p.driverRepo.FindOrCreateByFullName(name)
		return d, err
	})
	if err != nil {
		return fmt.Errorf("failed to resolve driver: %w", err)
	}

	// The nickname is optional; a failed write never costs the entry its result
	if nickname := truncateRunes(entry.ShortName, maxNicknameLength); nickname != "" && (driver.Nickname == nil || *driver.Nickname == "") {
		if _, err := p.driverRepo.SetNicknameIfUnset(driver.ID, nickname); err != nil {
			log.WithError(err).WithField("driver", name).Warn("Failed to set driver nickname")
		}
	}

	var team *models.Team
	if entry.TeamName != "" {
		team, err = retryOnConflict(p.maxRetries, func() (*models.Team, error) {
			t, _, err := p.teamRepo.FindOrCreateByName(entry.TeamName)
			return t, err
		})
		if err != nil {
			return fmt.Errorf("failed to resolve team: %w", err)
		}
		if driver.TeamID == nil {
			if _, err := p.driverRepo.AssignTeamIfUnset(driver.ID, team.ID); err != nil {
				return fmt.Errorf("failed to assign team: %w", err)
			}
		}
	}

	position := p.positions.Resolve(entry)
	result := &models.RaceResult{
		EventID:       event.ID,
		DriverID:      driver.ID,
		CarModel:      entry.CarModel,
		FinalPosition: position.Value,
		Incidents:     0,
		PointsEarned:  0,
		RawPayload:    datatypes.JSON(entry.Raw),
	}
	if team != nil {
		result.TeamID = &team.ID
	}
	if entry.HasBestLap() {
		lap := time.Duration(entry.BestLapMs) * time.Millisecond
		result.BestLapTime = &lap
	}

	_, err = retryOnConflict(p.maxRetries, func() (*models.RaceResult, error) {
		attempt := *result
		attempt.ID = uuid.Nil
		return &attempt, p.resultRepo.Upsert(&attempt)
	})
	if err != nil {
		return fmt.Errorf("failed to upsert race result: %w", err)
	}
	return nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit]))
}

// retryOnConflict runs op again while the store reports a uniqueness violation, at
// most retries extra times.
func retryOnConflict[T any](retries int, op func() (T, error)) (T, error) {
	for attempt := 0; ; attempt++ {
		v, err := op()
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return v, err
		}
		if attempt >= retries {
			var zero T
			return zero, fmt.Errorf("%w: %v", apperrors.ErrUpsertRetriesSpent, err)
		}
	}
}
