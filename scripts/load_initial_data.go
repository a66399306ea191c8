package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"league-results-backend/internal/config"
	"league-results-backend/internal/database"
	"league-results-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name string `yaml:"name"`
}

type EventData struct {
	Name      string `yaml:"name"`
	TrackName string `yaml:"track_name"`
	EventDate string `yaml:"event_date"`
}

// PointsData sets the scoring of an already ingested result
type PointsData struct {
	Event     string `yaml:"event"`
	EventDate string `yaml:"event_date"`
	Driver    string `yaml:"driver"`
	Points    int    `yaml:"points"`
	Incidents *int   `yaml:"incidents,omitempty"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type EventsFile struct {
	Events []EventData `yaml:"events"`
}

type PointsFile struct {
	Points []PointsData `yaml:"points"`
}

// seedSummary counts what a load created or changed
type seedSummary struct {
	TeamsCreated   int
	EventsCreated  int
	PointsApplied  int
	PointsSkipped  int
	TeamsTotal     int
	EventsTotal    int
	PointsRequests int
}

func main() {
	log.Println("Loading initial league data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, cfg.DatabaseDriver, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	summary, err := loadDataFromYAMLFiles(db, dataDir)
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Printf("Teams: %d created, %d total", summary.TeamsCreated, summary.TeamsTotal)
	log.Printf("Events: %d created, %d total", summary.EventsCreated, summary.EventsTotal)
	log.Printf("Points: %d applied, %d skipped, %d total", summary.PointsApplied, summary.PointsSkipped, summary.PointsRequests)
	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn, driver string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   driver,
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) (*seedSummary, error) {
	var teamsFile TeamsFile
	if err := loadYAMLFiles(dataDir, "teams", func(data []byte) error {
		var file TeamsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		teamsFile.Teams = append(teamsFile.Teams, file.Teams...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}

	var eventsFile EventsFile
	if err := loadYAMLFiles(dataDir, "events", func(data []byte) error {
		var file EventsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		eventsFile.Events = append(eventsFile.Events, file.Events...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	var pointsFile PointsFile
	if err := loadYAMLFiles(dataDir, "points", func(data []byte) error {
		var file PointsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		pointsFile.Points = append(pointsFile.Points, file.Points...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load points: %w", err)
	}

	summary := &seedSummary{
		TeamsTotal:     len(teamsFile.Teams),
		EventsTotal:    len(eventsFile.Events),
		PointsRequests: len(pointsFile.Points),
	}

	for _, teamData := range teamsFile.Teams {
		_, created, err := createTeam(db, teamData)
		if err != nil {
			return nil, fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		if created {
			summary.TeamsCreated++
		}
	}

	for _, eventData := range eventsFile.Events {
		_, created, err := createEvent(db, eventData)
		if err != nil {
			return nil, fmt.Errorf("failed to create event %s: %w", eventData.Name, err)
		}
		if created {
			summary.EventsCreated++
		}
	}

	for _, pointsData := range pointsFile.Points {
		applied, err := applyPoints(db, pointsData)
		if err != nil {
			return nil, fmt.Errorf("failed to apply points for %s at %s: %w", pointsData.Driver, pointsData.Event, err)
		}
		if applied {
			summary.PointsApplied++
		} else {
			summary.PointsSkipped++
		}
	}

	return summary, nil
}

// loadYAMLFiles calls load for every .yaml file under dataDir whose path contains kind
func loadYAMLFiles(dataDir, kind string, load func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := load(data); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	})
}

func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	name := strings.TrimSpace(teamData.Name)
	if name == "" {
		return nil, false, errors.New("team name is required")
	}

	var team models.Team
	if err := db.Where("name = ?", name).First(&team).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
		team = models.Team{Name: name}
		if err := db.Create(&team).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create team: %w", err)
		}
		return &team, true, nil
	}

	return &team, false, nil
}

// createEvent treats name plus date as the identity of a seeded event
func createEvent(db *gorm.DB, eventData EventData) (*models.Event, bool, error) {
	name := strings.TrimSpace(eventData.Name)
	track := strings.TrimSpace(eventData.TrackName)
	if name == "" || track == "" {
		return nil, false, errors.New("event name and track_name are required")
	}
	eventDate, err := time.Parse("2006-01-02", eventData.EventDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid event_date %q: %w", eventData.EventDate, err)
	}

	var event models.Event
	if err := db.Where("name = ? AND event_date = ?", name, eventDate).First(&event).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fmt.Errorf("failed to query event: %w", err)
		}
		event = models.Event{Name: name, TrackName: track, EventDate: eventDate}
		if err := db.Create(&event).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create event: %w", err)
		}
		return &event, true, nil
	}

	return &event, false, nil
}

// applyPoints sets points on an existing result. Results that were not ingested yet are skipped.
func applyPoints(db *gorm.DB, pointsData PointsData) (bool, error) {
	if pointsData.Points < 0 || (pointsData.Incidents != nil && *pointsData.Incidents < 0) {
		return false, errors.New("points and incidents must not be negative")
	}
	eventDate, err := time.Parse("2006-01-02", pointsData.EventDate)
	if err != nil {
		return false, fmt.Errorf("invalid event_date %q: %w", pointsData.EventDate, err)
	}

	var result models.RaceResult
	err = db.Joins("JOIN events ON events.id = race_results.event_id").
		Joins("JOIN drivers ON drivers.id = race_results.driver_id").
		Where("events.name = ? AND events.event_date = ? AND drivers.full_name = ?",
			strings.TrimSpace(pointsData.Event), eventDate, strings.TrimSpace(pointsData.Driver)).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to query race result: %w", err)
	}

	updates := map[string]interface{}{"points_earned": pointsData.Points}
	if pointsData.Incidents != nil {
		updates["incidents"] = *pointsData.Incidents
	}
	if err := db.Model(&models.RaceResult{}).Where("id = ?", result.ID).Updates(updates).Error; err != nil {
		return false, fmt.Errorf("failed to update race result: %w", err)
	}
	return true, nil
}
