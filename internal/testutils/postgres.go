package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"league-results-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	pgUser     = "league"
	pgPassword = "league"
	pgDatabase = "league_test"
)

// leagueTables are truncated between tests, children first
var leagueTables = []string{"race_results", "drivers", "events", "teams"}

// postgresContainer is started once per test binary and shared by every test in it
type postgresContainer struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
}

var (
	sharedOnce      sync.Once
	sharedErr       error
	sharedContainer *postgresContainer
)

// NewPostgresDB returns the shared, migrated Postgres database with all league tables
// emptied. The container is started on first use; call CleanupSharedContainer from
// TestMain to purge it.
func NewPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()

	sharedOnce.Do(func() { sharedContainer, sharedErr = startPostgres() })
	if sharedErr != nil {
		t.Fatalf("failed to start postgres test container: %v", sharedErr)
	}

	if err := truncateLeagueTables(sharedContainer.db); err != nil {
		t.Fatalf("failed to clean postgres test database: %v", err)
	}
	return sharedContainer.db
}

// CleanupSharedContainer closes the shared database and purges its container
func CleanupSharedContainer() {
	if sharedContainer == nil {
		return
	}
	if sqlDB, err := sharedContainer.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Printf("Purging Docker container: %s", sharedContainer.resource.Container.Name)
	if err := sharedContainer.pool.Purge(sharedContainer.resource); err != nil {
		log.Printf("WARN: could not purge postgres container: %v", err)
	}
	sharedContainer = nil
}

func startPostgres() (*postgresContainer, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start postgres: %w", err)
	}

	hostPort := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, hostPort, pgDatabase)

	var db *gorm.DB
	pool.MaxWait = 2 * time.Minute
	err = pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		db, err = database.Initialize(dsn, &database.Options{
			Driver:   database.DriverPostgres,
			LogLevel: logger.Silent,
		})
		return err
	})
	if err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("postgres did not become ready: %w", err)
	}

	log.Printf("Shared Postgres ready on port %s", hostPort)
	return &postgresContainer{pool: pool, resource: resource, db: db}, nil
}

func truncateLeagueTables(db *gorm.DB) error {
	migrator := db.Migrator()
	for _, table := range leagueTables {
		if !migrator.HasTable(table) {
			continue
		}
		if err := db.Exec(`TRUNCATE TABLE "` + table + `" RESTART IDENTITY CASCADE`).Error; err != nil {
			return err
		}
	}
	return nil
}
