package routes

import (
	"league-results-backend/internal/api/handlers"
	"league-results-backend/internal/api/middleware"
	"league-results-backend/internal/auth"
	"league-results-backend/internal/config"
	"league-results-backend/internal/logger"
	"league-results-backend/internal/metrics"
	"league-results-backend/internal/repository"
	"league-results-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, recorder *metrics.Recorder) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Repositories
	teamRepo := repository.NewTeamRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	eventRepo := repository.NewEventRepository(db)
	resultRepo := repository.NewRaceResultRepository(db)
	standingsRepo := repository.NewStandingsRepository(db)

	// Services
	positions, err := service.NewPositionResolver(cfg.PositionStrategy)
	if err != nil {
		return nil, err
	}
	parser := service.NewResultParser(teamRepo, driverRepo, resultRepo, positions, cfg.UpsertMaxRetries)
	ingestionService := service.NewIngestionService(eventRepo, parser, recorder)
	standingsService := service.NewStandingsService(standingsRepo, recorder)
	teamService := service.NewTeamService(teamRepo, validator)
	eventService := service.NewEventService(eventRepo, resultRepo, validator)
	driverService := service.NewDriverService(driverRepo, resultRepo)
	raceResultService := service.NewRaceResultService(resultRepo, validator)

	authService, err := auth.NewAuthService(cfg.JWTSecret, 0)
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewAuthHandler(authService)
	admin := auth.NewAuthMiddleware(authService).RequireAdmin()

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	ingestionHandler := handlers.NewIngestionHandler(ingestionService, cfg.MaxUploadSizeBytes())
	standingsHandler := handlers.NewStandingsHandler(standingsService)
	teamHandler := handlers.NewTeamHandler(teamService)
	eventHandler := handlers.NewEventHandler(eventService)
	driverHandler := handlers.NewDriverHandler(driverService)
	raceResultHandler := handlers.NewRaceResultHandler(raceResultService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if recorder != nil {
		router.GET("/metrics", gin.WrapH(recorder.Handler()))
	}

	router.POST("/api/auth/validate", authHandler.ValidateToken)

	// API v1 routes. Reads are public, changes need an admin token.
	v1 := router.Group("/api/v1")
	{
		v1.GET("/standings", standingsHandler.GetStandings)

		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.POST("", admin, teamHandler.CreateTeam)
			teams.PUT("/:id", admin, teamHandler.UpdateTeam)
			teams.DELETE("/:id", admin, teamHandler.DeleteTeam)
		}

		events := v1.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.GET("/:id", eventHandler.GetEvent)
			events.GET("/:id/results", eventHandler.GetEventResults)
			events.POST("", admin, eventHandler.CreateEvent)
			events.PUT("/:id", admin, eventHandler.UpdateEvent)
			events.DELETE("/:id", admin, eventHandler.DeleteEvent)
			events.POST("/:id/results", admin, ingestionHandler.UploadResults)
		}

		drivers := v1.Group("/drivers")
		{
			drivers.GET("", driverHandler.ListDrivers)
			drivers.GET("/by-name/:name", driverHandler.GetDriverByName)
			drivers.GET("/:id", driverHandler.GetDriver)
			drivers.GET("/:id/results", driverHandler.GetDriverResults)
			drivers.DELETE("/:id", admin, driverHandler.DeleteDriver)
		}

		results := v1.Group("/results")
		{
			results.GET("/:id", raceResultHandler.GetResult)
			results.PATCH("/:id", admin, raceResultHandler.UpdateScoring)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, Version)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
