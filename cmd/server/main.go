package main

import (
	"github.com/labstack/echo/v4"

	"github.com/Sajidcodez/basketballhub/backend/internal/preferences"
	"github.com/Sajidcodez/basketballhub/backend/internal/router"
	"github.com/Sajidcodez/basketballhub/backend/pkg/config"
	"github.com/Sajidcodez/basketballhub/backend/pkg/logger"
	"github.com/Sajidcodez/basketballhub/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.Env)

	// Initialize database connections
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Preference persistence: Redis when configured, in-process otherwise.
	var kv preferences.KeyValue
	if db.Redis != nil {
		kv = preferences.NewRedisKV(db.Redis)
	} else {
		log.Warn("REDIS_ADDR not set, preferences will not survive restarts")
		kv = preferences.NewMemoryKV()
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db.Postgres, kv, log); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
