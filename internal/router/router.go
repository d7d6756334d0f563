package router

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Sajidcodez/basketballhub/backend/internal/controllers"
	"github.com/Sajidcodez/basketballhub/backend/internal/handlers"
	"github.com/Sajidcodez/basketballhub/backend/internal/models"
	"github.com/Sajidcodez/basketballhub/backend/internal/navigation"
	"github.com/Sajidcodez/basketballhub/backend/internal/preferences"
	"github.com/Sajidcodez/basketballhub/backend/internal/repositories"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, kv preferences.KeyValue, log *logrus.Entry) error {
	// AutoMigrate the two collections
	if err := db.AutoMigrate(&models.Post{}, &models.Comment{}); err != nil {
		return err
	}
	log.Info("PostgreSQL auto-migrations completed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)

	// --- Preference store and onboarding flag, loaded once at startup ---
	ctx := context.Background()
	prefs := preferences.NewStore(ctx, kv, log)
	onboarding := preferences.NewOnboarding(ctx, kv, log)

	// --- Controllers ---
	dispatcher := navigation.NewDispatcher()
	feed := controllers.NewFeedController(postRepo, log)
	detail := controllers.NewDetailController(postRepo, dispatcher, log)
	thread := controllers.NewCommentThreadController(commentRepo, log)

	// --- Handlers ---
	feedHandler := handlers.NewFeedHandler(feed, prefs)
	feedHandler.RegisterFeedRoutes(e)
	log.Info("Feed routes configured.")

	postHandler := handlers.NewPostHandler(postRepo, detail, feed, prefs)
	postHandler.RegisterPostRoutes(e)
	log.Info("Post routes configured.")

	commentHandler := handlers.NewCommentHandler(thread)
	commentHandler.RegisterCommentRoutes(e)
	log.Info("Comment routes configured.")

	preferencesHandler := handlers.NewPreferencesHandler(prefs, onboarding)
	preferencesHandler.RegisterPreferenceRoutes(e)
	log.Info("Preference routes configured.")

	// Any unmatched path goes home rather than 404ing.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/")
	})

	log.Info("All routes configured.")
	return nil
}
