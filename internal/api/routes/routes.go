package routes

import (
	"log"

	"student-hub-backend/internal/api/handlers"
	"student-hub-backend/internal/api/middleware"
	"student-hub-backend/internal/auth"
	"student-hub-backend/internal/config"
	"student-hub-backend/internal/namecache"
	"student-hub-backend/internal/repository"
	"student-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	activityRepo := repository.NewActivityRepository(db)
	userRepo := repository.NewUserRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)

	// The display-name cache is injected into every service that renders
	// activities, so independent call sites share resolved names.
	nameCache := namecache.New(userRepo, namecache.WithTTL(cfg.NameCacheTTL()))

	// Initialize services
	activityService := service.NewActivityService(activityRepo, nameCache, validator)
	userService := service.NewUserService(userRepo, nameCache, validator)
	engagementService := service.NewEngagementService(engagementRepo, activityRepo, nameCache)

	// Initialize auth
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: failed to load auth config, falling back to app config: %v", err)
		authConfig = &auth.AuthConfig{
			Issuer:   "student-hub",
			Audience: "student-hub-frontend",
			Secret:   cfg.JWTSecret,
		}
	}
	authService := auth.NewAuthService(authConfig)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	activityHandler := handlers.NewActivityHandler(activityService)
	userHandler := handlers.NewUserHandler(userService)
	engagementHandler := handlers.NewEngagementHandler(engagementService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	// Public browsing routes
	api.GET("/activities", activityHandler.ListActivities)
	api.GET("/activities/:id", activityHandler.GetActivity)
	api.GET("/users/:id", userHandler.GetUser)
	api.GET("/users/:id/activities", activityHandler.ListActivitiesForUser)

	// Routes requiring a signed-in identity
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/activities", activityHandler.CreateActivity)
		protected.PATCH("/activities/:id", activityHandler.UpdateActivity)
		protected.DELETE("/activities/:id", activityHandler.DeleteActivity)
		protected.POST("/activities/:id/members", activityHandler.JoinActivity)
		protected.DELETE("/activities/:id/members", activityHandler.LeaveActivity)

		protected.GET("/users/me", userHandler.Me)
		protected.POST("/users/me", userHandler.EnsureProfile)
		protected.PATCH("/users/me", userHandler.UpdateProfile)
		protected.GET("/users/me/exists", userHandler.CheckProfile)

		protected.GET("/users/me/saved", engagementHandler.GetSaved)
		protected.DELETE("/users/me/saved", engagementHandler.ClearSaved)
		protected.PUT("/users/me/saved/:id", engagementHandler.SaveActivity)
		protected.DELETE("/users/me/saved/:id", engagementHandler.UnsaveActivity)

		protected.GET("/users/me/recent", engagementHandler.GetRecent)
		protected.DELETE("/users/me/recent", engagementHandler.ClearRecent)
		protected.PUT("/users/me/recent/:id", engagementHandler.RecordView)
	}

	return router
}
