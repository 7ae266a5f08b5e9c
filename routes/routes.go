// routes/routes.go
package routes

import (
	"time"

	"roamsafe/config"
	"roamsafe/controllers"
	"roamsafe/middleware"
	"roamsafe/repositories"
	"roamsafe/services"
	"roamsafe/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter wires repositories, services and controllers into the gin
// engine. All API routes live under /api to match the mobile client.
func SetupRouter(cfg *config.Config, db *mongo.Database, redisClient *redis.Client) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORSMiddleware(cfg.Environment))

	rateLimiter := middleware.NewRateLimiter(redisClient, cfg.RateLimitRequests, time.Duration(cfg.RateLimitWindow)*time.Minute)
	router.Use(rateLimiter.Middleware())

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	incidentRepo := repositories.NewIncidentRepository(db)
	zoneRepo := repositories.NewSafetyZoneRepository(db)

	// Services
	jwtService := utils.NewJWTService(cfg.JWTSecret)
	notifier := services.NewNotifier(cfg)

	authService := services.NewAuthService(userRepo, jwtService)
	userService := services.NewUserService(userRepo)
	contactService := services.NewContactService(userRepo)
	incidentService := services.NewIncidentService(incidentRepo, userRepo, notifier)
	zoneService := services.NewSafetyZoneService(zoneRepo)
	weatherService := services.NewWeatherService(cfg)

	// Controllers
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	contactController := controllers.NewContactController(contactService)
	incidentController := controllers.NewIncidentController(incidentService)
	zoneController := controllers.NewSafetyZoneController(zoneService)
	weatherController := controllers.NewWeatherController(weatherService)
	healthController := controllers.NewHealthController(redisClient)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo)

	router.GET("/health", healthController.Health)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.GET("/me", authMiddleware.RequireAuth(), authController.Me)
			auth.POST("/verify-identity", authMiddleware.RequireAuth(), authController.VerifyIdentity)
		}

		users := api.Group("/users", authMiddleware.RequireAuth())
		{
			users.PUT("/profile", userController.UpdateProfile)
			users.PUT("/location", userController.UpdateLocation)
			users.PUT("/privacy-settings", userController.UpdatePrivacySettings)
			users.PUT("/toggle-location-tracking", userController.ToggleLocationTracking)
		}

		incidents := api.Group("/incidents", authMiddleware.RequireAuth())
		{
			incidents.POST("/report", incidentController.Report)
			incidents.GET("/my-incidents", incidentController.ListMyIncidents)
			incidents.GET("/history", incidentController.History)
			incidents.GET("/:id", incidentController.GetIncident)
			incidents.PUT("/:id/status", incidentController.UpdateStatus)
		}

		// Zone reads are public so the map renders before login.
		zones := api.Group("/safety-zones")
		{
			zones.GET("", zoneController.ListZones)
			zones.GET("/:id", zoneController.GetZone)
			zones.POST("", authMiddleware.RequireAuth(), zoneController.CreateZone)
		}

		contacts := api.Group("/emergency-contacts", authMiddleware.RequireAuth())
		{
			contacts.GET("", contactController.ListContacts)
			contacts.POST("", contactController.AddContact)
			contacts.PUT("/:contactId", contactController.UpdateContact)
			contacts.DELETE("/:contactId", contactController.DeleteContact)
		}

		weather := api.Group("/weather", authMiddleware.RequireAuth())
		{
			weather.GET("/current", weatherController.CurrentWeather)
			weather.GET("/alerts", weatherController.Alerts)
			weather.GET("/forecast", weatherController.Forecast)
			weather.GET("/safety-report", weatherController.SafetyReport)
		}
	}

	return router
}
