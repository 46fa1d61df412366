package main

import (
	"fmt"
	"log"
	"os"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxRequestBodyBytes = 1 << 20

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Fatalf("Error loading .env file: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"USERS_COLLECTION",
		"SESSIONS_COLLECTION",
		"HABITS_COLLECTION",
		"CATEGORIES_COLLECTION",
		"COMPLETIONS_COLLECTION",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()

	// Redis is optional; without it sessions fall through to Mongo and
	// token revocation is disabled.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err := services.NewSessionCache(redisURL)
		if err != nil {
			log.Printf("Warning: session cache disabled: %v", err)
		} else {
			services.GlobalSessionCache = cache
		}

		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Printf("Warning: token blacklist disabled: %v", err)
		} else {
			services.TokenBlacklist = blacklist
		}
	}

	dbConfig := config.LoadDatabaseConfig()
	if err := repository.SetupIndexes(utils.MongoClient.Database(dbConfig.DatabaseName)); err != nil {
		log.Printf("Warning: failed to create indexes: %v", err)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	// Repositories
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	habitsRepo := repository.GetHabitsRepo(utils.MongoClient)
	categoriesRepo := repository.GetCategoriesRepo(utils.MongoClient)
	completionsRepo := repository.GetCompletionsRepo(utils.MongoClient)

	// Services
	habitsService := usecase.NewHabitsService(habitsRepo, completionsRepo)
	categoriesService := usecase.NewCategoriesService(categoriesRepo, habitsRepo)
	completionsService := usecase.NewCompletionsService(completionsRepo, habitsRepo)
	statsService := usecase.NewStatsService(habitsRepo, completionsRepo, categoriesRepo)

	// Handlers
	habitsHandler := handler.NewHabitsHandler(habitsService, categoriesService)
	categoriesHandler := handler.NewCategoriesHandler(categoriesService)
	completionsHandler := handler.NewCompletionsHandler(completionsService)
	statsHandler := handler.NewStatsHandler(statsService)

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBodyBytes))
	router.Use(middleware.SessionMiddleware(sessionRepo))

	// Operational endpoints
	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", handler.RegistrationHandler)
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, sessionRepo)
			})
			auth.POST("/refresh", handler.RefreshTokenHandler)
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", handler.GetUserProfileHandler)
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionRepo)
			})
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", func(c *gin.Context) {
				handler.GetActiveSessions(c, sessionRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.LogoutAllSessions(c, sessionRepo)
			})
		}

		twoFactor := protected.Group("/2fa")
		{
			twoFactor.POST("/generate", handler.Generate2FASecretHandler)
			twoFactor.POST("/enable", handler.Enable2FAHandler)
			twoFactor.POST("/verify", handler.Verify2FAHandler)
			twoFactor.POST("/disable", handler.Disable2FAHandler)
			twoFactor.POST("/recovery", handler.UseRecoveryCodeHandler)
		}

		habits := protected.Group("/habits")
		{
			habits.GET("", habitsHandler.GetHabits)
			habits.POST("", habitsHandler.CreateHabit)
			habits.PUT("/:id", habitsHandler.UpdateHabit)
			habits.DELETE("/:id", habitsHandler.DeleteHabit)

			// Analytics engine routes
			habits.GET("/stats", statsHandler.GetStats)
			habits.GET("/analytics", statsHandler.GetAnalytics)

			// Completion tracking
			habits.POST("/:id/completions", completionsHandler.CompleteHabit)
			habits.DELETE("/:id/completions/:date", completionsHandler.UncompleteHabit)
		}

		categories := protected.Group("/categories")
		{
			categories.GET("", middleware.CacheControlMiddleware("60"), categoriesHandler.GetCategories)
			categories.POST("", categoriesHandler.CreateCategory)
			categories.PUT("/:id", categoriesHandler.UpdateCategory)
			categories.DELETE("/:id", categoriesHandler.DeleteCategory)
		}

		protected.GET("/completions", completionsHandler.GetCompletions)
	}

	return router
}

func main() {
	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
