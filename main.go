package main

import (
	"net/http"
	"os"

	"skillswap-api/config"
	"skillswap-api/handlers"
	"skillswap-api/helper"
	"skillswap-api/middleware"
	"skillswap-api/repositories"
	"skillswap-api/services"
	"skillswap-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	config.InitLogger("skillswap-api", os.Getenv("APP_ENV"))

	// Initialize database
	db := config.InitDB()

	// Field-level validation messages
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := entranslations.RegisterDefaultTranslations(v, translator); err != nil {
			log.Warn().Err(err).Msg("failed to register validator translations")
		}
	}
	httpHelper := &helper.HTTPHelper{Translator: translator}

	// Avatar blob store
	blobStore := storage.NewS3Storage(storage.ConfigFromEnv())

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	userSkillRepo := repositories.NewUserSkillRepository(db)
	swapRepo := repositories.NewSwapRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	ratingRepo := repositories.NewRatingRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, userSkillRepo)
	userService := services.NewUserService(userRepo, userSkillRepo, blobStore)
	skillService := services.NewSkillService(skillRepo, userSkillRepo)
	swapService := services.NewSwapService(swapRepo, sessionRepo, ratingRepo, userRepo, skillRepo)
	adminService := services.NewAdminService(userRepo, userSkillRepo, swapRepo, ratingRepo, messageRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	skillHandler := handlers.NewSkillHandler(skillService, httpHelper)
	swapHandler := handlers.NewSwapHandler(swapService, httpHelper)
	adminHandler := handlers.NewAdminHandler(adminService, httpHelper)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware(userRepo))
		{
			// Profile
			protected.GET("/profile", userHandler.GetProfile)
			protected.PATCH("/profile", userHandler.UpdateProfile)
			protected.POST("/profile/avatar", userHandler.UploadAvatar)
			protected.DELETE("/profile/avatar", userHandler.DeleteAvatar)

			// User directory
			protected.GET("/users", userHandler.ListUsers)
			protected.GET("/users/:id", userHandler.GetUser)

			// Platform broadcasts
			protected.GET("/messages", adminHandler.ListPublicMessages)

			// Skills
			skills := protected.Group("/skills")
			{
				skills.GET("", skillHandler.ListSkills)
				skills.GET("/user-skills", skillHandler.ListUserSkills)
				skills.POST("/user-skills", skillHandler.CreateUserSkill)
				skills.DELETE("/user-skills/:id/delete", skillHandler.DeleteUserSkill)
				skills.GET("/user-skills/:skill_type", skillHandler.ListUserSkillsByType)
			}

			// Swaps
			swaps := protected.Group("/swaps")
			{
				swaps.POST("/requests", swapHandler.CreateRequest)
				swaps.GET("/requests", swapHandler.ListRequests)
				swaps.GET("/requests/received", swapHandler.ListReceived)
				swaps.PATCH("/requests/:id/status", swapHandler.UpdateStatus)
				swaps.POST("/sessions", swapHandler.CreateSession)
				swaps.GET("/sessions", swapHandler.ListSessions)
				swaps.POST("/sessions/:id/ratings", swapHandler.RateSession)
			}

			// Admin console
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/user-skills", adminHandler.ListUserSkills)
				admin.POST("/user-skills/:id/approve", adminHandler.ApproveSkill)
				admin.POST("/user-skills/:id/reject", adminHandler.RejectSkill)
				admin.GET("/users", adminHandler.ListUsers)
				admin.POST("/users/:id/ban", adminHandler.BanUser)
				admin.POST("/users/:id/unban", adminHandler.UnbanUser)
				admin.GET("/swaps", adminHandler.ListSwaps)
				admin.GET("/messages", adminHandler.ListMessages)
				admin.POST("/messages", adminHandler.CreateMessage)
				admin.PATCH("/messages/:id", adminHandler.UpdateMessage)
				admin.GET("/export/users", adminHandler.ExportUsersCSV)
				admin.GET("/export/swaps", adminHandler.ExportSwapsCSV)
				admin.GET("/export/ratings", adminHandler.ExportRatingsCSV)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("Server starting")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
