package app

import (
	"fmt"

	"projectconnect/database"
	"projectconnect/internal/config"
	"projectconnect/internal/email"
	"projectconnect/internal/handlers"
	"projectconnect/internal/logger"
	"projectconnect/internal/middleware"
	"projectconnect/internal/repositories"
	"projectconnect/internal/routes"
	"projectconnect/internal/services"
	"projectconnect/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Database connected")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewGomailProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = &MockEmailProvider{}
		logger.Warn("Email disabled; using mock provider")
	}

	userRepo := repositories.NewUserRepository(gormDB)
	projectRepo := repositories.NewProjectRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)

	notificationService := services.NewNotificationService(notificationRepo, userRepo, emailProvider)
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, userRepo)
	membershipService := services.NewMembershipService(userRepo, projectRepo, notificationService)
	recommendationService := services.NewRecommendationService(userRepo, projectRepo)
	vocabularyService := services.NewVocabularyService(cfg)

	return &services.ServiceContainer{
		AuthService:           authService,
		UserService:           userService,
		ProjectService:        projectService,
		MembershipService:     membershipService,
		RecommendationService: recommendationService,
		NotificationService:   notificationService,
		VocabularyService:     vocabularyService,
	}
}

func initializeHandlers(cfg *config.Config, serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:           handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService, serviceContainer.UserService),
		UserHandler:           handlers.NewUserHandler(baseHandler, serviceContainer.UserService),
		ProjectHandler:        handlers.NewProjectHandler(baseHandler, serviceContainer.ProjectService),
		MembershipHandler:     handlers.NewMembershipHandler(baseHandler, serviceContainer.MembershipService),
		RecommendationHandler: handlers.NewRecommendationHandler(baseHandler, serviceContainer.RecommendationService, cfg),
		NotificationHandler:   handlers.NewNotificationHandler(baseHandler, serviceContainer.NotificationService),
		VocabularyHandler:     handlers.NewVocabularyHandler(baseHandler, serviceContainer.VocabularyService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
