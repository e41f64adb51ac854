package app

import (
	"context"
	"fmt"
	"time"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/database"
	"portfolio_backend/internal/email"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/routes"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/storage"
	"portfolio_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run wires the whole application and starts the HTTP server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}

	logger.Init(cfg.Server.Env)
	apperrors.Debug = cfg.Server.Env == "development"
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate schema", "error", err)
	}

	router, err := SetupRouter(cfg, db)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	// Provision the admin on first start so login works out of the box.
	if cfg.Admin.Password != "" {
		tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Hour)
		authService := services.NewAuthService(repositories.NewUserRepository(db), tokens)
		if err := authService.EnsureAdmin(context.Background(), cfg.Admin.Username, cfg.Admin.Password); err != nil {
			logger.Fatal("Failed to provision admin user", "error", err)
		}
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the gin engine with all dependencies constructed
// explicitly; nothing is read from ambient globals.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	store, err := storage.New(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Hour)

	var mailer email.Mailer
	if cfg.Email.SMTPHost != "" {
		mailer, err = email.NewSMTPMailer(email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mailer: %w", err)
		}
	} else {
		mailer = email.LogMailer{}
	}

	appHandlers := buildHandlers(cfg, db, store, tokens, mailer)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORS(),
	)

	// Uploaded assets are served straight from disk for the local backend.
	if local, ok := store.(*storage.LocalStorage); ok {
		router.Static("/uploads", local.BasePath())
	}

	routes.RegisterRoutes(router, appHandlers, middleware.AuthMiddleware(tokens))

	return router, nil
}

func buildHandlers(cfg *config.Config, db *gorm.DB, store storage.Storage, tokens *auth.TokenManager, mailer email.Mailer) *handlers.AppHandlers {
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	experienceRepo := repositories.NewExperienceRepository(db)
	educationRepo := repositories.NewEducationRepository(db)
	achievementRepo := repositories.NewAchievementRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	authService := services.NewAuthService(userRepo, tokens)
	projectService := services.NewProjectService(projectRepo)
	experienceService := services.NewExperienceService(experienceRepo)
	educationService := services.NewEducationService(educationRepo)
	achievementService := services.NewAchievementService(achievementRepo)
	reviewService := services.NewReviewService(reviewRepo)
	uploadService := services.NewUploadService(store, services.UploadConfig{
		MaxImageSize:  cfg.Upload.MaxImageSize,
		MaxResumeSize: cfg.Upload.MaxResumeSize,
	})
	contactService := services.NewContactService(mailer, services.ContactConfig{
		FromEmail:    cfg.Email.FromEmail,
		ContactEmail: cfg.Email.ContactEmail,
	})

	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(base, authService),
		ProjectHandler:     handlers.NewProjectHandler(base, projectService),
		ExperienceHandler:  handlers.NewExperienceHandler(base, experienceService),
		EducationHandler:   handlers.NewEducationHandler(base, educationService),
		AchievementHandler: handlers.NewAchievementHandler(base, achievementService),
		ReviewHandler:      handlers.NewReviewHandler(base, reviewService),
		UploadHandler:      handlers.NewUploadHandler(base, uploadService),
		ContactHandler:     handlers.NewContactHandler(base, contactService),
		HealthHandler:      handlers.NewHealthHandler(),
	}
}
