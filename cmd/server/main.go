package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "keeso-backend/internal/api/http"
	"keeso-backend/internal/config"
	"keeso-backend/internal/logger"
	"keeso-backend/internal/repository/postgres"
	"keeso-backend/internal/security"
	"keeso-backend/internal/service"
	"keeso-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting KEESO Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Storage configuration", "type", cfg.Storage.Type)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Storage Service
	var storageService storage.StorageInterface
	switch cfg.Storage.Type {
	case "firebase":
		logger.Info("Using firebase storage", "bucket", cfg.Storage.Bucket)
		firebaseStorage, err := storage.NewFirebaseStorageService(context.Background(), cfg.Storage.CredentialsFile, cfg.Storage.Bucket)
		if err != nil {
			logger.Error("Failed to initialize firebase storage", "error", err)
			log.Fatalf("Failed to initialize firebase storage: %v", err)
		}
		storageService = firebaseStorage
	default:
		logger.Info("Using local storage", "upload_dir", cfg.Storage.UploadDir)
		localStorage, err := storage.NewLocalStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize local storage", "error", err)
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		storageService = localStorage
	}

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email)
	uploadSvc := service.NewUploadService(storageService, cfg.MaxFileSizeBytes(), cfg.Storage.AllowedTypes)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	membershipSvc := service.NewMembershipService(store.MembershipRepository, uploadSvc, emailSvc)
	contentSvc := service.NewContentService(store.ResourceRepository)
	contactSvc := service.NewContactService(store.ContactRepository, emailSvc)
	settingsSvc := service.NewSettingsService(store.SettingsRepository)

	// Seed the default administrator on first boot
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		if err := authSvc.EnsureDefaultAdmin(context.Background(), cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
			logger.Error("Failed to ensure default admin", "error", err)
			log.Fatalf("Failed to ensure default admin: %v", err)
		}
	}

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Auth:       authSvc,
		Membership: membershipSvc,
		Content:    contentSvc,
		Contact:    contactSvc,
		Settings:   settingsSvc,
		Uploads:    uploadSvc,
		AuthMW:     authMiddleware,
		Storage:    storageService,
		ServeFiles: cfg.Storage.Type != "firebase",
		BaseURL:    cfg.Server.BaseURL,
		DB:         db,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
