package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"keeso-backend/internal/config"
	"keeso-backend/internal/jobs"
	"keeso-backend/internal/logger"
	"keeso-backend/internal/repository/postgres"
	"keeso-backend/internal/scheduler"
	"keeso-backend/internal/service"
	"keeso-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'cleanup-orphaned-uploads', 'pending-applications-digest', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting KEESO Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Storage Service
	var storageService storage.StorageInterface
	switch cfg.Storage.Type {
	case "firebase":
		firebaseStorage, err := storage.NewFirebaseStorageService(context.Background(), cfg.Storage.CredentialsFile, cfg.Storage.Bucket)
		if err != nil {
			logger.Error("Failed to initialize firebase storage", "error", err)
			log.Fatalf("Failed to initialize firebase storage: %v", err)
		}
		storageService = firebaseStorage
	default:
		localStorage, err := storage.NewLocalStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize local storage", "error", err)
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		storageService = localStorage
	}

	// Initialize Services
	emailService := service.NewEmailService(cfg.Email)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, storageService, emailService, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "cleanup-orphaned-uploads":
		jobRunner.CleanupOrphanedUploads()
	case "pending-applications-digest":
		jobRunner.SendPendingApplicationsDigest()
	case "all":
		jobRunner.RunAllJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - cleanup-orphaned-uploads\n")
		fmt.Printf("  - pending-applications-digest\n")
		fmt.Printf("  - all\n")
		os.Exit(1)
	}
}
