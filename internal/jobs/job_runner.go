package jobs

import (
	"database/sql"

	"keeso-backend/internal/config"
	"keeso-backend/internal/logger"
	"keeso-backend/internal/repository/postgres"
	"keeso-backend/internal/service"
	"keeso-backend/internal/storage"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db     *sql.DB
	store  *postgres.Store
	files  storage.StorageInterface
	email  service.EmailService
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, store *postgres.Store, files storage.StorageInterface, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:     db,
		store:  store,
		files:  files,
		email:  email,
		config: cfg,
	}
}

// Config exposes configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllJobs runs every scheduled job once (for manual execution)
func (jr *JobRunner) RunAllJobs() {
	jr.CleanupOrphanedUploads()
	jr.SendPendingApplicationsDigest()
}
