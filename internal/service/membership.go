package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/logger"
	"keeso-backend/internal/repository"
)

type membershipService struct {
	repo    repository.MembershipRepository
	uploads UploadService
	email   EmailService
}

func NewMembershipService(repo repository.MembershipRepository, uploads UploadService, email EmailService) MembershipService {
	return &membershipService{
		repo:    repo,
		uploads: uploads,
		email:   email,
	}
}

func (s *membershipService) Submit(ctx context.Context, app *domain.MembershipApplication, files []AttachmentUpload) (*domain.MembershipApplication, error) {
	// Validation happens before anything is persisted: a rejected
	// submission must leave no record and no stored files behind.
	if err := app.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.storeAttachments(ctx, files)
	if err != nil {
		return nil, err
	}

	app.Files = stored
	app.Status = domain.ApplicationStatusPending
	app.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, app); err != nil {
		// The record insert failed after the files landed in storage;
		// remove them now rather than waiting for the cleanup job.
		s.removeAttachments(ctx, stored)
		return nil, fmt.Errorf("failed to create membership application: %w", err)
	}

	logger.Info("Membership application received", "id", app.ID, "attachments", len(app.Files))

	// Notify the admin out of band. A mail failure must never fail the
	// submission the applicant already completed.
	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.email.SendMembershipApplicationNotification(notifyCtx, app); err != nil {
			logger.Error("Failed to send membership notification", "id", app.ID, "error", err)
		}
	}()

	return app, nil
}

func (s *membershipService) Lookup(ctx context.Context, query string) (*domain.ApplicationStatusResult, error) {
	matches, err := s.repo.FindByEmailOrTaxNumber(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, ErrNotFound
	case 1:
		// Minimal projection only: this endpoint is unauthenticated.
		return &domain.ApplicationStatusResult{
			Name:      matches[0].Name,
			Status:    matches[0].Status,
			CreatedAt: matches[0].CreatedAt,
		}, nil
	default:
		// Two applicants sharing a tax number (or a reused email) must
		// never resolve to an arbitrary record.
		logger.Warn("Ambiguous status lookup", "matches", len(matches))
		return nil, ErrAmbiguousLookup
	}
}

func (s *membershipService) List(ctx context.Context, limit, skip int) ([]domain.MembershipApplication, int, error) {
	return s.repo.List(ctx, limit, skip)
}

func (s *membershipService) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.MembershipApplication, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}

	if !app.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, app.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	logger.Info("Membership application status changed", "id", id, "from", app.Status, "to", status)
	app.Status = status
	return app, nil
}

// storeAttachments persists the valid uploads and returns their URLs in
// submission order. Files with an unsupported extension or over the size cap
// are skipped; any other storage failure rolls back what was already stored.
func (s *membershipService) storeAttachments(ctx context.Context, files []AttachmentUpload) ([]string, error) {
	var urls []string
	for _, f := range files {
		if f.Filename == "" {
			continue
		}
		stored, err := s.uploads.Store(ctx, f.Filename, f.Size, f.Content)
		if err != nil {
			if errors.Is(err, ErrUnsupportedFileType) || errors.Is(err, ErrFileTooLarge) {
				logger.Warn("Skipping attachment", "filename", f.Filename, "reason", err)
				continue
			}
			s.removeAttachments(ctx, urls)
			return nil, fmt.Errorf("failed to store attachment %q: %w", f.Filename, err)
		}
		urls = append(urls, stored.URL)
	}
	return urls, nil
}

func (s *membershipService) removeAttachments(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := s.uploads.Remove(ctx, url); err != nil {
			logger.Error("Failed to remove stored attachment", "url", url, "error", err)
		}
	}
}
