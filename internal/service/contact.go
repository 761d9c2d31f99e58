package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/logger"
	"keeso-backend/internal/repository"
)

type contactService struct {
	repo  repository.ContactRepository
	email EmailService
}

func NewContactService(repo repository.ContactRepository, email EmailService) ContactService {
	return &contactService{
		repo:  repo,
		email: email,
	}
}

func (s *contactService) Submit(ctx context.Context, c *domain.Contact) error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" || strings.TrimSpace(c.Message) == "" {
		return fmt.Errorf("%w: name, email and message are required", domain.ErrMissingField)
	}

	c.Status = domain.ContactStatusNew
	if err := s.repo.Create(ctx, c); err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}

	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.email.SendContactFormNotification(notifyCtx, c); err != nil {
			logger.Error("Failed to send contact notification", "id", c.ID, "error", err)
		}
	}()

	return nil
}

func (s *contactService) List(ctx context.Context, limit, skip int) ([]domain.Contact, int, error) {
	return s.repo.List(ctx, limit, skip)
}
