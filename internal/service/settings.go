package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/repository"
)

type settingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

// Get returns the site settings, or an empty object before the first write.
func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.Settings{}, nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, settings *domain.Settings) error {
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}
