package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/repository"
)

type contentService struct {
	repo repository.ResourceRepository
}

func NewContentService(repo repository.ResourceRepository) ContentService {
	return &contentService{repo: repo}
}

func (s *contentService) Create(ctx context.Context, t domain.ResourceType, title, category string, attrs map[string]any) (*domain.Resource, error) {
	if attrs == nil {
		attrs = map[string]any{}
	}

	// Page sections are keyed by (page, key): re-creating one replaces the
	// existing section instead of accumulating duplicates.
	if t == domain.ResourcePageSections {
		if existing, err := s.findPageSection(ctx, category, title); err != nil {
			return nil, err
		} else if existing != nil {
			return s.Update(ctx, t, existing.ID, title, category, attrs)
		}
	}

	res := &domain.Resource{
		Type:     t,
		Title:    title,
		Category: category,
		Attrs:    attrs,
	}
	if t == domain.ResourceAnnouncements {
		res.Slug = domain.Slugify(title)
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", t, err)
	}
	return res, nil
}

func (s *contentService) Get(ctx context.Context, t domain.ResourceType, id string) (*domain.Resource, error) {
	res, err := s.repo.GetByID(ctx, t, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load %s: %w", t, err)
	}
	return res, nil
}

func (s *contentService) List(ctx context.Context, t domain.ResourceType, opts repository.ListOptions) ([]domain.Resource, int, error) {
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Skip < 0 {
		opts.Skip = 0
	}
	return s.repo.List(ctx, t, opts)
}

func (s *contentService) Update(ctx context.Context, t domain.ResourceType, id, title, category string, attrs map[string]any) (*domain.Resource, error) {
	if attrs == nil {
		attrs = map[string]any{}
	}
	res := &domain.Resource{
		ID:       id,
		Type:     t,
		Title:    title,
		Category: category,
		Attrs:    attrs,
	}
	if t == domain.ResourceAnnouncements {
		res.Slug = domain.Slugify(title)
	}

	if err := s.repo.Update(ctx, res); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update %s: %w", t, err)
	}
	return res, nil
}

func (s *contentService) Delete(ctx context.Context, t domain.ResourceType, id string) error {
	if err := s.repo.Delete(ctx, t, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete %s: %w", t, err)
	}
	return nil
}

// findPageSection returns the section with the given page (category) and
// key (title), or nil when none exists.
func (s *contentService) findPageSection(ctx context.Context, page, key string) (*domain.Resource, error) {
	sections, _, err := s.repo.List(ctx, domain.ResourcePageSections, repository.ListOptions{
		Limit:    100,
		Category: page,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list page sections: %w", err)
	}
	for i := range sections {
		if sections[i].Title == key {
			return &sections[i], nil
		}
	}
	return nil, nil
}
