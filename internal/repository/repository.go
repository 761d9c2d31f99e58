package repository

import (
	"context"

	"keeso-backend/internal/domain"
)

// ListOptions are the shared list parameters of the content endpoints.
type ListOptions struct {
	Limit    int
	Skip     int
	Category string
	Search   string
}

type MembershipRepository interface {
	// Create persists the application and its attachment references in one
	// transaction. The record must never commit without its declared
	// attachments, or vice versa.
	Create(ctx context.Context, app *domain.MembershipApplication) error
	GetByID(ctx context.Context, id string) (*domain.MembershipApplication, error)
	// FindByEmailOrTaxNumber returns every application whose email or tax
	// number exactly matches query. Disambiguation is the caller's problem.
	FindByEmailOrTaxNumber(ctx context.Context, query string) ([]domain.MembershipApplication, error)
	List(ctx context.Context, limit, skip int) ([]domain.MembershipApplication, int, error)
	ListPending(ctx context.Context) ([]domain.MembershipApplication, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
	// ListAttachmentURLs returns every stored attachment reference, for the
	// orphaned-upload cleanup job.
	ListAttachmentURLs(ctx context.Context) ([]string, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	CountByRole(ctx context.Context, role domain.UserRole) (int, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, res *domain.Resource) error
	GetByID(ctx context.Context, t domain.ResourceType, id string) (*domain.Resource, error)
	List(ctx context.Context, t domain.ResourceType, opts ListOptions) ([]domain.Resource, int, error)
	Update(ctx context.Context, res *domain.Resource) error
	Delete(ctx context.Context, t domain.ResourceType, id string) error
	// ListFileURLs returns every file reference held in resource attributes
	// (file_url, cover_image, gallery_images), for the cleanup job.
	ListFileURLs(ctx context.Context) ([]string, error)
}

type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	List(ctx context.Context, limit, skip int) ([]domain.Contact, int, error)
}

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	// Upsert creates the singleton row on first write and patches only the
	// non-nil fields afterwards.
	Upsert(ctx context.Context, settings *domain.Settings) error
}
