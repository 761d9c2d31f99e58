package service

import (
	"context"
	"io"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/repository"
)

// AttachmentUpload is one file received in a multipart submission, not yet
// validated or stored.
type AttachmentUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// StoredUpload is the result of persisting one file.
type StoredUpload struct {
	Filename string `json:"filename"`
	URL      string `json:"file_url"`
}

type AuthService interface {
	// Login exchanges credentials for a bearer token and the user it
	// belongs to.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// EnsureDefaultAdmin seeds the configured administrator when no admin
	// account exists yet.
	EnsureDefaultAdmin(ctx context.Context, email, password, name string) error
}

type MembershipService interface {
	// Submit validates the application, persists the attachments and the
	// record, and returns the stored application. Nothing persists when
	// validation fails; stored files are removed when the record insert
	// fails afterwards.
	Submit(ctx context.Context, app *domain.MembershipApplication, files []AttachmentUpload) (*domain.MembershipApplication, error)
	// Lookup answers the public status query. The value is matched exactly
	// against email and tax number; zero matches is ErrNotFound, more than
	// one is ErrAmbiguousLookup.
	Lookup(ctx context.Context, query string) (*domain.ApplicationStatusResult, error)
	List(ctx context.Context, limit, skip int) ([]domain.MembershipApplication, int, error)
	// UpdateStatus performs the administrative lifecycle transition. Only
	// pending applications can move, and only to approved or rejected.
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.MembershipApplication, error)
}

type ContentService interface {
	Create(ctx context.Context, t domain.ResourceType, title, category string, attrs map[string]any) (*domain.Resource, error)
	Get(ctx context.Context, t domain.ResourceType, id string) (*domain.Resource, error)
	List(ctx context.Context, t domain.ResourceType, opts repository.ListOptions) ([]domain.Resource, int, error)
	Update(ctx context.Context, t domain.ResourceType, id, title, category string, attrs map[string]any) (*domain.Resource, error)
	Delete(ctx context.Context, t domain.ResourceType, id string) error
}

type ContactService interface {
	Submit(ctx context.Context, contact *domain.Contact) error
	List(ctx context.Context, limit, skip int) ([]domain.Contact, int, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, settings *domain.Settings) error
}

type UploadService interface {
	// Store validates the file against the extension whitelist and size
	// cap, writes it under a unique name, and returns its public URL.
	Store(ctx context.Context, filename string, size int64, content io.Reader) (*StoredUpload, error)
	// Remove deletes a stored file by the URL Store returned. Unknown URLs
	// are ignored.
	Remove(ctx context.Context, url string) error
}

type EmailService interface {
	SendMembershipApplicationNotification(ctx context.Context, app *domain.MembershipApplication) error
	SendContactFormNotification(ctx context.Context, contact *domain.Contact) error
	SendPendingApplicationsDigest(ctx context.Context, apps []domain.MembershipApplication) error
}
