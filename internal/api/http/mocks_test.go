package http

import (
	"context"
	"io"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/repository"
	"keeso-backend/internal/security"
	"keeso-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

// adminToken returns a bearer token the test router accepts.
func adminToken() string {
	tm := security.NewTokenManager(testJWTSecret, 60)
	token, err := tm.GenerateAccessToken(1, "admin@keeso.org.tr", domain.UserRoleAdmin)
	if err != nil {
		panic(err)
	}
	return token
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}
func (m *MockAuthService) EnsureDefaultAdmin(ctx context.Context, email, password, name string) error {
	args := m.Called(ctx, email, password, name)
	return args.Error(0)
}

// MockMembershipService
type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) Submit(ctx context.Context, app *domain.MembershipApplication, files []service.AttachmentUpload) (*domain.MembershipApplication, error) {
	args := m.Called(ctx, app, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipApplication), args.Error(1)
}
func (m *MockMembershipService) Lookup(ctx context.Context, query string) (*domain.ApplicationStatusResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationStatusResult), args.Error(1)
}
func (m *MockMembershipService) List(ctx context.Context, limit, skip int) ([]domain.MembershipApplication, int, error) {
	args := m.Called(ctx, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.MembershipApplication), args.Int(1), args.Error(2)
}
func (m *MockMembershipService) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.MembershipApplication, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipApplication), args.Error(1)
}

// MockContentService
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Create(ctx context.Context, t domain.ResourceType, title, category string, attrs map[string]any) (*domain.Resource, error) {
	args := m.Called(ctx, t, title, category, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}
func (m *MockContentService) Get(ctx context.Context, t domain.ResourceType, id string) (*domain.Resource, error) {
	args := m.Called(ctx, t, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}
func (m *MockContentService) List(ctx context.Context, t domain.ResourceType, opts repository.ListOptions) ([]domain.Resource, int, error) {
	args := m.Called(ctx, t, opts)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Resource), args.Int(1), args.Error(2)
}
func (m *MockContentService) Update(ctx context.Context, t domain.ResourceType, id, title, category string, attrs map[string]any) (*domain.Resource, error) {
	args := m.Called(ctx, t, id, title, category, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}
func (m *MockContentService) Delete(ctx context.Context, t domain.ResourceType, id string) error {
	args := m.Called(ctx, t, id)
	return args.Error(0)
}

// MockContactService
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}
func (m *MockContactService) List(ctx context.Context, limit, skip int) ([]domain.Contact, int, error) {
	args := m.Called(ctx, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Contact), args.Int(1), args.Error(2)
}

// MockSettingsService
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}
func (m *MockSettingsService) Update(ctx context.Context, settings *domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockUploadSvc
type MockUploadSvc struct {
	mock.Mock
}

func (m *MockUploadSvc) Store(ctx context.Context, filename string, size int64, content io.Reader) (*service.StoredUpload, error) {
	args := m.Called(ctx, filename, size, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StoredUpload), args.Error(1)
}
func (m *MockUploadSvc) Remove(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

type testRouterMocks struct {
	auth       *MockAuthService
	membership *MockMembershipService
	content    *MockContentService
	contact    *MockContactService
	settings   *MockSettingsService
	uploads    *MockUploadSvc
}

func newTestRouter() (*testRouterMocks, *mux.Router) {
	m := &testRouterMocks{
		auth:       new(MockAuthService),
		membership: new(MockMembershipService),
		content:    new(MockContentService),
		contact:    new(MockContactService),
		settings:   new(MockSettingsService),
		uploads:    new(MockUploadSvc),
	}
	router := NewRouter(RouterConfig{
		Auth:       m.auth,
		Membership: m.membership,
		Content:    m.content,
		Contact:    m.contact,
		Settings:   m.settings,
		Uploads:    m.uploads,
		AuthMW:     NewAuthMiddleware(security.NewTokenManager(testJWTSecret, 60)),
		BaseURL:    "http://localhost:8080",
	})
	return m, router
}
