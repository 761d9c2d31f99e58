package service_test

import (
	"context"
	"io"

	"keeso-backend/internal/domain"
	"keeso-backend/internal/repository"
	"keeso-backend/internal/security"
	"keeso-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockMembershipRepo
type MockMembershipRepo struct {
	mock.Mock
}

func (m *MockMembershipRepo) Create(ctx context.Context, app *domain.MembershipApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockMembershipRepo) GetByID(ctx context.Context, id string) (*domain.MembershipApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipApplication), args.Error(1)
}
func (m *MockMembershipRepo) FindByEmailOrTaxNumber(ctx context.Context, query string) ([]domain.MembershipApplication, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MembershipApplication), args.Error(1)
}
func (m *MockMembershipRepo) List(ctx context.Context, limit, skip int) ([]domain.MembershipApplication, int, error) {
	args := m.Called(ctx, limit, skip)
	return args.Get(0).([]domain.MembershipApplication), args.Int(1), args.Error(2)
}
func (m *MockMembershipRepo) ListPending(ctx context.Context) ([]domain.MembershipApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MembershipApplication), args.Error(1)
}
func (m *MockMembershipRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockMembershipRepo) ListAttachmentURLs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) CountByRole(ctx context.Context, role domain.UserRole) (int, error) {
	args := m.Called(ctx, role)
	return args.Int(0), args.Error(1)
}

// MockResourceRepo
type MockResourceRepo struct {
	mock.Mock
}

func (m *MockResourceRepo) Create(ctx context.Context, res *domain.Resource) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockResourceRepo) GetByID(ctx context.Context, t domain.ResourceType, id string) (*domain.Resource, error) {
	args := m.Called(ctx, t, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}
func (m *MockResourceRepo) List(ctx context.Context, t domain.ResourceType, opts repository.ListOptions) ([]domain.Resource, int, error) {
	args := m.Called(ctx, t, opts)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Resource), args.Int(1), args.Error(2)
}
func (m *MockResourceRepo) Update(ctx context.Context, res *domain.Resource) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockResourceRepo) Delete(ctx context.Context, t domain.ResourceType, id string) error {
	args := m.Called(ctx, t, id)
	return args.Error(0)
}
func (m *MockResourceRepo) ListFileURLs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockContactRepo
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}
func (m *MockContactRepo) List(ctx context.Context, limit, skip int) ([]domain.Contact, int, error) {
	args := m.Called(ctx, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Contact), args.Int(1), args.Error(2)
}

// MockSettingsRepo
type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}
func (m *MockSettingsRepo) Upsert(ctx context.Context, settings *domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockUploadService
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Store(ctx context.Context, filename string, size int64, content io.Reader) (*service.StoredUpload, error) {
	args := m.Called(ctx, filename, size, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StoredUpload), args.Error(1)
}
func (m *MockUploadService) Remove(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendMembershipApplicationNotification(ctx context.Context, app *domain.MembershipApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockEmailService) SendContactFormNotification(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingApplicationsDigest(ctx context.Context, apps []domain.MembershipApplication) error {
	args := m.Called(ctx, apps)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32, email string, role domain.UserRole) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
