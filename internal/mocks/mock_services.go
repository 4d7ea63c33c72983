package mocks

import (
	"context"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// MockAuthService implements domain.AuthService for handler tests
type MockAuthService struct {
	LoginFunc                func(ctx context.Context, email, password string, client domain.ClientInfo) (*domain.AuthResult, error)
	LogoutFunc               func(ctx context.Context, sessionID string) error
	ActiveSessionsFunc       func(ctx context.Context, userID uint) ([]domain.Session, error)
	CloseAllSessionsFunc     func(ctx context.Context, userID uint) (int64, error)
	CloseSessionsByEmailFunc func(ctx context.Context, email string) (int64, error)
}

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Login(ctx context.Context, email, password string, client domain.ClientInfo) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, client)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockAuthService) ActiveSessions(ctx context.Context, userID uint) ([]domain.Session, error) {
	if m.ActiveSessionsFunc != nil {
		return m.ActiveSessionsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockAuthService) CloseAllSessions(ctx context.Context, userID uint) (int64, error) {
	if m.CloseAllSessionsFunc != nil {
		return m.CloseAllSessionsFunc(ctx, userID)
	}
	return 0, nil
}

func (m *MockAuthService) CloseSessionsByEmail(ctx context.Context, email string) (int64, error) {
	if m.CloseSessionsByEmailFunc != nil {
		return m.CloseSessionsByEmailFunc(ctx, email)
	}
	return 0, nil
}

// MockProvisioningService implements domain.ProvisioningService for handler tests
type MockProvisioningService struct {
	CreateAccountFunc func(ctx context.Context, req domain.CreateAccountRequest) (*domain.User, error)
}

func NewMockProvisioningService() *MockProvisioningService {
	return &MockProvisioningService{}
}

func (m *MockProvisioningService) CreateAccount(ctx context.Context, req domain.CreateAccountRequest) (*domain.User, error) {
	if m.CreateAccountFunc != nil {
		return m.CreateAccountFunc(ctx, req)
	}
	return &domain.User{ID: 1, Email: req.Email, IsActive: true}, nil
}

// MockAccountService implements domain.AccountService for handler tests
type MockAccountService struct {
	DeactivateFunc func(ctx context.Context, userID uint) error
	RestoreFunc    func(ctx context.Context, userID uint) error
}

func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

func (m *MockAccountService) Deactivate(ctx context.Context, userID uint) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, userID)
	}
	return nil
}

func (m *MockAccountService) Restore(ctx context.Context, userID uint) error {
	if m.RestoreFunc != nil {
		return m.RestoreFunc(ctx, userID)
	}
	return nil
}
