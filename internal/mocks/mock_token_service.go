package mocks

import (
	"time"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(user *domain.User, role *domain.Role, sessionID string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Generate(user *domain.User, role *domain.Role, sessionID string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(user, role, sessionID)
	}
	return "mock_token", nil
}

func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	if token != "mock_token" {
		return nil, domain.ErrTokenInvalid
	}
	now := time.Now()
	return &domain.TokenClaims{
		UserID:    1,
		Email:     "user@example.com",
		RoleID:    1,
		RoleName:  string(domain.RoleAdministrator),
		SessionID: "mock-session",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}
