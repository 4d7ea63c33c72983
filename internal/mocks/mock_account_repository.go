package mocks

import (
	"context"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// MockAccountRepository implements domain.AccountRepository for testing
type MockAccountRepository struct {
	CreateWithProfileFunc func(ctx context.Context, user *domain.User, payload domain.ProfilePayload) error
	DeactivateFunc        func(ctx context.Context, userID uint) error
	RestoreFunc           func(ctx context.Context, userID uint) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

func (m *MockAccountRepository) CreateWithProfile(ctx context.Context, user *domain.User, payload domain.ProfilePayload) error {
	if m.CreateWithProfileFunc != nil {
		return m.CreateWithProfileFunc(ctx, user, payload)
	}
	// Default behavior: success, assign an ID as the database would
	user.ID = 1
	return nil
}

func (m *MockAccountRepository) Deactivate(ctx context.Context, userID uint) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, userID)
	}
	return nil
}

func (m *MockAccountRepository) Restore(ctx context.Context, userID uint) error {
	if m.RestoreFunc != nil {
		return m.RestoreFunc(ctx, userID)
	}
	return nil
}
