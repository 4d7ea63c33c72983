package mocks

import (
	"context"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// MockSessionRepository implements domain.SessionRepository for testing
type MockSessionRepository struct {
	CreateFunc          func(ctx context.Context, session *domain.Session) error
	FindByIDFunc        func(ctx context.Context, sessionID string) (*domain.Session, error)
	CountActiveFunc     func(ctx context.Context, userID uint) (int64, error)
	ListActiveFunc      func(ctx context.Context, userID uint) ([]domain.Session, error)
	CloseFunc           func(ctx context.Context, sessionID string) error
	CloseAllForUserFunc func(ctx context.Context, userID uint) (int64, error)
}

func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *MockSessionRepository) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, sessionID)
	}
	// Default behavior: not found
	return nil, domain.ErrSessionNotFound
}

func (m *MockSessionRepository) CountActive(ctx context.Context, userID uint) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx, userID)
	}
	return 0, nil
}

func (m *MockSessionRepository) ListActive(ctx context.Context, userID uint) ([]domain.Session, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockSessionRepository) Close(ctx context.Context, sessionID string) error {
	if m.CloseFunc != nil {
		return m.CloseFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockSessionRepository) CloseAllForUser(ctx context.Context, userID uint) (int64, error) {
	if m.CloseAllForUserFunc != nil {
		return m.CloseAllForUserFunc(ctx, userID)
	}
	return 0, nil
}
