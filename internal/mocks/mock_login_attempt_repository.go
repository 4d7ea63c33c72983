package mocks

import (
	"context"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// MockLoginAttemptRepository implements domain.LoginAttemptRepository for
// testing. By default every recorded attempt is collected in Recorded so
// tests can assert on the audit trail.
type MockLoginAttemptRepository struct {
	RecordFunc func(ctx context.Context, attempt *domain.LoginAttempt) error
	Recorded   []domain.LoginAttempt
}

func NewMockLoginAttemptRepository() *MockLoginAttemptRepository {
	return &MockLoginAttemptRepository{}
}

func (m *MockLoginAttemptRepository) Record(ctx context.Context, attempt *domain.LoginAttempt) error {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, attempt)
	}
	m.Recorded = append(m.Recorded, *attempt)
	return nil
}
