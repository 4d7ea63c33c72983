package mocks

import (
	"context"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// MockStudentRepository implements domain.StudentRepository for testing
type MockStudentRepository struct {
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.Student, error)
	FindByUserIDFunc func(ctx context.Context, userID uint) (*domain.Student, error)
	ListByCourseFunc func(ctx context.Context, courseID uint) ([]domain.Student, error)
	ListFunc         func(ctx context.Context) ([]domain.Student, error)
}

func NewMockStudentRepository() *MockStudentRepository {
	return &MockStudentRepository{}
}

func (m *MockStudentRepository) FindByID(ctx context.Context, id uint) (*domain.Student, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrStudentNotFound
}

func (m *MockStudentRepository) FindByUserID(ctx context.Context, userID uint) (*domain.Student, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrStudentNotFound
}

func (m *MockStudentRepository) ListByCourse(ctx context.Context, courseID uint) ([]domain.Student, error) {
	if m.ListByCourseFunc != nil {
		return m.ListByCourseFunc(ctx, courseID)
	}
	return nil, nil
}

func (m *MockStudentRepository) List(ctx context.Context) ([]domain.Student, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}
