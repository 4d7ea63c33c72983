package mocks

import (
	"context"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// MockRoleRepository implements domain.RoleRepository for testing
type MockRoleRepository struct {
	FindByNameFunc   func(ctx context.Context, name domain.RoleName) (*domain.Role, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.Role, error)
	EnsureSeededFunc func(ctx context.Context) error
}

func NewMockRoleRepository() *MockRoleRepository {
	return &MockRoleRepository{}
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name domain.RoleName) (*domain.Role, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	// Default behavior: every known role resolves with a stable ID
	for i, r := range domain.AllRoles() {
		if r == name {
			return &domain.Role{ID: uint(i + 1), Name: r}, nil
		}
	}
	return nil, domain.ErrRoleNotConfigured
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id uint) (*domain.Role, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	roles := domain.AllRoles()
	if id >= 1 && int(id) <= len(roles) {
		return &domain.Role{ID: id, Name: roles[id-1]}, nil
	}
	return nil, domain.ErrRoleNotConfigured
}

func (m *MockRoleRepository) EnsureSeeded(ctx context.Context) error {
	if m.EnsureSeededFunc != nil {
		return m.EnsureSeededFunc(ctx)
	}
	return nil
}
