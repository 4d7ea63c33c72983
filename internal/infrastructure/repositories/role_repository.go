package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// RoleRepositoryImpl implements domain.RoleRepository over the fixed role
// lookup table.
type RoleRepositoryImpl struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository.
func NewRoleRepository(db *gorm.DB) domain.RoleRepository {
	return &RoleRepositoryImpl{db: db}
}

// FindByName implements domain.RoleRepository
func (r *RoleRepositoryImpl) FindByName(ctx context.Context, name domain.RoleName) (*domain.Role, error) {
	var dbRole DBRole
	err := r.db.WithContext(ctx).Where("name = ?", string(name)).First(&dbRole).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotConfigured
		}
		return nil, err
	}
	return &domain.Role{ID: dbRole.ID, Name: domain.RoleName(dbRole.Name)}, nil
}

// FindByID implements domain.RoleRepository
func (r *RoleRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Role, error) {
	var dbRole DBRole
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbRole).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotConfigured
		}
		return nil, err
	}
	return &domain.Role{ID: dbRole.ID, Name: domain.RoleName(dbRole.Name)}, nil
}

// EnsureSeeded inserts any role rows missing from the fixed set. Existing
// rows are left untouched.
func (r *RoleRepositoryImpl) EnsureSeeded(ctx context.Context) error {
	for _, name := range domain.AllRoles() {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&DBRole{Name: string(name)}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
