package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// AccountRepositoryImpl implements domain.AccountRepository. It owns the
// workflows that touch the users table together with a profile table, so a
// user never exists without its matching profile row.
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// CreateWithProfile implements domain.AccountRepository. The user insert,
// the profile insert and (for students) the enrollment insert share one
// transaction; any failure rolls back all of them.
func (r *AccountRepositoryImpl) CreateWithProfile(ctx context.Context, user *domain.User, payload domain.ProfilePayload) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbUser := &DBUser{
			Email:        user.Email,
			PasswordHash: user.PasswordHash,
			RoleID:       user.RoleID,
			IsActive:     user.IsActive,
		}
		if err := tx.Create(dbUser).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrEmailTaken
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		switch p := payload.(type) {
		case domain.StudentPayload:
			student := &DBStudent{
				UserID:   dbUser.ID,
				Name:     p.Name,
				Lastname: p.Lastname,
				DNI:      p.DNI,
				Phone:    p.Phone,
			}
			if err := tx.Create(student).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return domain.ErrDNITaken
				}
				return fmt.Errorf("failed to create student profile: %w", err)
			}
			enrollment := &DBStudentCourse{
				StudentID:  student.ID,
				CourseID:   p.CourseID,
				EnrolledAt: time.Now(),
			}
			if err := tx.Create(enrollment).Error; err != nil {
				if errors.Is(err, gorm.ErrForeignKeyViolated) {
					return domain.ErrCourseNotFound
				}
				return fmt.Errorf("failed to enroll student: %w", err)
			}
		case domain.TeacherPayload:
			teacher := &DBTeacher{
				UserID:     dbUser.ID,
				Name:       p.Name,
				Lastname:   p.Lastname,
				DNI:        p.DNI,
				Phone:      p.Phone,
				Department: p.Department,
			}
			if err := tx.Create(teacher).Error; err != nil {
				return fmt.Errorf("failed to create teacher profile: %w", err)
			}
		case domain.AdminPayload:
			admin := &DBAdmin{
				UserID:   dbUser.ID,
				Name:     p.Name,
				Lastname: p.Lastname,
				DNI:      p.DNI,
			}
			if err := tx.Create(admin).Error; err != nil {
				return fmt.Errorf("failed to create admin profile: %w", err)
			}
		case domain.OrgContactPayload:
			contact := &DBOrganizationContact{
				UserID:         dbUser.ID,
				OrganizationID: p.OrganizationID,
				Name:           p.Name,
				Lastname:       p.Lastname,
				Position:       p.Position,
				Phone:          p.Phone,
			}
			if err := tx.Create(contact).Error; err != nil {
				if errors.Is(err, gorm.ErrForeignKeyViolated) {
					return domain.ErrOrganizationNotFound
				}
				return fmt.Errorf("failed to create organization contact: %w", err)
			}
		default:
			return fmt.Errorf("unsupported profile payload %T", payload)
		}

		user.ID = dbUser.ID
		return nil
	})
}

// Deactivate implements domain.AccountRepository. The user row and its
// profile row are soft-deleted in lockstep inside one transaction.
func (r *AccountRepositoryImpl) Deactivate(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", userID).Delete(&DBUser{})
		if res.Error != nil {
			return fmt.Errorf("failed to soft delete user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return r.eachProfileTable(tx, func(model any) error {
			return tx.Where("user_id = ?", userID).Delete(model).Error
		})
	})
}

// Restore implements domain.AccountRepository. Both the profile and the
// user row are restored and the account reactivated in one transaction.
func (r *AccountRepositoryImpl) Restore(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().Model(&DBUser{}).Where("id = ?", userID).
			Updates(map[string]any{"deleted_at": nil, "is_active": true})
		if res.Error != nil {
			return fmt.Errorf("failed to restore user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return r.eachProfileTable(tx, func(model any) error {
			return tx.Unscoped().Model(model).Where("user_id = ?", userID).
				Update("deleted_at", nil).Error
		})
	})
}

// eachProfileTable runs fn once per role-specific profile table. Only the
// table matching the user's role holds a row, so the other statements
// affect nothing.
func (r *AccountRepositoryImpl) eachProfileTable(tx *gorm.DB, fn func(model any) error) error {
	for _, model := range []any{&DBStudent{}, &DBTeacher{}, &DBAdmin{}, &DBOrganizationContact{}} {
		if err := fn(model); err != nil {
			return err
		}
	}
	return nil
}
