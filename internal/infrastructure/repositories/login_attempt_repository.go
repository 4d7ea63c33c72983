package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// LoginAttemptRepositoryImpl implements domain.LoginAttemptRepository. The
// table is append-only; there is no update or delete path.
type LoginAttemptRepositoryImpl struct {
	db *gorm.DB
}

// NewLoginAttemptRepository creates a new login attempt repository.
func NewLoginAttemptRepository(db *gorm.DB) domain.LoginAttemptRepository {
	return &LoginAttemptRepositoryImpl{db: db}
}

// Record implements domain.LoginAttemptRepository
func (r *LoginAttemptRepositoryImpl) Record(ctx context.Context, attempt *domain.LoginAttempt) error {
	dbAttempt := &DBLoginAttempt{
		Email:         attempt.Email,
		IPAddress:     attempt.IPAddress,
		UserAgent:     attempt.UserAgent,
		Status:        attempt.Status,
		FailureReason: attempt.FailureReason,
		UserID:        attempt.UserID,
	}
	if err := r.db.WithContext(ctx).Create(dbAttempt).Error; err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}
	attempt.ID = dbAttempt.ID
	attempt.CreatedAt = dbAttempt.CreatedAt
	return nil
}
