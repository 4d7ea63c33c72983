package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// AccountServiceImpl implements domain.AccountService. Deactivation
// soft-deletes the user and its profile together, then revokes every active
// session with one bulk close; restore is the symmetric inverse. Both sides
// wrap the user+profile writes in a transaction.
type AccountServiceImpl struct {
	accountRepo domain.AccountRepository
	sessionRepo domain.SessionRepository
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo domain.AccountRepository, sessionRepo domain.SessionRepository) domain.AccountService {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
	}
}

// Deactivate implements domain.AccountService
func (s *AccountServiceImpl) Deactivate(ctx context.Context, userID uint) error {
	if err := s.accountRepo.Deactivate(ctx, userID); err != nil {
		return err
	}
	closed, err := s.sessionRepo.CloseAllForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("account deactivated but session close failed: %w", err)
	}
	log.Printf("ACCOUNT_DEACTIVATED: user_id=%d sessions_closed=%d timestamp=%s",
		userID, closed, time.Now().UTC().Format(time.RFC3339))
	return nil
}

// Restore implements domain.AccountService
func (s *AccountServiceImpl) Restore(ctx context.Context, userID uint) error {
	if err := s.accountRepo.Restore(ctx, userID); err != nil {
		return err
	}
	log.Printf("ACCOUNT_RESTORED: user_id=%d timestamp=%s",
		userID, time.Now().UTC().Format(time.RFC3339))
	return nil
}
