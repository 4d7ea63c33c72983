package services

import (
	"context"
	"errors"
	"testing"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/mocks"
)

func TestAccountServiceImpl_Deactivate(t *testing.T) {
	t.Run("soft delete then bulk session close", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository()
		sessionRepo := mocks.NewMockSessionRepository()
		svc := NewAccountService(accountRepo, sessionRepo)

		var deactivated uint
		accountRepo.DeactivateFunc = func(ctx context.Context, userID uint) error {
			deactivated = userID
			return nil
		}
		var closedFor uint
		sessionRepo.CloseAllForUserFunc = func(ctx context.Context, userID uint) (int64, error) {
			closedFor = userID
			return 2, nil
		}

		if err := svc.Deactivate(context.Background(), 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deactivated != 5 || closedFor != 5 {
			t.Errorf("expected user 5 deactivated and sessions closed, got %d and %d", deactivated, closedFor)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository()
		sessionRepo := mocks.NewMockSessionRepository()
		svc := NewAccountService(accountRepo, sessionRepo)

		accountRepo.DeactivateFunc = func(ctx context.Context, userID uint) error {
			return domain.ErrUserNotFound
		}
		sessionRepo.CloseAllForUserFunc = func(ctx context.Context, userID uint) (int64, error) {
			t.Error("sessions must not be touched when the delete fails")
			return 0, nil
		}

		if err := svc.Deactivate(context.Background(), 99); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("session close failure is reported", func(t *testing.T) {
		accountRepo := mocks.NewMockAccountRepository()
		sessionRepo := mocks.NewMockSessionRepository()
		svc := NewAccountService(accountRepo, sessionRepo)

		sessionRepo.CloseAllForUserFunc = func(ctx context.Context, userID uint) (int64, error) {
			return 0, errors.New("redis down")
		}

		if err := svc.Deactivate(context.Background(), 5); err == nil {
			t.Fatal("expected an error when the session close fails")
		}
	})
}

func TestAccountServiceImpl_Restore(t *testing.T) {
	accountRepo := mocks.NewMockAccountRepository()
	sessionRepo := mocks.NewMockSessionRepository()
	svc := NewAccountService(accountRepo, sessionRepo)

	var restored uint
	accountRepo.RestoreFunc = func(ctx context.Context, userID uint) error {
		restored = userID
		return nil
	}

	if err := svc.Restore(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored != 5 {
		t.Errorf("expected user 5 restored, got %d", restored)
	}

	accountRepo.RestoreFunc = func(ctx context.Context, userID uint) error {
		return domain.ErrUserNotFound
	}
	if err := svc.Restore(context.Background(), 99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
