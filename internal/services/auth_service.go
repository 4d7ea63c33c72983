package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// AuthServiceImpl implements domain.AuthService. Every login attempt is
// persisted to the audit table whatever the outcome; the session count per
// user is bounded before a new session row is created.
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	roleRepo    domain.RoleRepository
	sessionRepo domain.SessionRepository
	attemptRepo domain.LoginAttemptRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	maxSessions int
	tokenTTL    time.Duration
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo domain.UserRepository,
	roleRepo domain.RoleRepository,
	sessionRepo domain.SessionRepository,
	attemptRepo domain.LoginAttemptRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	maxSessions int,
	tokenTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		sessionRepo: sessionRepo,
		attemptRepo: attemptRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		maxSessions: maxSessions,
		tokenTTL:    tokenTTL,
	}
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string, client domain.ClientInfo) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			// An infrastructure failure is not a credential failure and
			// must not pollute the audit trail.
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		s.recordAttempt(ctx, email, client, nil, domain.AttemptFailed, domain.MsgUserNotFound)
		return nil, domain.ErrUserNotFound
	}

	// The lookup succeeded; the audit table gets a success row before the
	// password is even checked, so a later mismatch shows up as a second,
	// distinguishable row.
	s.recordAttempt(ctx, email, client, &user.ID, domain.AttemptSuccess, "")

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		s.recordAttempt(ctx, email, client, &user.ID, domain.AttemptFailed, domain.MsgInvalidPassword)
		return nil, domain.ErrInvalidPassword
	}

	active, err := s.sessionRepo.CountActive(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active sessions: %w", err)
	}
	if active >= int64(s.maxSessions) {
		return nil, domain.ErrSessionLimit
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
		Status:    domain.SessionActive,
		DateStart: time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	role, err := s.roleRepo.FindByID(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenSvc.Generate(user, role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Role:      role,
		Token:     token,
		SessionID: session.ID,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

// Logout implements domain.AuthService. Closing an unknown or already
// closed session succeeds.
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Close(ctx, sessionID)
}

// ActiveSessions implements domain.AuthService
func (s *AuthServiceImpl) ActiveSessions(ctx context.Context, userID uint) ([]domain.Session, error) {
	return s.sessionRepo.ListActive(ctx, userID)
}

// CloseAllSessions implements domain.AuthService
func (s *AuthServiceImpl) CloseAllSessions(ctx context.Context, userID uint) (int64, error) {
	return s.sessionRepo.CloseAllForUser(ctx, userID)
}

// CloseSessionsByEmail implements domain.AuthService. Admin operation:
// resolves the target account by email first.
func (s *AuthServiceImpl) CloseSessionsByEmail(ctx context.Context, email string) (int64, error) {
	user, err := s.userRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	return s.sessionRepo.CloseAllForUser(ctx, user.ID)
}

// recordAttempt appends an audit row. Audit failures must not fail the
// login itself, so they are only logged.
func (s *AuthServiceImpl) recordAttempt(ctx context.Context, email string, client domain.ClientInfo, userID *uint, status, reason string) {
	attempt := &domain.LoginAttempt{
		Email:         email,
		IPAddress:     client.IPAddress,
		UserAgent:     client.UserAgent,
		Status:        status,
		FailureReason: reason,
		UserID:        userID,
	}
	if err := s.attemptRepo.Record(ctx, attempt); err != nil {
		log.Printf("LOGIN_ATTEMPT_AUDIT_FAILED: email=%s error=%v", email, err)
	}
}
