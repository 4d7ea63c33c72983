package services

import (
	"context"
	"fmt"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// ProvisioningServiceImpl implements domain.ProvisioningService. It resolves
// the role once from the typed payload, derives the initial password and
// hands the writes to the account repository, which commits user, profile
// and enrollment as one unit.
type ProvisioningServiceImpl struct {
	accountRepo domain.AccountRepository
	roleRepo    domain.RoleRepository
	passwordSvc domain.PasswordService
}

// NewProvisioningService creates a new provisioning service.
func NewProvisioningService(
	accountRepo domain.AccountRepository,
	roleRepo domain.RoleRepository,
	passwordSvc domain.PasswordService,
) domain.ProvisioningService {
	return &ProvisioningServiceImpl{
		accountRepo: accountRepo,
		roleRepo:    roleRepo,
		passwordSvc: passwordSvc,
	}
}

// CreateAccount implements domain.ProvisioningService
func (s *ProvisioningServiceImpl) CreateAccount(ctx context.Context, req domain.CreateAccountRequest) (*domain.User, error) {
	role, err := s.roleRepo.FindByName(ctx, req.Payload.Role())
	if err != nil {
		return nil, err
	}

	// The national ID doubles as the initial password when none is given.
	password := req.Password
	if password == "" {
		password = req.Payload.NationalID()
	}
	if password == "" {
		return nil, domain.ErrPasswordRequired
	}

	hash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: hash,
		RoleID:       role.ID,
		IsActive:     true,
	}

	if err := s.accountRepo.CreateWithProfile(ctx, user, req.Payload); err != nil {
		return nil, err
	}

	return user, nil
}
