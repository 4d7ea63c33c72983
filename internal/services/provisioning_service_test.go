package services

import (
	"context"
	"errors"
	"testing"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/mocks"
)

func newProvisioningServiceForTest(t *testing.T) (domain.ProvisioningService, *mocks.MockAccountRepository, *mocks.MockRoleRepository, *mocks.MockPasswordService) {
	t.Helper()

	accountRepo := mocks.NewMockAccountRepository()
	roleRepo := mocks.NewMockRoleRepository()
	passwordSvc := mocks.NewMockPasswordService()
	return NewProvisioningService(accountRepo, roleRepo, passwordSvc), accountRepo, roleRepo, passwordSvc
}

func TestProvisioningServiceImpl_CreateAccount(t *testing.T) {
	tests := []struct {
		name          string
		req           domain.CreateAccountRequest
		setup         func(*mocks.MockAccountRepository, *mocks.MockRoleRepository)
		expectedError error
		expectedRole  domain.RoleName
		expectedHash  string
	}{
		{
			name: "student with explicit password",
			req: domain.CreateAccountRequest{
				Email:    "alumno@example.com",
				Password: "secreta123",
				Payload:  domain.StudentPayload{Name: "Ana", Lastname: "Pérez", DNI: "40111222", CourseID: 1},
			},
			setup:        func(ar *mocks.MockAccountRepository, rr *mocks.MockRoleRepository) {},
			expectedRole: domain.RoleStudent,
			expectedHash: "hashed_secreta123",
		},
		{
			name: "missing password falls back to the DNI",
			req: domain.CreateAccountRequest{
				Email:   "alumno2@example.com",
				Payload: domain.StudentPayload{Name: "Luis", Lastname: "Gómez", DNI: "38999888", CourseID: 1},
			},
			setup:        func(ar *mocks.MockAccountRepository, rr *mocks.MockRoleRepository) {},
			expectedRole: domain.RoleStudent,
			expectedHash: "hashed_38999888",
		},
		{
			name: "no password and no DNI is rejected",
			req: domain.CreateAccountRequest{
				Email:   "sin-clave@example.com",
				Payload: domain.AdminPayload{Name: "Eva", Lastname: "Ruiz"},
			},
			setup:         func(ar *mocks.MockAccountRepository, rr *mocks.MockRoleRepository) {},
			expectedError: domain.ErrPasswordRequired,
		},
		{
			name: "tutor flag selects the tutor role",
			req: domain.CreateAccountRequest{
				Email:   "tutor@example.com",
				Payload: domain.TeacherPayload{Name: "Mario", Lastname: "Sosa", DNI: "30123456", Tutor: true},
			},
			setup:        func(ar *mocks.MockAccountRepository, rr *mocks.MockRoleRepository) {},
			expectedRole: domain.RoleTutor,
			expectedHash: "hashed_30123456",
		},
		{
			name: "duplicate email surfaces the conflict",
			req: domain.CreateAccountRequest{
				Email:    "repetido@example.com",
				Password: "secreta123",
				Payload:  domain.TeacherPayload{Name: "Iris", Lastname: "Vega", DNI: "29000111"},
			},
			setup: func(ar *mocks.MockAccountRepository, rr *mocks.MockRoleRepository) {
				ar.CreateWithProfileFunc = func(ctx context.Context, user *domain.User, payload domain.ProfilePayload) error {
					return domain.ErrEmailTaken
				}
			},
			expectedError: domain.ErrEmailTaken,
		},
		{
			name: "unconfigured role is rejected",
			req: domain.CreateAccountRequest{
				Email:    "alumno@example.com",
				Password: "secreta123",
				Payload:  domain.StudentPayload{DNI: "40111222", CourseID: 1},
			},
			setup: func(ar *mocks.MockAccountRepository, rr *mocks.MockRoleRepository) {
				rr.FindByNameFunc = func(ctx context.Context, name domain.RoleName) (*domain.Role, error) {
					return nil, domain.ErrRoleNotConfigured
				}
			},
			expectedError: domain.ErrRoleNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, accountRepo, roleRepo, _ := newProvisioningServiceForTest(t)
			tt.setup(accountRepo, roleRepo)

			var gotPayload domain.ProfilePayload
			if accountRepo.CreateWithProfileFunc == nil {
				accountRepo.CreateWithProfileFunc = func(ctx context.Context, user *domain.User, payload domain.ProfilePayload) error {
					gotPayload = payload
					user.ID = 10
					return nil
				}
			}

			user, err := svc.CreateAccount(context.Background(), tt.req)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if user != nil {
					t.Error("expected nil user on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID == 0 {
				t.Error("expected the repository-assigned ID on the returned user")
			}
			if user.Email != tt.req.Email {
				t.Errorf("expected email %s, got %s", tt.req.Email, user.Email)
			}
			if !user.IsActive {
				t.Error("expected a newly provisioned user to be active")
			}
			if user.PasswordHash != tt.expectedHash {
				t.Errorf("expected hash %s, got %s", tt.expectedHash, user.PasswordHash)
			}
			if gotPayload == nil {
				t.Fatal("payload never reached the account repository")
			}
			if gotPayload.Role() != tt.expectedRole {
				t.Errorf("expected role %s, got %s", tt.expectedRole, gotPayload.Role())
			}
		})
	}
}
