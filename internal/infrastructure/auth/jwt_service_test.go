package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

func testUserAndRole() (*domain.User, *domain.Role) {
	user := &domain.User{ID: 7, Email: "alumno@example.com", RoleID: 3, IsActive: true}
	role := &domain.Role{ID: 3, Name: domain.RoleStudent}
	return user, role
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", "classroom-test", time.Hour)
	user, role := testUserAndRole()

	token, err := svc.Generate(user, role, "sess-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("expected user 7, got %d", claims.UserID)
	}
	if claims.Email != "alumno@example.com" {
		t.Errorf("unexpected email %s", claims.Email)
	}
	if claims.RoleID != 3 || claims.RoleName != string(domain.RoleStudent) {
		t.Errorf("unexpected role %d %s", claims.RoleID, claims.RoleName)
	}
	if claims.SessionID != "sess-1" {
		t.Errorf("expected session sess-1, got %s", claims.SessionID)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Error("expiry must be after issuance")
	}
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	user, role := testUserAndRole()
	token, err := NewJWTService("secret-a", "classroom-test", time.Hour).Generate(user, role, "sess-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewJWTService("secret-b", "classroom-test", time.Hour).Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_Validate_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", "classroom-test", -time.Minute)
	user, role := testUserAndRole()

	token, err := svc.Generate(user, role, "sess-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTService_Validate_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", "classroom-test", time.Hour)
	for _, tok := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := svc.Validate(tok); err == nil {
			t.Errorf("token %q validated unexpectedly", tok)
		}
	}
}

func TestJWTService_UniqueJTI(t *testing.T) {
	svc := NewJWTService("test-secret", "classroom-test", time.Hour)
	user, role := testUserAndRole()

	a, err := svc.Generate(user, role, "sess-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := svc.Generate(user, role, "sess-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if a == b {
		t.Error("two tokens for the same session must differ")
	}
}
