package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository) *gin.Engine {
	mw := NewAuthMW(tokenSvc, sessionRepo)
	r := gin.New()
	r.GET("/protected", mw.WithJWT(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":    c.GetString("user_id"),
			"session_id": c.GetString("session_id"),
			"role":       c.GetString("user_role"),
		})
	})
	return r
}

func perform(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validClaims() *domain.TokenClaims {
	now := time.Now()
	return &domain.TokenClaims{
		UserID:    7,
		Email:     "alumno@example.com",
		RoleID:    3,
		RoleName:  string(domain.RoleStudent),
		SessionID: "sess-1",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}
}

func TestAuthMW_AllowsActiveSession(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	sessionRepo := mocks.NewMockSessionRepository()

	tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
		require.Equal(t, "good-token", token)
		return validClaims(), nil
	}
	sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		require.Equal(t, "sess-1", sessionID)
		return &domain.Session{ID: sessionID, UserID: 7, Status: domain.SessionActive}, nil
	}

	w := perform(t, newProtectedRouter(tokenSvc, sessionRepo), "Bearer good-token")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"7"`)
	assert.Contains(t, w.Body.String(), `"session_id":"sess-1"`)
}

func TestAuthMW_RejectsMissingOrMalformedHeader(t *testing.T) {
	r := newProtectedRouter(mocks.NewMockTokenService(), mocks.NewMockSessionRepository())

	for _, header := range []string{"", "good-token", "Basic abc"} {
		w := perform(t, r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMW_RejectsInvalidToken(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
		return nil, domain.ErrTokenInvalid
	}

	w := perform(t, newProtectedRouter(tokenSvc, mocks.NewMockSessionRepository()), "Bearer bad")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token inválido")
}

func TestAuthMW_RejectsExpiredToken(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
		return nil, domain.ErrTokenExpired
	}

	w := perform(t, newProtectedRouter(tokenSvc, mocks.NewMockSessionRepository()), "Bearer old")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expirado")
}

func TestAuthMW_RejectsClosedSession(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	sessionRepo := mocks.NewMockSessionRepository()

	tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
		return validClaims(), nil
	}
	sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		return nil, domain.ErrSessionClosed
	}

	w := perform(t, newProtectedRouter(tokenSvc, sessionRepo), "Bearer good-token")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Sesión inválida o cerrada")
}

func TestAuthMW_RejectsSessionUserMismatch(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	sessionRepo := mocks.NewMockSessionRepository()

	tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
		return validClaims(), nil
	}
	sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		return &domain.Session{ID: sessionID, UserID: 99, Status: domain.SessionActive}, nil
	}

	w := perform(t, newProtectedRouter(tokenSvc, sessionRepo), "Bearer good-token")

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
