package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// AuthHandlers handles authentication HTTP requests.
type AuthHandlers struct {
	authSvc  domain.AuthService
	userRepo domain.UserRepository
	roleRepo domain.RoleRepository
}

// NewAuthHandlers creates new auth handlers.
func NewAuthHandlers(authSvc domain.AuthService, userRepo domain.UserRepository, roleRepo domain.RoleRepository) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc, userRepo: userRepo, roleRepo: roleRepo}
}

// LoginRequest represents login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CloseByEmailRequest targets another user's sessions by email.
type CloseByEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Login handles POST /auth/login.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	client := domain.ClientInfo{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password, client)
	if err != nil {
		// On the login path an unknown email is an authentication
		// failure, not a 404.
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, Response{Success: false, Message: domain.MsgUserNotFound})
			return
		}
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, domain.MsgLoginOK, gin.H{
		"user": gin.H{
			"id_user": result.User.ID,
			"email":   result.User.Email,
			"role": gin.H{
				"id_role": result.Role.ID,
				"name":    result.Role.Name,
			},
		},
		"token":      result.Token,
		"sessionId":  result.SessionID,
		"expires_in": result.ExpiresIn,
	})
}

// Logout handles POST /auth/logout. The session comes from the validated
// token, and closing an already closed session still succeeds.
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Sesión no encontrada en el token"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, domain.MsgLogoutOK, nil)
}

// Sessions handles GET /auth/sessions, listing the caller's active sessions.
func (h *AuthHandlers) Sessions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, Response{Success: false, Message: "Usuario no encontrado en el token"})
		return
	}

	sessions, err := h.authSvc.ActiveSessions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Sesiones activas", gin.H{"sessions": sessions})
}

// CloseAllSessions handles POST /auth/close-all-sessions for the caller.
func (h *AuthHandlers) CloseAllSessions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, Response{Success: false, Message: "Usuario no encontrado en el token"})
		return
	}

	closed, err := h.authSvc.CloseAllSessions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, domain.MsgSessionsClosedOK, gin.H{"closed": closed})
}

// CloseSessionsByEmail handles POST /auth/admin/close-sessions-by-email.
// Reaching it requires the admin role (route policy).
func (h *AuthHandlers) CloseSessionsByEmail(c *gin.Context) {
	var req CloseByEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	closed, err := h.authSvc.CloseSessionsByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, domain.MsgSessionsClosedOK, gin.H{"closed": closed})
}

// Me handles GET /auth/me.
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, Response{Success: false, Message: "Usuario no encontrado en el token"})
		return
	}

	user, err := h.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	role, err := h.roleRepo.FindByID(c.Request.Context(), user.RoleID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "Perfil de usuario", gin.H{
		"id_user":   user.ID,
		"email":     user.Email,
		"is_active": user.IsActive,
		"role": gin.H{
			"id_role": role.ID,
			"name":    role.Name,
		},
		"created_at": user.CreatedAt,
	})
}

// currentUserID reads the authenticated user's ID set by the middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	str, ok := raw.(string)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(str, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
