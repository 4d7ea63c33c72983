package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("incorrect password")
	ErrUserInactive    = errors.New("user account is inactive")
	ErrSessionLimit    = errors.New("too many active sessions")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session has been closed")
)

// Provisioning errors
var (
	ErrEmailTaken        = errors.New("email already registered")
	ErrDNITaken          = errors.New("national id already registered")
	ErrCUITTaken         = errors.New("organization tax id already registered")
	ErrPasswordRequired  = errors.New("password or national id required")
	ErrRoleNotConfigured = errors.New("role not configured")
)

// Authorization errors
var (
	ErrForbidden = errors.New("operation not permitted for role")
)

// Lookup errors
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrCourseNotFound       = errors.New("course not found")
	ErrModuleNotFound       = errors.New("course module not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrGroupNotFound        = errors.New("group not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrAttendanceNotFound   = errors.New("attendance record not found")
	ErrLogEntryNotFound     = errors.New("log entry not found")
)

// User-facing messages on the auth path. The API speaks Spanish; these exact
// strings are also persisted as login attempt failure reasons.
const (
	MsgUserNotFound      = "Usuario no encontrado"
	MsgInvalidPassword   = "Contraseña incorrecta"
	MsgSessionLimit      = "Demasiadas sesiones activas"
	MsgLoginOK           = "Inicio de sesión exitoso"
	MsgLogoutOK          = "Sesión cerrada correctamente"
	MsgSessionsClosedOK  = "Sesiones cerradas correctamente"
)
