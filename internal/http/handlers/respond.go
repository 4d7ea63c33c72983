package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// respondBindError turns gin binding failures into a 400 with a field-level
// errors array.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Datos de entrada inválidos", Errors: fields})
		return
	}
	c.JSON(http.StatusBadRequest, Response{Success: false, Message: err.Error()})
}

// respondError maps domain sentinel errors onto the HTTP taxonomy:
// 401 authentication, 403 authorization, 404 missing entity, 409 duplicate
// identity, 400 bad input, 500 everything else.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Error interno del servidor"

	switch {
	case errors.Is(err, domain.ErrInvalidPassword):
		status, message = http.StatusUnauthorized, domain.MsgInvalidPassword
	case errors.Is(err, domain.ErrSessionLimit):
		status, message = http.StatusUnauthorized, domain.MsgSessionLimit
	case errors.Is(err, domain.ErrUserInactive),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenMalformed),
		errors.Is(err, domain.ErrSessionClosed):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrStudentNotFound),
		errors.Is(err, domain.ErrCourseNotFound),
		errors.Is(err, domain.ErrModuleNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrGroupNotFound),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrAttendanceNotFound),
		errors.Is(err, domain.ErrLogEntryNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrDNITaken),
		errors.Is(err, domain.ErrCUITTaken):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrPasswordRequired):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrRoleNotConfigured):
		status, message = http.StatusInternalServerError, err.Error()
	}

	c.JSON(status, Response{Success: false, Message: message})
}
