package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/mocks"
)

func newUserRouter(provisioningSvc *mocks.MockProvisioningService, accountSvc *mocks.MockAccountService, studentRepo *mocks.MockStudentRepository) *gin.Engine {
	h := NewUserHandlers(provisioningSvc, accountSvc, studentRepo)
	r := gin.New()
	r.POST("/users/students", h.CreateStudent)
	r.POST("/users/teachers", h.CreateTeacher)
	r.POST("/users/admins", h.CreateAdmin)
	r.POST("/users/organization-contacts", h.CreateOrgContact)
	r.DELETE("/users/:id", h.Deactivate)
	r.POST("/users/:id/restore", h.Restore)
	r.GET("/students", h.ListStudents)
	return r
}

func TestUserHandlers_CreateStudent(t *testing.T) {
	provisioningSvc := mocks.NewMockProvisioningService()
	r := newUserRouter(provisioningSvc, mocks.NewMockAccountService(), mocks.NewMockStudentRepository())

	t.Run("created with typed payload", func(t *testing.T) {
		var got domain.CreateAccountRequest
		provisioningSvc.CreateAccountFunc = func(ctx context.Context, req domain.CreateAccountRequest) (*domain.User, error) {
			got = req
			return &domain.User{ID: 12, Email: req.Email, IsActive: true}, nil
		}

		w := performJSON(t, r, http.MethodPost, "/users/students",
			`{"email":"alumno@example.com","name":"Ana","lastname":"Pérez","dni":"40111222","id_course":3}`)

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(12), data["id_user"])

		payload, ok := got.Payload.(domain.StudentPayload)
		require.True(t, ok, "expected a StudentPayload")
		assert.Equal(t, "40111222", payload.DNI)
		assert.Equal(t, uint(3), payload.CourseID)
		assert.Equal(t, domain.RoleStudent, payload.Role())
		assert.Empty(t, got.Password)
	})

	t.Run("missing dni is a 400", func(t *testing.T) {
		w := performJSON(t, r, http.MethodPost, "/users/students",
			`{"email":"alumno@example.com","name":"Ana","lastname":"Pérez","id_course":3}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, "Datos de entrada inválidos", body["message"])
	})

	t.Run("duplicate email is a 409", func(t *testing.T) {
		provisioningSvc.CreateAccountFunc = func(ctx context.Context, req domain.CreateAccountRequest) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		}

		w := performJSON(t, r, http.MethodPost, "/users/students",
			`{"email":"repetido@example.com","name":"Ana","lastname":"Pérez","dni":"40111222","id_course":3}`)

		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown course is a 404", func(t *testing.T) {
		provisioningSvc.CreateAccountFunc = func(ctx context.Context, req domain.CreateAccountRequest) (*domain.User, error) {
			return nil, domain.ErrCourseNotFound
		}

		w := performJSON(t, r, http.MethodPost, "/users/students",
			`{"email":"alumno@example.com","name":"Ana","lastname":"Pérez","dni":"40111222","id_course":99}`)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandlers_CreateTeacher_TutorFlag(t *testing.T) {
	provisioningSvc := mocks.NewMockProvisioningService()
	r := newUserRouter(provisioningSvc, mocks.NewMockAccountService(), mocks.NewMockStudentRepository())

	var got domain.CreateAccountRequest
	provisioningSvc.CreateAccountFunc = func(ctx context.Context, req domain.CreateAccountRequest) (*domain.User, error) {
		got = req
		return &domain.User{ID: 20, Email: req.Email, IsActive: true}, nil
	}

	w := performJSON(t, r, http.MethodPost, "/users/teachers",
		`{"email":"tutor@example.com","name":"Mario","lastname":"Sosa","dni":"30123456","tutor":true}`)

	require.Equal(t, http.StatusCreated, w.Code)
	payload, ok := got.Payload.(domain.TeacherPayload)
	require.True(t, ok)
	assert.Equal(t, domain.RoleTutor, payload.Role())
}

func TestUserHandlers_CreateOrgContact(t *testing.T) {
	provisioningSvc := mocks.NewMockProvisioningService()
	r := newUserRouter(provisioningSvc, mocks.NewMockAccountService(), mocks.NewMockStudentRepository())

	var got domain.CreateAccountRequest
	provisioningSvc.CreateAccountFunc = func(ctx context.Context, req domain.CreateAccountRequest) (*domain.User, error) {
		got = req
		return &domain.User{ID: 30, Email: req.Email, IsActive: true}, nil
	}

	w := performJSON(t, r, http.MethodPost, "/users/organization-contacts",
		`{"email":"contacto@empresa.com","name":"Iris","lastname":"Vega","dni":"29000111","position":"RRHH","id_organization":4}`)

	require.Equal(t, http.StatusCreated, w.Code)
	payload, ok := got.Payload.(domain.OrgContactPayload)
	require.True(t, ok)
	assert.Equal(t, uint(4), payload.OrganizationID)
	assert.Equal(t, domain.RoleOrgTutor, payload.Role())
}

func TestUserHandlers_Deactivate(t *testing.T) {
	accountSvc := mocks.NewMockAccountService()
	r := newUserRouter(mocks.NewMockProvisioningService(), accountSvc, mocks.NewMockStudentRepository())

	t.Run("deactivates by id", func(t *testing.T) {
		var deactivated uint
		accountSvc.DeactivateFunc = func(ctx context.Context, userID uint) error {
			deactivated = userID
			return nil
		}

		w := performJSON(t, r, http.MethodDelete, "/users/12", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(12), deactivated)
	})

	t.Run("unknown user is a 404", func(t *testing.T) {
		accountSvc.DeactivateFunc = func(ctx context.Context, userID uint) error {
			return domain.ErrUserNotFound
		}

		w := performJSON(t, r, http.MethodDelete, "/users/99", "")

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		w := performJSON(t, r, http.MethodDelete, "/users/abc", "")

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandlers_Restore(t *testing.T) {
	accountSvc := mocks.NewMockAccountService()
	r := newUserRouter(mocks.NewMockProvisioningService(), accountSvc, mocks.NewMockStudentRepository())

	var restored uint
	accountSvc.RestoreFunc = func(ctx context.Context, userID uint) error {
		restored = userID
		return nil
	}

	w := performJSON(t, r, http.MethodPost, "/users/12/restore", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(12), restored)
}

func TestUserHandlers_ListStudents(t *testing.T) {
	studentRepo := mocks.NewMockStudentRepository()
	r := newUserRouter(mocks.NewMockProvisioningService(), mocks.NewMockAccountService(), studentRepo)

	studentRepo.ListFunc = func(ctx context.Context) ([]domain.Student, error) {
		return []domain.Student{
			{ID: 1, UserID: 7, Name: "Ana", Lastname: "Pérez", DNI: "40111222"},
			{ID: 2, UserID: 8, Name: "Luis", Lastname: "Gómez", DNI: "38999888"},
		}, nil
	}

	w := performJSON(t, r, http.MethodGet, "/students", "")

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]any)
	students := data["students"].([]any)
	assert.Len(t, students, 2)
}
