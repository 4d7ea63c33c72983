package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// UserHandlers handles account provisioning and lifecycle requests.
type UserHandlers struct {
	provisioningSvc domain.ProvisioningService
	accountSvc      domain.AccountService
	studentRepo     domain.StudentRepository
}

// NewUserHandlers creates new user handlers.
func NewUserHandlers(provisioningSvc domain.ProvisioningService, accountSvc domain.AccountService, studentRepo domain.StudentRepository) *UserHandlers {
	return &UserHandlers{
		provisioningSvc: provisioningSvc,
		accountSvc:      accountSvc,
		studentRepo:     studentRepo,
	}
}

// CreateStudentRequest provisions a student account. Password is optional;
// the DNI is the fallback initial password.
type CreateStudentRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Name     string `json:"name" binding:"required"`
	Lastname string `json:"lastname" binding:"required"`
	DNI      string `json:"dni" binding:"required"`
	Phone    string `json:"phone"`
	CourseID uint   `json:"id_course" binding:"required"`
}

// CreateTeacherRequest provisions a teacher or academic tutor account.
type CreateTeacherRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password"`
	Name       string `json:"name" binding:"required"`
	Lastname   string `json:"lastname" binding:"required"`
	DNI        string `json:"dni" binding:"required"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Tutor      bool   `json:"tutor"`
}

// CreateAdminRequest provisions an administrator account.
type CreateAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Name     string `json:"name" binding:"required"`
	Lastname string `json:"lastname" binding:"required"`
	DNI      string `json:"dni" binding:"required"`
}

// CreateOrgContactRequest provisions a company tutor account tied to an
// organization.
type CreateOrgContactRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password"`
	Name           string `json:"name" binding:"required"`
	Lastname       string `json:"lastname" binding:"required"`
	DNI            string `json:"dni" binding:"required"`
	Phone          string `json:"phone"`
	Position       string `json:"position"`
	OrganizationID uint   `json:"id_organization" binding:"required"`
}

// CreateStudent handles POST /users/students.
func (h *UserHandlers) CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	h.create(c, domain.CreateAccountRequest{
		Email:    req.Email,
		Password: req.Password,
		Payload: domain.StudentPayload{
			Name:     req.Name,
			Lastname: req.Lastname,
			DNI:      req.DNI,
			Phone:    req.Phone,
			CourseID: req.CourseID,
		},
	})
}

// CreateTeacher handles POST /users/teachers.
func (h *UserHandlers) CreateTeacher(c *gin.Context) {
	var req CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	h.create(c, domain.CreateAccountRequest{
		Email:    req.Email,
		Password: req.Password,
		Payload: domain.TeacherPayload{
			Name:       req.Name,
			Lastname:   req.Lastname,
			DNI:        req.DNI,
			Phone:      req.Phone,
			Department: req.Department,
			Tutor:      req.Tutor,
		},
	})
}

// CreateAdmin handles POST /users/admins.
func (h *UserHandlers) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	h.create(c, domain.CreateAccountRequest{
		Email:    req.Email,
		Password: req.Password,
		Payload: domain.AdminPayload{
			Name:     req.Name,
			Lastname: req.Lastname,
			DNI:      req.DNI,
		},
	})
}

// CreateOrgContact handles POST /users/organization-contacts.
func (h *UserHandlers) CreateOrgContact(c *gin.Context) {
	var req CreateOrgContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	h.create(c, domain.CreateAccountRequest{
		Email:    req.Email,
		Password: req.Password,
		Payload: domain.OrgContactPayload{
			OrganizationID: req.OrganizationID,
			Name:           req.Name,
			Lastname:       req.Lastname,
			Position:       req.Position,
			Phone:          req.Phone,
			DNI:            req.DNI,
		},
	})
}

func (h *UserHandlers) create(c *gin.Context, req domain.CreateAccountRequest) {
	user, err := h.provisioningSvc.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Usuario creado correctamente", gin.H{
		"id_user": user.ID,
		"email":   user.Email,
	})
}

// Deactivate handles DELETE /users/:id: soft delete plus session revocation.
func (h *UserHandlers) Deactivate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.accountSvc.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Usuario eliminado correctamente", nil)
}

// Restore handles POST /users/:id/restore.
func (h *UserHandlers) Restore(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.accountSvc.Restore(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Usuario restaurado correctamente", nil)
}

// ListStudents handles GET /students.
func (h *UserHandlers) ListStudents(c *gin.Context) {
	students, err := h.studentRepo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Listado de estudiantes", gin.H{"students": students})
}

// ListStudentsByCourse handles GET /courses/:id/students.
func (h *UserHandlers) ListStudentsByCourse(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	students, err := h.studentRepo.ListByCourse(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Listado de estudiantes", gin.H{"students": students})
}

// paramID parses a numeric path parameter, answering the request itself on
// failure.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Identificador inválido"})
		return 0, false
	}
	return uint(id), true
}
