package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// GroupHandlers handles working group CRUD and membership.
type GroupHandlers struct {
	groupRepo domain.GroupRepository
}

// NewGroupHandlers creates new group handlers.
func NewGroupHandlers(groupRepo domain.GroupRepository) *GroupHandlers {
	return &GroupHandlers{groupRepo: groupRepo}
}

// GroupRequest carries group fields for create and update.
type GroupRequest struct {
	Name      string `json:"name" binding:"required"`
	CourseID  uint   `json:"id_course" binding:"required"`
	TeacherID uint   `json:"id_teacher" binding:"required"`
}

// MemberRequest targets one student for membership changes.
type MemberRequest struct {
	StudentID uint `json:"id_student" binding:"required"`
}

// Create handles POST /groups.
func (h *GroupHandlers) Create(c *gin.Context) {
	var req GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	group := &domain.Group{Name: req.Name, CourseID: req.CourseID, TeacherID: req.TeacherID}
	if err := h.groupRepo.Create(c.Request.Context(), group); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Grupo creado correctamente", group)
}

// Get handles GET /groups/:id.
func (h *GroupHandlers) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	group, err := h.groupRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Grupo", group)
}

// List handles GET /groups.
func (h *GroupHandlers) List(c *gin.Context) {
	groups, err := h.groupRepo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Listado de grupos", gin.H{"groups": groups})
}

// Update handles PUT /groups/:id.
func (h *GroupHandlers) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	group := &domain.Group{ID: id, Name: req.Name, CourseID: req.CourseID, TeacherID: req.TeacherID}
	if err := h.groupRepo.Update(c.Request.Context(), group); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Grupo actualizado correctamente", group)
}

// Delete handles DELETE /groups/:id.
func (h *GroupHandlers) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.groupRepo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Grupo eliminado correctamente", nil)
}

// AddStudent handles POST /groups/:id/students.
func (h *GroupHandlers) AddStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.groupRepo.AddStudent(c.Request.Context(), id, req.StudentID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Estudiante agregado al grupo", nil)
}

// RemoveStudent handles DELETE /groups/:id/students/:studentId.
func (h *GroupHandlers) RemoveStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	studentID, ok := paramID(c, "studentId")
	if !ok {
		return
	}
	if err := h.groupRepo.RemoveStudent(c.Request.Context(), id, studentID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Estudiante quitado del grupo", nil)
}
