package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// CourseHandlers handles course and course-module CRUD.
type CourseHandlers struct {
	courseRepo domain.CourseRepository
}

// NewCourseHandlers creates new course handlers.
func NewCourseHandlers(courseRepo domain.CourseRepository) *CourseHandlers {
	return &CourseHandlers{courseRepo: courseRepo}
}

// CourseRequest carries course fields for create and update.
type CourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Year        int    `json:"year" binding:"required"`
	Description string `json:"description"`
}

// ModuleRequest carries course-module fields for create and update.
type ModuleRequest struct {
	Name        string `json:"name" binding:"required"`
	Hours       int    `json:"hours" binding:"required,min=1"`
	Description string `json:"description"`
}

// Create handles POST /courses.
func (h *CourseHandlers) Create(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	course := &domain.Course{Name: req.Name, Year: req.Year, Description: req.Description}
	if err := h.courseRepo.Create(c.Request.Context(), course); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Curso creado correctamente", course)
}

// Get handles GET /courses/:id.
func (h *CourseHandlers) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	course, err := h.courseRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Curso", course)
}

// List handles GET /courses.
func (h *CourseHandlers) List(c *gin.Context) {
	courses, err := h.courseRepo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Listado de cursos", gin.H{"courses": courses})
}

// Update handles PUT /courses/:id.
func (h *CourseHandlers) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	course := &domain.Course{ID: id, Name: req.Name, Year: req.Year, Description: req.Description}
	if err := h.courseRepo.Update(c.Request.Context(), course); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Curso actualizado correctamente", course)
}

// Delete handles DELETE /courses/:id.
func (h *CourseHandlers) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.courseRepo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Curso eliminado correctamente", nil)
}

// CreateModule handles POST /courses/:id/modules.
func (h *CourseHandlers) CreateModule(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req ModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	module := &domain.CourseModule{CourseID: id, Name: req.Name, Hours: req.Hours, Description: req.Description}
	if err := h.courseRepo.CreateModule(c.Request.Context(), module); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Módulo creado correctamente", module)
}

// ListModules handles GET /courses/:id/modules.
func (h *CourseHandlers) ListModules(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	modules, err := h.courseRepo.ListModules(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Listado de módulos", gin.H{"modules": modules})
}

// UpdateModule handles PUT /modules/:id.
func (h *CourseHandlers) UpdateModule(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req ModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	module := &domain.CourseModule{ID: id, Name: req.Name, Hours: req.Hours, Description: req.Description}
	if err := h.courseRepo.UpdateModule(c.Request.Context(), module); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Módulo actualizado correctamente", module)
}

// DeleteModule handles DELETE /modules/:id.
func (h *CourseHandlers) DeleteModule(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.courseRepo.DeleteModule(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Módulo eliminado correctamente", nil)
}
