package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// TaskHandlers handles task CRUD.
type TaskHandlers struct {
	taskRepo domain.TaskRepository
}

// NewTaskHandlers creates new task handlers.
func NewTaskHandlers(taskRepo domain.TaskRepository) *TaskHandlers {
	return &TaskHandlers{taskRepo: taskRepo}
}

// TaskRequest carries task fields. A task targets a group or a single
// student.
type TaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	GroupID     *uint      `json:"id_group"`
	StudentID   *uint      `json:"id_student"`
	DueDate     *time.Time `json:"due_date"`
}

// StatusRequest updates only the workflow status.
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress done"`
}

// Create handles POST /tasks.
func (h *TaskHandlers) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		GroupID:     req.GroupID,
		StudentID:   req.StudentID,
		Status:      domain.TaskPending,
		DueDate:     req.DueDate,
	}
	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Tarea creada correctamente", task)
}

// Get handles GET /tasks/:id.
func (h *TaskHandlers) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	task, err := h.taskRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Tarea", task)
}

// List handles GET /tasks.
func (h *TaskHandlers) List(c *gin.Context) {
	tasks, err := h.taskRepo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Listado de tareas", gin.H{"tasks": tasks})
}

// ListByStudent handles GET /students/:id/tasks.
func (h *TaskHandlers) ListByStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	tasks, err := h.taskRepo.ListByStudent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Listado de tareas", gin.H{"tasks": tasks})
}

// Update handles PUT /tasks/:id.
func (h *TaskHandlers) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	existing, err := h.taskRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	task := &domain.Task{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		GroupID:     req.GroupID,
		StudentID:   req.StudentID,
		Status:      existing.Status,
		DueDate:     req.DueDate,
	}
	if err := h.taskRepo.Update(c.Request.Context(), task); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Tarea actualizada correctamente", task)
}

// UpdateStatus handles PATCH /tasks/:id/status.
func (h *TaskHandlers) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	task, err := h.taskRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	task.Status = req.Status
	if err := h.taskRepo.Update(c.Request.Context(), task); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Estado de la tarea actualizado", task)
}

// Delete handles DELETE /tasks/:id.
func (h *TaskHandlers) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.taskRepo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Tarea eliminada correctamente", nil)
}
