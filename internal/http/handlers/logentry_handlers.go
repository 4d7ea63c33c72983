package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// LogEntryHandlers handles the student practice diary.
type LogEntryHandlers struct {
	logRepo domain.LogEntryRepository
}

// NewLogEntryHandlers creates new log entry handlers.
func NewLogEntryHandlers(logRepo domain.LogEntryRepository) *LogEntryHandlers {
	return &LogEntryHandlers{logRepo: logRepo}
}

// LogEntryRequest carries one diary line.
type LogEntryRequest struct {
	StudentID      uint    `json:"id_student" binding:"required"`
	OrganizationID *uint   `json:"id_organization"`
	Date           string  `json:"date" binding:"required,datetime=2006-01-02"`
	Hours          float64 `json:"hours" binding:"required,gt=0"`
	Activity       string  `json:"activity" binding:"required"`
	Observations   string  `json:"observations"`
}

// Create handles POST /log-entries.
func (h *LogEntryHandlers) Create(c *gin.Context) {
	var req LogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	date, _ := time.Parse("2006-01-02", req.Date)
	entry := &domain.LogEntry{
		StudentID:      req.StudentID,
		OrganizationID: req.OrganizationID,
		Date:           date,
		Hours:          req.Hours,
		Activity:       req.Activity,
		Observations:   req.Observations,
	}
	if err := h.logRepo.Create(c.Request.Context(), entry); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Registro de bitácora creado", entry)
}

// Get handles GET /log-entries/:id.
func (h *LogEntryHandlers) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	entry, err := h.logRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Registro de bitácora", entry)
}

// ListByStudent handles GET /students/:id/log-entries.
func (h *LogEntryHandlers) ListByStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	entries, err := h.logRepo.ListByStudent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Bitácora del estudiante", gin.H{"entries": entries})
}

// Update handles PUT /log-entries/:id.
func (h *LogEntryHandlers) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req LogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	date, _ := time.Parse("2006-01-02", req.Date)
	entry := &domain.LogEntry{
		ID:             id,
		StudentID:      req.StudentID,
		OrganizationID: req.OrganizationID,
		Date:           date,
		Hours:          req.Hours,
		Activity:       req.Activity,
		Observations:   req.Observations,
	}
	if err := h.logRepo.Update(c.Request.Context(), entry); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Registro de bitácora actualizado", entry)
}

// Delete handles DELETE /log-entries/:id.
func (h *LogEntryHandlers) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.logRepo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Registro de bitácora eliminado", nil)
}
