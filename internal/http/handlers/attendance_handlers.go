package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// AttendanceHandlers handles attendance records.
type AttendanceHandlers struct {
	attendanceRepo domain.AttendanceRepository
}

// NewAttendanceHandlers creates new attendance handlers.
func NewAttendanceHandlers(attendanceRepo domain.AttendanceRepository) *AttendanceHandlers {
	return &AttendanceHandlers{attendanceRepo: attendanceRepo}
}

// AttendanceRequest registers one student's presence for one date.
type AttendanceRequest struct {
	StudentID    uint   `json:"id_student" binding:"required"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
	Status       string `json:"status" binding:"required,oneof=present absent late"`
	Observations string `json:"observations"`
}

// AttendanceUpdateRequest corrects status or notes on an existing record.
type AttendanceUpdateRequest struct {
	Status       string `json:"status" binding:"required,oneof=present absent late"`
	Observations string `json:"observations"`
}

// Create handles POST /attendance.
func (h *AttendanceHandlers) Create(c *gin.Context) {
	var req AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	date, _ := time.Parse("2006-01-02", req.Date)
	att := &domain.Attendance{
		StudentID:    req.StudentID,
		Date:         date,
		Status:       req.Status,
		Observations: req.Observations,
	}
	if err := h.attendanceRepo.Create(c.Request.Context(), att); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Asistencia registrada", att)
}

// ListByStudent handles GET /students/:id/attendance.
func (h *AttendanceHandlers) ListByStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	records, err := h.attendanceRepo.ListByStudent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Listado de asistencias", gin.H{"attendance": records})
}

// ListByDate handles GET /attendance?date=YYYY-MM-DD.
func (h *AttendanceHandlers) ListByDate(c *gin.Context) {
	raw := c.Query("date")
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Fecha inválida"})
		return
	}
	records, err := h.attendanceRepo.ListByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Listado de asistencias", gin.H{"attendance": records})
}

// Update handles PUT /attendance/:id.
func (h *AttendanceHandlers) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req AttendanceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	att := &domain.Attendance{ID: id, Status: req.Status, Observations: req.Observations}
	if err := h.attendanceRepo.Update(c.Request.Context(), att); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Asistencia actualizada", nil)
}
