package handlers

import (
	"net/http"
	"time"

	"healthscope/internal/models"
	"healthscope/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	log          *zap.Logger
	catalog      *models.Catalog
	appointments *repository.AppointmentStore
}

func NewAppointmentHandler(log *zap.Logger, catalog *models.Catalog, appointments *repository.AppointmentStore) *AppointmentHandler {
	return &AppointmentHandler{log: log, catalog: catalog, appointments: appointments}
}

// Doctors lists the bookable clinicians and the offered time slots.
func (h *AppointmentHandler) Doctors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"doctors":   h.catalog.DoctorSet,
		"timeSlots": h.catalog.TimeSlots,
	})
}

type bookRequest struct {
	DoctorID string `json:"doctorId"`
	Date     string `json:"date"` // YYYY-MM-DD
	TimeSlot string `json:"timeSlot"`
	Type     string `json:"type"`
	Notes    string `json:"notes"`
}

// Book validates and stores a new appointment. Doctor, date, time slot
// and type are all required; the date must not be in the past.
func (h *AppointmentHandler) Book(c *gin.Context) {
	user := currentUser(c)

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking payload"})
		return
	}

	if req.DoctorID == "" || req.Date == "" || req.TimeSlot == "" || req.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doctor, date, time slot and appointment type are required"})
		return
	}

	doctor, ok := h.catalog.DoctorByID(req.DoctorID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown doctor"})
		return
	}
	if !h.catalog.HasTimeSlot(req.TimeSlot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown time slot"})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	// Compare against local midnight so same-day bookings stay valid
	// regardless of the server's UTC offset.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if date.Before(today) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must not be in the past"})
		return
	}

	appt := models.Appointment{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Specialty:  doctor.Specialty,
		Date:       date,
		TimeSlot:   req.TimeSlot,
		Type:       req.Type,
		Notes:      req.Notes,
		BookedAt:   time.Now(),
	}

	if err := h.appointments.Create(c.Request.Context(), appt); err != nil {
		h.log.Error("Failed to book appointment", zap.Int("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to book appointment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

func (h *AppointmentHandler) List(c *gin.Context) {
	user := currentUser(c)

	appts, err := h.appointments.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
