package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves slot availability and appointment lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// GetDoctorSlotsHandler returns the rolling week of open slots for a doctor.
// The window is advisory; reservation is revalidated atomically on booking.
func (h *BookingHandler) GetDoctorSlotsHandler(c *gin.Context) {
	doctorID := c.Param("id")

	days, err := h.Service.GetWeeklySlots(doctorID)
	if err != nil {
		h.Logger.Warn("Failed to compute slot window", zap.String("doctorId", doctorID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctorId": doctorID, "days": days})
}

// ReserveAppointmentHandler books a slot for the authenticated patient.
func (h *BookingHandler) ReserveAppointmentHandler(c *gin.Context) {
	var req models.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	patientID := c.GetString("patientID")
	appt, err := h.Service.Reserve(patientID, req)
	if err != nil {
		h.Logger.Warn("Reservation failed",
			zap.String("patientId", patientID),
			zap.String("doctorId", req.DoctorID),
			zap.String("slotDate", req.SlotDate),
			zap.String("slotTime", req.SlotTime),
			zap.Error(err))
		respondError(c, err)
		return
	}

	h.Logger.Info("Appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("doctorId", appt.DoctorID),
		zap.String("slotDate", appt.SlotDate),
		zap.String("slotTime", appt.SlotTime))
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// ListMyAppointmentsHandler returns the authenticated patient's appointments,
// newest first.
func (h *BookingHandler) ListMyAppointmentsHandler(c *gin.Context) {
	patientID := c.GetString("patientID")

	appts, err := h.Service.GetPatientAppointments(patientID)
	if err != nil {
		h.Logger.Error("Failed to list appointments", zap.String("patientId", patientID), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// CancelAppointmentHandler cancels a Booked appointment owned by the
// authenticated patient and releases its slot.
func (h *BookingHandler) CancelAppointmentHandler(c *gin.Context) {
	patientID := c.GetString("patientID")
	appointmentID := c.Param("id")

	appt, err := h.Service.Cancel(patientID, appointmentID)
	if err != nil {
		h.Logger.Warn("Cancellation failed",
			zap.String("patientId", patientID),
			zap.String("appointmentId", appointmentID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	h.Logger.Info("Appointment cancelled", zap.String("appointmentId", appt.ID))
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}
