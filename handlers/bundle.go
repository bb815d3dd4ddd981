package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Doctor directory endpoints
	GetDoctorsHandler     gin.HandlerFunc
	GetDoctorHandler      gin.HandlerFunc
	GetDoctorSlotsHandler gin.HandlerFunc

	// Appointment endpoints
	ReserveAppointmentHandler gin.HandlerFunc
	ListMyAppointmentsHandler gin.HandlerFunc
	CancelAppointmentHandler  gin.HandlerFunc
}
