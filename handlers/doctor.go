package handlers

import (
	"net/http"

	"medibook/services/doctor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the read-only doctor directory.
type DoctorHandler struct {
	Service doctor.DoctorService
}

func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// GetDoctorsHandler returns the public view of every doctor.
func (h *DoctorHandler) GetDoctorsHandler(c *gin.Context) {
	logger := getLogger(c)

	doctors, err := h.Service.GetAllDoctors()
	if err != nil {
		logger.Error("Failed to retrieve doctors", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// GetDoctorHandler returns details for a specific doctor.
func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	doc, err := h.Service.GetDoctorByID(id)
	if err != nil {
		logger.Warn("Doctor lookup failed", zap.String("id", id), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
