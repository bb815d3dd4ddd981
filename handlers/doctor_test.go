package handlers

import (
	"net/http"
	"testing"

	"medibook/models"
	"medibook/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDoctorService struct {
	doctors []models.DoctorDTO
	doc     *models.DoctorDTO
	err     error
}

func (s *stubDoctorService) GetAllDoctors() ([]models.DoctorDTO, error) {
	return s.doctors, s.err
}

func (s *stubDoctorService) GetDoctorByID(id string) (*models.DoctorDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

func newDoctorRouter(svc *stubDoctorService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDoctorHandler(svc)

	r := gin.New()
	r.GET("/api/doctors", h.GetDoctorsHandler)
	r.GET("/api/doctors/:id", h.GetDoctorHandler)
	return r
}

func TestGetDoctorsHandler(t *testing.T) {
	svc := &stubDoctorService{
		doctors: []models.DoctorDTO{
			{ID: "doc-1", Name: "Dr. Achieng", Speciality: "Dermatology", Available: true},
			{ID: "doc-2", Name: "Dr. Otieno", Speciality: "Paediatrics", Available: false},
		},
	}
	w := doRequest(newDoctorRouter(svc), http.MethodGet, "/api/doctors", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"doc-1"`)
	assert.Contains(t, w.Body.String(), `"doc-2"`)
	// The availability index never leaves the service.
	assert.NotContains(t, w.Body.String(), "slotsBooked")
}

func TestGetDoctorHandler(t *testing.T) {
	svc := &stubDoctorService{
		doc: &models.DoctorDTO{ID: "doc-1", Name: "Dr. Achieng", Fees: 50},
	}
	w := doRequest(newDoctorRouter(svc), http.MethodGet, "/api/doctors/doc-1", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Dr. Achieng"`)
}

func TestGetDoctorHandlerNotFound(t *testing.T) {
	svc := &stubDoctorService{err: booking.NewNotFoundError(`doctor "ghost" not found`)}
	w := doRequest(newDoctorRouter(svc), http.MethodGet, "/api/doctors/ghost", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
