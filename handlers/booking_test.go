package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medibook/models"
	"medibook/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubBookingService returns canned results per method.
type stubBookingService struct {
	slots        []models.DaySlots
	slotsErr     error
	appt         *models.Appointment
	reserveErr   error
	cancelErr    error
	appointments []models.Appointment
	listErr      error
}

func (s *stubBookingService) GetWeeklySlots(doctorID string) ([]models.DaySlots, error) {
	return s.slots, s.slotsErr
}

func (s *stubBookingService) Reserve(patientID string, req models.ReserveRequest) (*models.Appointment, error) {
	if s.reserveErr != nil {
		return nil, s.reserveErr
	}
	return s.appt, nil
}

func (s *stubBookingService) Cancel(patientID, appointmentID string) (*models.Appointment, error) {
	if s.cancelErr != nil {
		return nil, s.cancelErr
	}
	return s.appt, nil
}

func (s *stubBookingService) Complete(appointmentID string) (*models.Appointment, error) {
	return s.appt, nil
}

func (s *stubBookingService) GetPatientAppointments(patientID string) ([]models.Appointment, error) {
	return s.appointments, s.listErr
}

func newTestRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/api/doctors/:id/slots", h.GetDoctorSlotsHandler)

	authed := r.Group("/api/appointments")
	authed.Use(func(c *gin.Context) { c.Set("patientID", "patient-1") })
	authed.POST("", h.ReserveAppointmentHandler)
	authed.GET("", h.ListMyAppointmentsHandler)
	authed.POST("/:id/cancel", h.CancelAppointmentHandler)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetDoctorSlotsHandler(t *testing.T) {
	svc := &stubBookingService{
		slots: []models.DaySlots{
			{
				Date:  models.SlotDate{Day: 7, Month: 9, Year: 2026},
				Slots: []models.Slot{{Datetime: time.Now(), Time: "10:00 AM"}},
			},
		},
	}
	w := doRequest(newTestRouter(svc), http.MethodGet, "/api/doctors/doc-1/slots", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"doctorId":"doc-1"`)
	assert.Contains(t, w.Body.String(), `"10:00 AM"`)
}

func TestGetDoctorSlotsHandlerNotFound(t *testing.T) {
	svc := &stubBookingService{slotsErr: booking.NewNotFoundError("doctor not found")}
	w := doRequest(newTestRouter(svc), http.MethodGet, "/api/doctors/ghost/slots", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReserveAppointmentHandler(t *testing.T) {
	svc := &stubBookingService{
		appt: &models.Appointment{ID: "appt-1", Status: models.StatusBooked},
	}
	body := `{"doctorId":"doc-1","slotDate":"8-9-2026","slotTime":"10:00 AM"}`
	w := doRequest(newTestRouter(svc), http.MethodPost, "/api/appointments", body)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"appt-1"`)
}

func TestReserveAppointmentHandlerRejectsBadBody(t *testing.T) {
	svc := &stubBookingService{}
	// slotTime missing, fails binding.
	body := `{"doctorId":"doc-1","slotDate":"8-9-2026"}`
	w := doRequest(newTestRouter(svc), http.MethodPost, "/api/appointments", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReserveAppointmentHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"conflict", booking.NewConflictError("slot already booked"), http.StatusConflict},
		{"not found", booking.NewNotFoundError("doctor not found"), http.StatusNotFound},
		{"validation", booking.NewValidationError("bad slot date"), http.StatusBadRequest},
		{"internal", errors.New("mongo unreachable"), http.StatusInternalServerError},
	}
	body := `{"doctorId":"doc-1","slotDate":"8-9-2026","slotTime":"10:00 AM"}`
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubBookingService{reserveErr: tc.err}
			w := doRequest(newTestRouter(svc), http.MethodPost, "/api/appointments", body)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestCancelAppointmentHandler(t *testing.T) {
	svc := &stubBookingService{
		appt: &models.Appointment{ID: "appt-1", Status: models.StatusCancelled},
	}
	w := doRequest(newTestRouter(svc), http.MethodPost, "/api/appointments/appt-1/cancel", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.StatusCancelled)
}

func TestCancelAppointmentHandlerInvalidTransition(t *testing.T) {
	svc := &stubBookingService{cancelErr: booking.NewInvalidTransitionError("appointment is not in Booked status")}
	w := doRequest(newTestRouter(svc), http.MethodPost, "/api/appointments/appt-1/cancel", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListMyAppointmentsHandler(t *testing.T) {
	svc := &stubBookingService{
		appointments: []models.Appointment{
			{ID: "appt-1", Status: models.StatusBooked},
			{ID: "appt-2", Status: models.StatusCancelled},
		},
	}
	w := doRequest(newTestRouter(svc), http.MethodGet, "/api/appointments", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"appt-1"`)
	assert.Contains(t, w.Body.String(), `"appt-2"`)
}
