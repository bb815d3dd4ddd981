package booking

import (
	"time"

	doctorRepo "medibook/database/repository/doctor"
	schedulerRepo "medibook/database/repository/scheduler"
	"medibook/models"
	"medibook/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// DefaultHorizonDays is the forward window over which slots are generated.
const DefaultHorizonDays = 7

// BookingService is the slot availability and reservation engine. Slot
// windows are advisory; Reserve is the sole authority on whether a slot can
// actually be taken.
type BookingService interface {
	GetWeeklySlots(doctorID string) ([]models.DaySlots, error)
	Reserve(patientID string, req models.ReserveRequest) (*models.Appointment, error)
	Cancel(patientID, appointmentID string) (*models.Appointment, error)
	Complete(appointmentID string) (*models.Appointment, error)
	GetPatientAppointments(patientID string) ([]models.Appointment, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	DoctorRepo doctorRepo.DoctorRepository
	Scheduler  schedulerRepo.SchedulerRepository
	Notifier   notification.NotificationService
	Cache      *redis.Client // optional snapshot cache
	Tasks      *asynq.Client // optional deferred-completion queue
	Clock      func() time.Time
	Horizon    int
	// FallbackHours is the clinic-wide schedule used when a doctor profile
	// carries no usable working hours of its own.
	FallbackHours models.WorkingHours
}

func (svc *DefaultBookingService) now() time.Time {
	if svc.Clock != nil {
		return svc.Clock()
	}
	return time.Now()
}

func (svc *DefaultBookingService) horizonDays() int {
	if svc.Horizon > 0 {
		return svc.Horizon
	}
	return DefaultHorizonDays
}

// scheduleOf resolves the working hours for a doctor: the profile's own
// window when it is usable, otherwise the configured clinic-wide fallback.
func (svc *DefaultBookingService) scheduleOf(d *models.Doctor) models.WorkingHours {
	if d.WorkingHours.Valid() {
		return d.WorkingHours
	}
	if svc.FallbackHours.Valid() {
		return svc.FallbackHours
	}
	return models.DefaultWorkingHours()
}
