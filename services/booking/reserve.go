package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	doctorRepo "medibook/database/repository/doctor"
	schedulerRepo "medibook/database/repository/scheduler"
	"medibook/models"
	"medibook/services/tasks"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reserve validates the requested slot against the live availability index
// and atomically reserves it. Exactly one of any set of concurrent reserves
// for the same (doctor, date, time) succeeds; the rest get a conflict and
// must re-fetch availability rather than retry the same slot.
func (svc *DefaultBookingService) Reserve(patientID string, req models.ReserveRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if patientID == "" {
		return nil, NewValidationError("patient identity must be present")
	}
	date, err := models.ParseSlotDate(req.SlotDate)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}
	if _, err := models.ParseTimeLabel(req.SlotTime); err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid slot time %q: want %q form", req.SlotTime, models.TimeLabelLayout))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doctor, err := svc.DoctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, NewNotFoundError("doctor not found")
		}
		return nil, err
	}
	if !doctor.Available {
		return nil, NewConflictError("doctor is not taking appointments")
	}

	appt := &models.Appointment{
		ID:               uuid.New().String(),
		DoctorID:         doctor.ID,
		PatientID:        patientID,
		SlotDate:         date.Key(),
		SlotTime:         req.SlotTime,
		Status:           models.StatusBooked,
		CreatedAt:        svc.now(),
		DoctorName:       doctor.Name,
		DoctorSpeciality: doctor.Speciality,
		Amount:           doctor.Fees,
	}

	if err := svc.Scheduler.ReserveSlot(ctx, appt); err != nil {
		switch {
		case errors.Is(err, schedulerRepo.ErrSlotTaken):
			return nil, NewConflictError("slot already booked")
		case errors.Is(err, schedulerRepo.ErrDoctorNotFound):
			return nil, NewNotFoundError("doctor not found")
		default:
			return nil, fmt.Errorf("reserve failed: %w", err)
		}
	}

	svc.dropSnapshot(ctx, doctor.ID)
	svc.scheduleCompletion(appt, svc.scheduleOf(doctor))

	if svc.Notifier != nil {
		go func() {
			if err := svc.Notifier.NotifyAppointmentBooked(context.Background(), appt); err != nil {
				logger.Warn("booked notification failed",
					zap.String("appointmentID", appt.ID), zap.Error(err))
			}
		}()
	}

	return appt, nil
}

// scheduleCompletion enqueues the deferred Booked-to-Completed transition at
// the end of the reserved slot. Missing queue wiring or a bad label only
// costs the automatic completion, never the booking.
func (svc *DefaultBookingService) scheduleCompletion(appt *models.Appointment, wh models.WorkingHours) {
	if svc.Tasks == nil {
		return
	}
	logger := utils.GetLogger()

	date, err := models.ParseSlotDate(appt.SlotDate)
	if err != nil {
		logger.Warn("completion not scheduled: bad slot date",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}
	clock, err := models.ParseTimeLabel(appt.SlotTime)
	if err != nil {
		logger.Warn("completion not scheduled: bad slot time",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}

	start := date.Time(time.Local).
		Add(time.Duration(clock.Hour()) * time.Hour).
		Add(time.Duration(clock.Minute()) * time.Minute)
	fireAt := start.Add(time.Duration(wh.SlotDuration) * time.Minute)

	task, opts, err := tasks.NewCompletionTask(appt.ID, fireAt)
	if err != nil {
		logger.Warn("completion task build failed",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}
	if _, err := svc.Tasks.Enqueue(task, opts...); err != nil {
		logger.Warn("completion task enqueue failed",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}
