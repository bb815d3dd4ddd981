package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	schedulerRepo "medibook/database/repository/scheduler"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// Cancel transitions a Booked appointment to Cancelled and releases its slot
// back into the availability index, in one transaction with the index update
// so a racing reserve never loses its entry. Only the booking patient may
// cancel. Cancelling an appointment that already left the Booked status is an
// invalid transition, not a silent success.
func (svc *DefaultBookingService) Cancel(patientID, appointmentID string) (*models.Appointment, error) {
	if patientID == "" {
		return nil, NewValidationError("patient identity must be present")
	}
	if appointmentID == "" {
		return nil, NewValidationError("appointment id must be present")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	appt, err := svc.Scheduler.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, schedulerRepo.ErrNotFound) {
			return nil, NewNotFoundError("appointment not found")
		}
		return nil, err
	}
	if appt.PatientID != patientID {
		// Do not reveal other patients' appointments.
		return nil, NewNotFoundError("appointment not found")
	}

	released, err := svc.release(ctx, appointmentID, models.StatusCancelled)
	if err != nil {
		return nil, err
	}

	svc.dropSnapshot(ctx, released.DoctorID)

	if svc.Notifier != nil {
		go func() {
			if err := svc.Notifier.NotifyAppointmentCancelled(context.Background(), released); err != nil {
				utils.GetLogger().Warn("cancelled notification failed",
					zap.String("appointmentID", released.ID), zap.Error(err))
			}
		}()
	}

	return released, nil
}

// Complete drives the externally-owned Booked-to-Completed transition. The
// index entry is released as well so Booked appointments and index entries
// stay in lockstep.
func (svc *DefaultBookingService) Complete(appointmentID string) (*models.Appointment, error) {
	if appointmentID == "" {
		return nil, NewValidationError("appointment id must be present")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	completed, err := svc.release(ctx, appointmentID, models.StatusCompleted)
	if err != nil {
		return nil, err
	}
	svc.dropSnapshot(ctx, completed.DoctorID)
	return completed, nil
}

func (svc *DefaultBookingService) release(ctx context.Context, appointmentID, toStatus string) (*models.Appointment, error) {
	released, err := svc.Scheduler.ReleaseSlot(ctx, appointmentID, toStatus)
	if err != nil {
		switch {
		case errors.Is(err, schedulerRepo.ErrNotFound):
			return nil, NewNotFoundError("appointment not found")
		case errors.Is(err, schedulerRepo.ErrNotBooked):
			return nil, NewInvalidTransitionError("appointment is not in Booked status")
		default:
			return nil, fmt.Errorf("release failed: %w", err)
		}
	}
	return released, nil
}

// GetPatientAppointments lists the calling patient's appointments, newest
// first.
func (svc *DefaultBookingService) GetPatientAppointments(patientID string) ([]models.Appointment, error) {
	if patientID == "" {
		return nil, NewValidationError("patient identity must be present")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return svc.Scheduler.GetByPatient(ctx, patientID)
}
