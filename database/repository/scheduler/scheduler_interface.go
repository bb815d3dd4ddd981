// File: database/repository/scheduler/scheduler_interface.go
package schedulerRepo

import (
	"context"
	"errors"

	"medibook/models"
)

var (
	// ErrSlotTaken is returned when the requested slot already carries a
	// reservation at the moment of the atomic check.
	ErrSlotTaken = errors.New("slot already booked")
	// ErrDoctorNotFound is returned when the doctor document does not exist.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrNotFound is returned when no appointment matches the given ID.
	ErrNotFound = errors.New("appointment not found")
	// ErrNotBooked is returned when a transition is attempted on an
	// appointment that is no longer in the Booked status.
	ErrNotBooked = errors.New("appointment is not in Booked status")
)

// SchedulerRepository owns every write to the availability index and the
// appointment collection. ReserveSlot and ReleaseSlot are the only mutation
// paths; each runs as a single Mongo transaction over the doctor document and
// the appointment record, so concurrent calls for the same
// (doctor, date, time) key serialize against each other.
type SchedulerRepository interface {
	// ReserveSlot atomically checks the availability index for
	// (appt.DoctorID, appt.SlotDate, appt.SlotTime) and, if the slot is
	// free, records the label and inserts the appointment. A taken slot
	// yields ErrSlotTaken; an unknown doctor yields ErrDoctorNotFound.
	ReserveSlot(ctx context.Context, appt *models.Appointment) error

	// ReleaseSlot transitions the appointment from Booked to toStatus and
	// removes its time label from the availability index, in one
	// transaction. Returns the updated appointment, ErrNotFound for an
	// unknown ID, or ErrNotBooked when the appointment already left the
	// Booked status.
	ReleaseSlot(ctx context.Context, appointmentID, toStatus string) (*models.Appointment, error)

	// GetByID retrieves a single appointment.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// GetByPatient lists a patient's appointments, newest first.
	GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
}
