// File: database/repository/doctor/doctor_interface.go
package doctorRepo

import (
	"context"
	"errors"

	"medibook/models"
)

// ErrNotFound is returned when no doctor matches the given ID.
var ErrNotFound = errors.New("doctor not found")

// DoctorRepository defines read access to the doctor directory. Profile
// writes belong to the external doctor-profile service; the booking server
// never creates or edits doctors, and the availability index embedded in the
// doctor document is mutated only through the scheduler repository.
type DoctorRepository interface {
	// GetByID retrieves a doctor by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	// GetAll retrieves the full directory.
	GetAll(ctx context.Context) ([]models.Doctor, error)
	// GetBookedSlots returns a point-in-time copy of the doctor's
	// availability index (date key to reserved time labels).
	GetBookedSlots(ctx context.Context, id string) (map[string][]string, error)
}
