package models

import "time"

// Appointment lifecycle statuses. Cancelled and Completed are terminal; a
// record in a terminal status is never modified again.
const (
	StatusBooked    = "Booked"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

// Appointment is the durable record of a reservation.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`
	DoctorID  string    `bson:"doctorId" json:"doctorId"`
	PatientID string    `bson:"patientId" json:"patientId"`
	SlotDate  string    `bson:"slotDate" json:"slotDate"` // "d-M-yyyy" availability key
	SlotTime  string    `bson:"slotTime" json:"slotTime"` // label in TimeLabelLayout
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`

	// Denormalized doctor details so listings render without a join.
	DoctorName       string  `bson:"doctorName" json:"doctorName"`
	DoctorSpeciality string  `bson:"doctorSpeciality" json:"doctorSpeciality"`
	Amount           float64 `bson:"amount" json:"amount"`
}

// ReserveRequest is the payload for booking a slot.
type ReserveRequest struct {
	DoctorID string `json:"doctorId" binding:"required"`
	SlotDate string `json:"slotDate" binding:"required"`
	SlotTime string `json:"slotTime" binding:"required"`
}
