package notification

import (
	"context"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// NotificationService is the delivery collaborator. Actual channels (push,
// email, SMS) live outside this server; implementations here only hand the
// event over.
type NotificationService interface {
	NotifyAppointmentBooked(ctx context.Context, appt *models.Appointment) error
	NotifyAppointmentCancelled(ctx context.Context, appt *models.Appointment) error
}

// LogNotificationService records the event and nothing else. It stands in
// wherever a real delivery backend is not wired.
type LogNotificationService struct{}

func (s *LogNotificationService) NotifyAppointmentBooked(ctx context.Context, appt *models.Appointment) error {
	utils.GetLogger().Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", appt.DoctorID),
		zap.String("patientID", appt.PatientID),
		zap.String("slotDate", appt.SlotDate),
		zap.String("slotTime", appt.SlotTime),
	)
	return nil
}

func (s *LogNotificationService) NotifyAppointmentCancelled(ctx context.Context, appt *models.Appointment) error {
	utils.GetLogger().Info("appointment cancelled",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", appt.DoctorID),
		zap.String("patientID", appt.PatientID),
		zap.String("slotDate", appt.SlotDate),
		zap.String("slotTime", appt.SlotTime),
	)
	return nil
}
