package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeAppointmentComplete = "appointment:complete"

// CompletionPayload identifies the appointment to complete once its slot has
// passed.
type CompletionPayload struct {
	AppointmentID string `json:"appointmentId"`
}

func NewCompletionTask(appointmentID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(CompletionPayload{AppointmentID: appointmentID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentComplete, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
