package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompletionTask(t *testing.T) {
	fireAt := time.Date(2026, time.September, 8, 10, 30, 0, 0, time.UTC)
	task, opts, err := NewCompletionTask("appt-1", fireAt)
	require.NoError(t, err)

	assert.Equal(t, TypeAppointmentComplete, task.Type())
	assert.Len(t, opts, 1)

	var p CompletionPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, "appt-1", p.AppointmentID)
}
