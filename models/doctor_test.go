package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWorkingHours(t *testing.T) {
	wh := DefaultWorkingHours()
	assert.Equal(t, WorkingHours{StartHour: 10, EndHour: 21, SlotDuration: 30}, wh)
	assert.True(t, wh.Valid())
}

func TestWorkingHoursValid(t *testing.T) {
	assert.True(t, WorkingHours{StartHour: 10, EndHour: 21, SlotDuration: 30}.Valid())
	assert.False(t, WorkingHours{StartHour: 21, EndHour: 10, SlotDuration: 30}.Valid())
	assert.False(t, WorkingHours{StartHour: 10, EndHour: 10, SlotDuration: 30}.Valid())
	assert.False(t, WorkingHours{StartHour: 10, EndHour: 21, SlotDuration: 0}.Valid())
}

func TestDTOStripsAvailabilityIndex(t *testing.T) {
	d := Doctor{
		ID:          "doc-1",
		Name:        "Dr. Achieng",
		Speciality:  "Dermatology",
		Fees:        50,
		Available:   true,
		SlotsBooked: map[string][]string{"7-9-2026": {"10:00 AM"}},
	}
	dto := d.DTO()
	assert.Equal(t, "doc-1", dto.ID)
	assert.Equal(t, "Dr. Achieng", dto.Name)
	assert.Equal(t, 50.0, dto.Fees)
	assert.True(t, dto.Available)
}
