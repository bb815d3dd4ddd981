package booking

import (
	"testing"
	"time"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultHours = models.WorkingHours{StartHour: 10, EndHour: 21, SlotDuration: 30}

func labels(day models.DaySlots) []string {
	out := make([]string, 0, len(day.Slots))
	for _, s := range day.Slots {
		out = append(out, s.Time)
	}
	return out
}

func TestBuildSlotWindowMidAfternoon(t *testing.T) {
	// 14:05: the current hour is past the start hour, so the first day
	// begins at the next full hour.
	now := time.Date(2026, time.September, 7, 14, 5, 0, 0, time.UTC)
	window := BuildSlotWindow(defaultHours, now, nil, 7)
	require.Len(t, window, 7)

	today := window[0]
	assert.Equal(t, models.SlotDate{Day: 7, Month: 9, Year: 2026}, today.Date)
	require.NotEmpty(t, today.Slots)
	assert.Equal(t, "03:00 PM", today.Slots[0].Time)
	assert.Equal(t, "08:30 PM", today.Slots[len(today.Slots)-1].Time)
	assert.Len(t, today.Slots, 12)
}

func TestBuildSlotWindowBeforeOpening(t *testing.T) {
	// 09:10 is before the start hour, so the full day is offered.
	now := time.Date(2026, time.September, 7, 9, 10, 0, 0, time.UTC)
	window := BuildSlotWindow(defaultHours, now, nil, 7)
	require.Len(t, window, 7)

	today := window[0]
	assert.Equal(t, "10:00 AM", today.Slots[0].Time)
	assert.Equal(t, "08:30 PM", today.Slots[len(today.Slots)-1].Time)
	assert.Len(t, today.Slots, 22)
}

func TestBuildSlotWindowMinuteRounding(t *testing.T) {
	// Past half past the hour, the first day starts on the half hour.
	now := time.Date(2026, time.September, 7, 14, 40, 0, 0, time.UTC)
	window := BuildSlotWindow(defaultHours, now, nil, 1)
	require.Len(t, window, 1)
	assert.Equal(t, "03:30 PM", window[0].Slots[0].Time)
	assert.Len(t, window[0].Slots, 11)

	// Before opening but past half past: the minute still rounds to :30.
	now = time.Date(2026, time.September, 7, 9, 40, 0, 0, time.UTC)
	window = BuildSlotWindow(defaultHours, now, nil, 1)
	assert.Equal(t, "10:30 AM", window[0].Slots[0].Time)
}

func TestBuildSlotWindowAtOpeningHour(t *testing.T) {
	// Exactly at the start hour the day is not pushed forward.
	now := time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)
	window := BuildSlotWindow(defaultHours, now, nil, 1)
	assert.Equal(t, "10:00 AM", window[0].Slots[0].Time)
	assert.Len(t, window[0].Slots, 22)
}

func TestBuildSlotWindowNearClosing(t *testing.T) {
	// Past the last bookable slot the first day comes back empty, not nil.
	now := time.Date(2026, time.September, 7, 20, 45, 0, 0, time.UTC)
	window := BuildSlotWindow(defaultHours, now, nil, 7)
	require.Len(t, window, 7)
	assert.NotNil(t, window[0].Slots)
	assert.Empty(t, window[0].Slots)
	// The next day is unaffected.
	assert.Len(t, window[1].Slots, 22)
}

func TestBuildSlotWindowLaterDaysStartAtOpening(t *testing.T) {
	now := time.Date(2026, time.September, 7, 14, 5, 0, 0, time.UTC)
	window := BuildSlotWindow(defaultHours, now, nil, 7)
	for i := 1; i < len(window); i++ {
		require.NotEmpty(t, window[i].Slots)
		assert.Equal(t, "10:00 AM", window[i].Slots[0].Time, "day %d", i)
		assert.Len(t, window[i].Slots, 22, "day %d", i)
	}
}

func TestBuildSlotWindowExcludesBookedLabels(t *testing.T) {
	now := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	booked := map[string][]string{
		"7-9-2026": {"10:00 AM", "03:30 PM"},
		"8-9-2026": {"11:00 AM"},
	}
	window := BuildSlotWindow(defaultHours, now, booked, 2)
	require.Len(t, window, 2)

	assert.NotContains(t, labels(window[0]), "10:00 AM")
	assert.NotContains(t, labels(window[0]), "03:30 PM")
	assert.Len(t, window[0].Slots, 20)

	// The exclusion is scoped to its own day.
	assert.NotContains(t, labels(window[1]), "11:00 AM")
	assert.Contains(t, labels(window[1]), "10:00 AM")
	assert.Len(t, window[1].Slots, 21)
}

func TestBuildSlotWindowSlotsCarryDatetimes(t *testing.T) {
	now := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	window := BuildSlotWindow(defaultHours, now, nil, 2)

	first := window[0].Slots[0]
	assert.Equal(t, time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC), first.Datetime)
	assert.Equal(t, first.Datetime.Format(models.TimeLabelLayout), first.Time)

	nextDay := window[1].Slots[0]
	assert.Equal(t, time.Date(2026, time.September, 8, 10, 0, 0, 0, time.UTC), nextDay.Datetime)
}

func TestBuildSlotWindowCustomSchedule(t *testing.T) {
	wh := models.WorkingHours{StartHour: 9, EndHour: 12, SlotDuration: 60}
	now := time.Date(2026, time.September, 7, 6, 0, 0, 0, time.UTC)
	window := BuildSlotWindow(wh, now, nil, 1)
	assert.Equal(t, []string{"09:00 AM", "10:00 AM", "11:00 AM"}, labels(window[0]))
}

func TestBuildSlotWindowEndHourIsExclusive(t *testing.T) {
	// Slot starts are offered strictly before the end hour; 12:15 is not.
	wh := models.WorkingHours{StartHour: 10, EndHour: 12, SlotDuration: 45}
	now := time.Date(2026, time.September, 7, 6, 0, 0, 0, time.UTC)
	window := BuildSlotWindow(wh, now, nil, 1)
	assert.Equal(t, []string{"10:00 AM", "10:45 AM", "11:30 AM"}, labels(window[0]))
}

func TestBuildSlotWindowInvalidInputs(t *testing.T) {
	now := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)

	assert.Nil(t, BuildSlotWindow(models.WorkingHours{}, now, nil, 7))
	assert.Nil(t, BuildSlotWindow(defaultHours, now, nil, 0))
	assert.Nil(t, BuildSlotWindow(models.WorkingHours{StartHour: 21, EndHour: 10, SlotDuration: 30}, now, nil, 7))
}

func TestBuildSlotWindowHorizonLength(t *testing.T) {
	now := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
	window := BuildSlotWindow(defaultHours, now, nil, 3)
	require.Len(t, window, 3)
	assert.Equal(t, models.SlotDate{Day: 9, Month: 9, Year: 2026}, window[2].Date)
}
