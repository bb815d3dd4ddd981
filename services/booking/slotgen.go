package booking

import (
	"time"

	"medibook/models"
)

// BuildSlotWindow computes the candidate slots for every day of the horizon,
// one list per calendar day starting today. It is a pure function over the
// schedule, the clock and a booked-slots snapshot: no side effects, and the
// snapshot may be arbitrarily stale. Reserve re-validates, so the output is
// only ever advisory.
//
// Day zero starts relative to now instead of the schedule's start hour so
// past slots are never offered: when the current hour is already past the
// start hour the day begins at the next full hour plus one, and the minute
// rounds to :30 only once the clock is past half past. This mirrors the
// booking rule patients have always seen; do not "fix" it to slot-boundary
// rounding. Every later day starts exactly at the schedule's start hour.
func BuildSlotWindow(wh models.WorkingHours, now time.Time, booked map[string][]string, horizonDays int) []models.DaySlots {
	if !wh.Valid() || horizonDays <= 0 {
		return nil
	}

	window := make([]models.DaySlots, 0, horizonDays)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for d := 0; d < horizonDays; d++ {
		day := today.AddDate(0, 0, d)
		date := models.SlotDateOf(day)

		startHour := wh.StartHour
		startMinute := 0
		if d == 0 {
			if now.Hour() > wh.StartHour {
				startHour = now.Hour() + 1
			}
			if now.Minute() > 30 {
				startMinute = 30
			}
		}

		cursor := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMinute, 0, 0, day.Location())
		end := time.Date(day.Year(), day.Month(), day.Day(), wh.EndHour, 0, 0, 0, day.Location())

		slots := []models.Slot{}
		taken := booked[date.Key()]
		for cursor.Before(end) {
			label := cursor.Format(models.TimeLabelLayout)
			if !containsLabel(taken, label) {
				slots = append(slots, models.Slot{Datetime: cursor, Time: label})
			}
			cursor = cursor.Add(time.Duration(wh.SlotDuration) * time.Minute)
		}

		window = append(window, models.DaySlots{Date: date, Slots: slots})
	}
	return window
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
