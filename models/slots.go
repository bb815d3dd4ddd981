package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeLabelLayout is the fixed layout for slot time labels (e.g. "03:30 PM").
// Labels are compared as opaque strings, so the layout must never vary by locale.
const TimeLabelLayout = "03:04 PM"

// SlotDate is a calendar day with no time component. It is the date part of
// the availability key and is stored in the unpadded "d-M-yyyy" form the
// booked-slots map has always used.
type SlotDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// SlotDateOf truncates t to its calendar day.
func SlotDateOf(t time.Time) SlotDate {
	return SlotDate{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

// ParseSlotDate parses the "d-M-yyyy" storage key form.
func ParseSlotDate(s string) (SlotDate, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return SlotDate{}, fmt.Errorf("invalid slot date %q: want d-M-yyyy", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return SlotDate{}, fmt.Errorf("invalid slot date %q: %w", s, err)
		}
		nums[i] = n
	}
	d := SlotDate{Day: nums[0], Month: nums[1], Year: nums[2]}
	if !d.Valid() {
		return SlotDate{}, fmt.Errorf("invalid slot date %q: no such calendar day", s)
	}
	return d, nil
}

// Key returns the unpadded "d-M-yyyy" form used as the booked-slots map key.
func (d SlotDate) Key() string {
	return fmt.Sprintf("%d-%d-%d", d.Day, d.Month, d.Year)
}

func (d SlotDate) String() string { return d.Key() }

// Valid reports whether d names a real calendar day.
func (d SlotDate) Valid() bool {
	if d.Year < 1 || d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Day() == d.Day && int(t.Month()) == d.Month && t.Year() == d.Year
}

// Time returns midnight of the day in the given location.
func (d SlotDate) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// Before reports whether d is strictly earlier than other.
func (d SlotDate) Before(other SlotDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// ParseTimeLabel validates a slot time label against TimeLabelLayout.
func ParseTimeLabel(label string) (time.Time, error) {
	return time.Parse(TimeLabelLayout, label)
}

// Slot is a single not-yet-reserved booking opportunity. Slots are recomputed
// on every window generation and never persisted.
type Slot struct {
	Datetime time.Time `json:"datetime"`
	Time     string    `json:"time"`
}

// DaySlots is one day's candidate slots in chronological order. Days with
// nothing bookable carry an empty list.
type DaySlots struct {
	Date  SlotDate `json:"date"`
	Slots []Slot   `json:"slots"`
}
