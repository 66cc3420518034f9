package domain

import (
	"math"
	"time"
)

// HalfDay maps an instant to its half-day slot: 2*dayIndex for the morning
// (hour < 12) and 2*dayIndex+1 for the afternoon. The day index is taken from
// the calendar date in t's location.
func HalfDay(t time.Time) int64 {
	slot := 2 * DayIndex(t)
	if t.Hour() >= 12 {
		slot++
	}
	return slot
}

// DayIndex returns the number of calendar days since 1970-01-01 for t's local date
func DayIndex(t time.Time) int64 {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return floorDiv(midnight.Unix(), 86400)
}

// IsAfternoon reports whether t falls in the afternoon slot of its day
func IsAfternoon(t time.Time) bool {
	return t.Hour() >= 12
}

// StaySlotsValid reports whether a stay fits the half-day model: check-in in an
// afternoon slot, check-out in a morning slot, and a non-empty slot interval.
func StaySlotsValid(checkIn, checkOut time.Time) bool {
	return IsAfternoon(checkIn) && !IsAfternoon(checkOut) && HalfDay(checkIn) < HalfDay(checkOut)
}

// SlotsOverlap reports whether two half-open slot intervals intersect.
// Touching intervals (one ends where the other starts) do not overlap.
func SlotsOverlap(aStart, aEnd, bStart, bEnd int64) bool {
	return aStart < bEnd && bStart < aEnd
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from a to b (may be negative)
func DaysBetween(a, b time.Time) int {
	return int(DayIndex(b) - DayIndex(a))
}

// NightsBetween returns ceil((checkOut - checkIn) / 24h)
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
