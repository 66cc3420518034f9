package domain

// Default hotel configuration values
const (
	DefaultCheckInHour  = 14
	DefaultCheckOutHour = 10
	DefaultTimezone     = "Europe/Zagreb"
)

// Business validation constants
const (
	MinAdults          = 1
	MaxNotesLength     = 1000
	MaxGuestNameLength = 200
	MaxQueryRangeDays  = 366
)

// Pricing constants
const (
	ShortStayNights = 3

	// Child age bands (age at check-in)
	InfantMaxAge     = 2  // 0-2 stay free
	YoungChildMaxAge = 6  // 3-6 pay half
	ChildMaxAge      = 13 // 7-13 pay 80%

	// Tourism tax bands
	TourismTaxExemptBelowAge = 12
	TourismTaxHalfBelowAge   = 18
)

// Time format constants
const (
	TimeFormat     = "15:04"      // HH:MM
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04"
)

// ActiveStatuses are the statuses that occupy a room on the calendar
var ActiveStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusCheckedIn,
	StatusRoomClosure,
	StatusUnallocated,
	StatusIncompletePayment,
}
