package domain

import "time"

// BookingDraft a reservation as entered by the operator, before validation
type BookingDraft struct {
	RoomID   int64
	CheckIn  time.Time
	CheckOut time.Time
	Guest    GuestRef

	Adults            int
	Children          []Child
	HasPets           bool
	NeedsParking      bool
	AdditionalCharges float64
	Tier              string
	Notes             *string

	// ExcludeReservationID is skipped by conflict and buffer checks (moving or editing an existing stay)
	ExcludeReservationID int64
}

// GuestCount returns adults plus children
func (d *BookingDraft) GuestCount() int {
	return d.Adults + len(d.Children)
}
