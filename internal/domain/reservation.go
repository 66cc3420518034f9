package domain

import "time"

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	StatusConfirmed         ReservationStatus = "confirmed"
	StatusCheckedIn         ReservationStatus = "checked-in"
	StatusCheckedOut        ReservationStatus = "checked-out"
	StatusRoomClosure       ReservationStatus = "room-closure"
	StatusUnallocated       ReservationStatus = "unallocated"
	StatusIncompletePayment ReservationStatus = "incomplete-payment"
)

// IsValid returns true if the status is one of the known values
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut,
		StatusRoomClosure, StatusUnallocated, StatusIncompletePayment:
		return true
	}
	return false
}

// Reservation is a stay of a guest in a room between two instants.
// Temporary optimistic reservations carry negative IDs until the store assigns one.
type Reservation struct {
	ID        int64
	RoomID    int64
	GuestID   *int64 // NULL for walk-in guests not yet in the guest registry
	GuestName string

	CheckIn  time.Time
	CheckOut time.Time
	Status   ReservationStatus

	Adults       int
	Children     []Child
	HasPets      bool
	NeedsParking bool

	AdditionalCharges float64
	TotalAmount       float64
	VATAmount         float64
	Notes             *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its room
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCheckedOut
}

// IsTemporary returns true for optimistic records not yet confirmed by the store
func (r *Reservation) IsTemporary() bool {
	return r.ID < 0
}

// CanBeMoved returns true if the room or dates may still change
func (r *Reservation) CanBeMoved() bool {
	return r.Status != StatusCheckedOut
}

// GuestCount returns adults plus children
func (r *Reservation) GuestCount() int {
	return r.Adults + len(r.Children)
}

// Slots returns the half-open half-day interval [start, end) the reservation occupies
func (r *Reservation) Slots() (start, end int64) {
	return HalfDay(r.CheckIn), HalfDay(r.CheckOut)
}

// ConflictsWith reports whether the reservation blocks the given stay in the same room.
// Inactive reservations never conflict.
func (r *Reservation) ConflictsWith(roomID int64, checkIn, checkOut time.Time) bool {
	if r.RoomID != roomID || !r.IsActive() {
		return false
	}
	start, end := r.Slots()
	return SlotsOverlap(start, end, HalfDay(checkIn), HalfDay(checkOut))
}

// Nights returns the number of charged nights
func (r *Reservation) Nights() int {
	return NightsBetween(r.CheckIn, r.CheckOut)
}

// Clone returns a deep copy
func (r *Reservation) Clone() *Reservation {
	if r == nil {
		return nil
	}
	c := *r
	if r.GuestID != nil {
		id := *r.GuestID
		c.GuestID = &id
	}
	if r.Notes != nil {
		n := *r.Notes
		c.Notes = &n
	}
	if r.Children != nil {
		c.Children = make([]Child, len(r.Children))
		for i, ch := range r.Children {
			c.Children[i] = ch.Clone()
		}
	}
	return &c
}

// ReservationPatch partial update of a reservation, nil fields are left untouched
type ReservationPatch struct {
	RoomID            *int64
	CheckIn           *time.Time
	CheckOut          *time.Time
	Status            *ReservationStatus
	Adults            *int
	HasPets           *bool
	NeedsParking      *bool
	AdditionalCharges *float64
	TotalAmount       *float64
	VATAmount         *float64
	Notes             *string
}

// IsEmpty returns true if the patch changes nothing
func (p ReservationPatch) IsEmpty() bool {
	return p.RoomID == nil && p.CheckIn == nil && p.CheckOut == nil && p.Status == nil &&
		p.Adults == nil && p.HasPets == nil && p.NeedsParking == nil &&
		p.AdditionalCharges == nil && p.TotalAmount == nil && p.VATAmount == nil && p.Notes == nil
}

// ApplyTo writes the non-nil fields into r
func (p ReservationPatch) ApplyTo(r *Reservation) {
	if p.RoomID != nil {
		r.RoomID = *p.RoomID
	}
	if p.CheckIn != nil {
		r.CheckIn = *p.CheckIn
	}
	if p.CheckOut != nil {
		r.CheckOut = *p.CheckOut
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Adults != nil {
		r.Adults = *p.Adults
	}
	if p.HasPets != nil {
		r.HasPets = *p.HasPets
	}
	if p.NeedsParking != nil {
		r.NeedsParking = *p.NeedsParking
	}
	if p.AdditionalCharges != nil {
		r.AdditionalCharges = *p.AdditionalCharges
	}
	if p.TotalAmount != nil {
		r.TotalAmount = *p.TotalAmount
	}
	if p.VATAmount != nil {
		r.VATAmount = *p.VATAmount
	}
	if p.Notes != nil {
		n := *p.Notes
		r.Notes = &n
	}
}

// ReservationsFilter selects reservations overlapping a period
type ReservationsFilter struct {
	From   time.Time // check_out > From
	To     time.Time // check_in < To
	RoomID *int64    // optional
	Status *ReservationStatus
}
