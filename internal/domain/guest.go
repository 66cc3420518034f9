package domain

import (
	"strings"
	"time"
)

// Child a child guest; the age used for pricing is taken at check-in
type Child struct {
	Name        string
	DateOfBirth *time.Time
	Age         int // used only when DateOfBirth is unknown (quotes)
}

// AgeAt returns the age in full years on the given date
func (c Child) AgeAt(date time.Time) int {
	if c.DateOfBirth == nil {
		return c.Age
	}
	return AgeOn(*c.DateOfBirth, date)
}

// Clone returns a deep copy
func (c Child) Clone() Child {
	if c.DateOfBirth != nil {
		dob := *c.DateOfBirth
		c.DateOfBirth = &dob
	}
	return c
}

// AgeOn returns the age in full years of someone born on dob at date
func AgeOn(dob, date time.Time) int {
	age := date.Year() - dob.Year()
	if date.Month() < dob.Month() || (date.Month() == dob.Month() && date.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// ChildBand age band that drives the accommodation discount
type ChildBand string

const (
	BandInfant     ChildBand = "infant"      // 0-2
	BandYoungChild ChildBand = "young_child" // 3-6
	BandChild      ChildBand = "child"       // 7-13
	BandFullRate   ChildBand = "full_rate"   // 14+
)

// BandForAge classifies an age at check-in
func BandForAge(age int) ChildBand {
	switch {
	case age <= InfantMaxAge:
		return BandInfant
	case age <= YoungChildMaxAge:
		return BandYoungChild
	case age <= ChildMaxAge:
		return BandChild
	default:
		return BandFullRate
	}
}

// Multiplier share of the adult rate charged for the band
func (b ChildBand) Multiplier() float64 {
	switch b {
	case BandInfant:
		return 0.0
	case BandYoungChild:
		return 0.5
	case BandChild:
		return 0.8
	default:
		return 1.0
	}
}

// GuestKind discriminator of the GuestRef union
type GuestKind string

const (
	GuestKindNew      GuestKind = "new"
	GuestKindExisting GuestKind = "existing"
)

// GuestRef identifies the guest of a booking draft.
// Implemented only by NewGuestDraft and ExistingGuestRef.
type GuestRef interface {
	Kind() GuestKind
	DisplayName() string
	IsComplete() bool
	isGuestRef()
}

// NewGuestDraft a guest that is not yet in the guest registry
type NewGuestDraft struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (g NewGuestDraft) Kind() GuestKind { return GuestKindNew }

func (g NewGuestDraft) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(g.FirstName) + " " + strings.TrimSpace(g.LastName))
}

func (g NewGuestDraft) IsComplete() bool {
	return strings.TrimSpace(g.FirstName) != "" && strings.TrimSpace(g.LastName) != ""
}

func (NewGuestDraft) isGuestRef() {}

// ExistingGuestRef a guest already known to the registry (or to an existing reservation)
type ExistingGuestRef struct {
	GuestID int64
	Name    string
}

func (g ExistingGuestRef) Kind() GuestKind { return GuestKindExisting }

func (g ExistingGuestRef) DisplayName() string { return strings.TrimSpace(g.Name) }

func (g ExistingGuestRef) IsComplete() bool {
	return g.GuestID > 0 || strings.TrimSpace(g.Name) != ""
}

func (ExistingGuestRef) isGuestRef() {}

// GuestIDOf returns the registry id of the guest, nil for new guests
func GuestIDOf(g GuestRef) *int64 {
	if existing, ok := g.(ExistingGuestRef); ok && existing.GuestID > 0 {
		id := existing.GuestID
		return &id
	}
	return nil
}
