package domain

import "time"

// RoomType room category; each type has its own seasonal rate table
type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeTriple RoomType = "triple"
	RoomTypeFamily RoomType = "family"
	RoomTypeSuite  RoomType = "suite"
)

// Service ancillary service that a room may include in its price
type Service string

const (
	ServiceParking Service = "parking"
	ServicePet     Service = "pet"
)

// SeasonalRates per-person per-night base rate for every seasonal period
type SeasonalRates map[SeasonalPeriod]float64

// For returns the rate of the period; false if it is missing or not positive
func (r SeasonalRates) For(period SeasonalPeriod) (float64, bool) {
	rate, ok := r[period]
	if !ok || rate <= 0 {
		return 0, false
	}
	return rate, true
}

// RoomRules optional room-specific constraints and pricing overrides
type RoomRules struct {
	MinStayNights    int
	FixedStayRate    *float64 // flat price for the whole stay, replaces per-guest pricing
	BufferDays       int      // empty days required between a checkout and the next check-in
	IncludedServices []Service
}

// Includes returns true if the service fee is waived for the room
func (r *RoomRules) Includes(s Service) bool {
	if r == nil {
		return false
	}
	for _, included := range r.IncludedServices {
		if included == s {
			return true
		}
	}
	return false
}

// HasFixedRate returns true if the room is priced per stay
func (r *RoomRules) HasFixedRate() bool {
	return r != nil && r.FixedStayRate != nil
}

// Room represents a bookable hotel room
type Room struct {
	ID           int64
	Number       string
	Type         RoomType
	Floor        int
	MaxOccupancy int
	Premium      bool
	Rates        SeasonalRates
	Rules        *RoomRules

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MinStayNights returns the minimum stay, 0 when the room has no such rule
func (r *Room) MinStayNights() int {
	if r.Rules == nil {
		return 0
	}
	return r.Rules.MinStayNights
}

// BufferDays returns the required empty days around a stay
func (r *Room) BufferDays() int {
	if r.Rules == nil {
		return 0
	}
	return r.Rules.BufferDays
}
