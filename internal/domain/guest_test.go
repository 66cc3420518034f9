package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBandForAge(t *testing.T) {
	tests := []struct {
		age        int
		band       ChildBand
		multiplier float64
	}{
		{age: 0, band: BandInfant, multiplier: 0},
		{age: 2, band: BandInfant, multiplier: 0},
		{age: 3, band: BandYoungChild, multiplier: 0.5},
		{age: 5, band: BandYoungChild, multiplier: 0.5},
		{age: 7, band: BandChild, multiplier: 0.8},
		{age: 10, band: BandChild, multiplier: 0.8},
		{age: 13, band: BandChild, multiplier: 0.8},
		{age: 14, band: BandFullRate, multiplier: 1},
		{age: 16, band: BandFullRate, multiplier: 1},
	}

	for _, tt := range tests {
		band := BandForAge(tt.age)
		assert.Equal(t, tt.band, band, "age %d", tt.age)
		assert.Equal(t, tt.multiplier, band.Multiplier(), "age %d", tt.age)
	}
}

func TestChild_AgeAt(t *testing.T) {
	dob := time.Date(2015, time.July, 21, 0, 0, 0, 0, time.UTC)
	c := Child{DateOfBirth: &dob}

	assert.Equal(t, 9, c.AgeAt(time.Date(2025, time.July, 20, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, 10, c.AgeAt(time.Date(2025, time.July, 21, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, c.AgeAt(time.Date(2014, time.July, 21, 14, 0, 0, 0, time.UTC)))

	assert.Equal(t, 7, Child{Age: 7}.AgeAt(time.Now()))
}

func TestGuestRef(t *testing.T) {
	var g GuestRef = NewGuestDraft{FirstName: " Ana ", LastName: "Horvat"}
	assert.Equal(t, GuestKindNew, g.Kind())
	assert.Equal(t, "Ana Horvat", g.DisplayName())
	assert.True(t, g.IsComplete())
	assert.Nil(t, GuestIDOf(g))

	assert.False(t, NewGuestDraft{FirstName: "Ana"}.IsComplete())

	g = ExistingGuestRef{GuestID: 42, Name: "Marko Kovač"}
	assert.Equal(t, GuestKindExisting, g.Kind())
	assert.True(t, g.IsComplete())
	assert.Equal(t, int64(42), *GuestIDOf(g))

	assert.False(t, ExistingGuestRef{}.IsComplete())
}

func TestSeasonalPeriod_TaxSeason(t *testing.T) {
	assert.Equal(t, TaxSeasonLow, PeriodA.TaxSeason())
	assert.Equal(t, TaxSeasonLow, PeriodB.TaxSeason())
	assert.Equal(t, TaxSeasonHigh, PeriodC.TaxSeason())
	assert.Equal(t, TaxSeasonHigh, PeriodD.TaxSeason())
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	errs.Add(ValidationCapacityViolation, "too many guests", nil)
	errs.Add(ValidationDateConflict, "room taken", map[string]interface{}{"reservationId": int64(7)})

	assert.True(t, errs.HasType(ValidationDateConflict))
	assert.False(t, errs.HasType(ValidationPricingError))
	assert.Contains(t, errs.Error(), "capacity_violation: too many guests")

	var err error = errs
	got, ok := AsValidationErrors(err)
	assert.True(t, ok)
	assert.Len(t, got, 2)
}
