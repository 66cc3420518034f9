package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

var testPricing = PricingConfig{
	RoomTypes: map[string]map[string]float64{
		"double": {"A": 50, "B": 60, "C": 75, "D": 90},
	},
}

func TestParseRoomsConfig(t *testing.T) {
	cfg, err := ParseRoomsConfig([]byte(`
rooms:
  - id: 101
    number: "101"
    type: Double
    floor: 1
    max_occupancy: 2
  - id: 201
    number: "201"
    type: suite
    floor: 2
    max_occupancy: 4
    premium: true
    rates: {A: 120, B: 140, C: 170, D: 200}
    rules:
      min_stay_nights: 2
      buffer_days: 1
      included_services: [parking]
  - id: 301
    number: "301"
    type: family
    max_occupancy: 6
    rules:
      fixed_stay_rate: 400
`), testPricing)
	require.NoError(t, err)

	rooms, err := cfg.ListRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 3)

	double := rooms[0]
	assert.Equal(t, domain.RoomTypeDouble, double.Type)
	assert.Equal(t, 90.0, double.Rates[domain.PeriodD])
	assert.Nil(t, double.Rules)

	suite := rooms[1]
	assert.Equal(t, 200.0, suite.Rates[domain.PeriodD])
	assert.Equal(t, 2, suite.MinStayNights())
	assert.Equal(t, 1, suite.BufferDays())
	assert.True(t, suite.Rules.Includes(domain.ServiceParking))
	assert.False(t, suite.Rules.Includes(domain.ServicePet))

	family := rooms[2]
	assert.True(t, family.Rules.HasFixedRate())
	assert.Equal(t, 400.0, *family.Rules.FixedStayRate)
}

func TestParseRoomsConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", `rooms: []`},
		{"duplicate id", `
rooms:
  - {id: 1, number: "1", type: double, max_occupancy: 2}
  - {id: 1, number: "2", type: double, max_occupancy: 2}`},
		{"duplicate number", `
rooms:
  - {id: 1, number: "1", type: double, max_occupancy: 2}
  - {id: 2, number: "1", type: double, max_occupancy: 2}`},
		{"zero occupancy", `
rooms:
  - {id: 1, number: "1", type: double, max_occupancy: 0}`},
		{"no rates for type", `
rooms:
  - {id: 1, number: "1", type: penthouse, max_occupancy: 2}`},
		{"unknown service", `
rooms:
  - id: 1
    number: "1"
    type: double
    max_occupancy: 2
    rules: {included_services: [spa]}`},
		{"negative buffer", `
rooms:
  - id: 1
    number: "1"
    type: double
    max_occupancy: 2
    rules: {buffer_days: -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRoomsConfig([]byte(tt.data), testPricing)
			assert.Error(t, err)
		})
	}
}
