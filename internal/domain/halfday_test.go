package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestHalfDay(t *testing.T) {
	morning := HalfDay(at(2025, time.July, 20, 10))
	afternoon := HalfDay(at(2025, time.July, 20, 14))
	nextMorning := HalfDay(at(2025, time.July, 21, 0))

	assert.Equal(t, morning+1, afternoon)
	assert.Equal(t, afternoon+1, nextMorning)
	assert.Equal(t, int64(0), morning%2)
	assert.Equal(t, HalfDay(at(2025, time.July, 20, 11)), morning)
	assert.Equal(t, HalfDay(at(2025, time.July, 20, 12)), afternoon)
}

func TestHalfDay_UsesLocalDate(t *testing.T) {
	zagreb := time.FixedZone("CEST", 2*3600)
	// 23:30 UTC on the 19th is already the morning of the 20th in Zagreb
	local := time.Date(2025, time.July, 20, 1, 30, 0, 0, zagreb)

	assert.Equal(t, HalfDay(at(2025, time.July, 20, 1)), HalfDay(local))
}

func TestSlotsOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int64
		want                       bool
	}{
		{name: "disjoint", aStart: 1, aEnd: 4, bStart: 6, bEnd: 8, want: false},
		{name: "touching", aStart: 1, aEnd: 4, bStart: 4, bEnd: 8, want: false},
		{name: "touching reversed", aStart: 4, aEnd: 8, bStart: 1, bEnd: 4, want: false},
		{name: "one slot overlap", aStart: 1, aEnd: 5, bStart: 4, bEnd: 8, want: true},
		{name: "contained", aStart: 1, aEnd: 10, bStart: 3, bEnd: 5, want: true},
		{name: "identical", aStart: 3, aEnd: 5, bStart: 3, bEnd: 5, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestNightsBetween(t *testing.T) {
	assert.Equal(t, 3, NightsBetween(at(2025, time.July, 20, 14), at(2025, time.July, 23, 10)))
	assert.Equal(t, 1, NightsBetween(at(2025, time.July, 20, 14), at(2025, time.July, 21, 10)))
	assert.Equal(t, 2, NightsBetween(at(2025, time.July, 20, 0), at(2025, time.July, 22, 0)))
	assert.Equal(t, 0, NightsBetween(at(2025, time.July, 20, 14), at(2025, time.July, 20, 14)))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 2, DaysBetween(at(2025, time.July, 20, 23), at(2025, time.July, 22, 1)))
	assert.Equal(t, -1, DaysBetween(at(2025, time.January, 1, 0), at(2024, time.December, 31, 0)))
	assert.Equal(t, 1, DaysBetween(at(1969, time.December, 31, 12), at(1970, time.January, 1, 0)))
}

func TestStaySlotsValid(t *testing.T) {
	tests := []struct {
		name      string
		in, out   time.Time
		wantValid bool
	}{
		{name: "regular stay", in: at(2025, time.July, 20, 14), out: at(2025, time.July, 23, 10), wantValid: true},
		{name: "noon check-in", in: at(2025, time.July, 20, 12), out: at(2025, time.July, 21, 11), wantValid: true},
		{name: "same evening", in: at(2025, time.July, 20, 13), out: at(2025, time.July, 20, 20), wantValid: false},
		{name: "morning check-in", in: at(2025, time.July, 20, 9), out: at(2025, time.July, 21, 10), wantValid: false},
		{name: "afternoon check-out", in: at(2025, time.July, 20, 14), out: at(2025, time.July, 21, 15), wantValid: false},
		{name: "check-out before check-in", in: at(2025, time.July, 22, 14), out: at(2025, time.July, 21, 10), wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantValid, StaySlotsValid(tt.in, tt.out))
		})
	}
}
