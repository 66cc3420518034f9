package seasons

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

func date(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 14, 0, 0, 0, time.UTC)
}

func TestDefaultTable_PartitionsTheYear(t *testing.T) {
	c := NewDefaultClassifier()
	require.NoError(t, c.Validate())

	// every day of a leap and a common year resolves to exactly one period
	for _, year := range []int{2024, 2025} {
		day := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		for day.Year() == year {
			assert.Len(t, c.matches(day), 1, day.Format(domain.DateFormat))
			_, err := c.Classify(day)
			assert.NoError(t, err)
			day = day.AddDate(0, 0, 1)
		}
	}
}

func TestClassify(t *testing.T) {
	c := NewDefaultClassifier()

	tests := []struct {
		name string
		date time.Time
		want domain.SeasonalPeriod
	}{
		{name: "new year wraps into B", date: date(time.January, 1), want: domain.PeriodB},
		{name: "last day of wrap", date: date(time.January, 7), want: domain.PeriodB},
		{name: "first day of A", date: date(time.January, 8), want: domain.PeriodA},
		{name: "leap day", date: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), want: domain.PeriodA},
		{name: "spring", date: date(time.April, 1), want: domain.PeriodB},
		{name: "june", date: date(time.June, 15), want: domain.PeriodC},
		{name: "july", date: date(time.July, 20), want: domain.PeriodD},
		{name: "end of august", date: date(time.August, 31), want: domain.PeriodD},
		{name: "september", date: date(time.September, 1), want: domain.PeriodC},
		{name: "october", date: date(time.October, 31), want: domain.PeriodB},
		{name: "november", date: date(time.November, 1), want: domain.PeriodA},
		{name: "before christmas", date: date(time.December, 22), want: domain.PeriodA},
		{name: "christmas wrap start", date: date(time.December, 23), want: domain.PeriodB},
		{name: "new year's eve", date: date(time.December, 31), want: domain.PeriodB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_GapIsConfigurationError(t *testing.T) {
	c := NewClassifier([]PeriodRanges{
		{Period: domain.PeriodD, Ranges: []Range{{Start: MonthDay{time.July, 1}, End: MonthDay{time.August, 31}}}},
	})

	_, err := c.Classify(date(time.March, 3))
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.True(t, errors.Is(err, ErrNoSeasonalPeriod))
	assert.Contains(t, err.Error(), "Mar 03")

	err = c.Validate()
	assert.True(t, errors.Is(err, ErrNoSeasonalPeriod))
}

func TestValidate_DetectsOverlap(t *testing.T) {
	table := DefaultTable()
	table[2].Ranges = append(table[2].Ranges, Range{Start: MonthDay{time.August, 30}, End: MonthDay{time.August, 31}})

	err := NewClassifier(table).Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverlappingPeriods))
	assert.Contains(t, err.Error(), "Aug 30")
}

func TestValidate_RejectsImpossibleDates(t *testing.T) {
	table := DefaultTable()
	table[0].Ranges[0].End = MonthDay{time.February, 30}

	err := NewClassifier(table).Validate()
	assert.True(t, errors.Is(err, ErrInvalidRange))
}
