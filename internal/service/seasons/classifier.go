// Package seasons classifies calendar dates into the four recurring pricing periods.
package seasons

import (
	"fmt"
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

// MonthDay a day of a year without the year
type MonthDay struct {
	Month time.Month
	Day   int
}

// ordinal month*100+day keeps calendar order and handles Feb 29 without a year
func (md MonthDay) ordinal() int {
	return int(md.Month)*100 + md.Day
}

func (md MonthDay) valid() bool {
	if md.Month < time.January || md.Month > time.December || md.Day < 1 {
		return false
	}
	// 2024 is a leap year, so Feb 29 is accepted
	return md.Day <= time.Date(2024, md.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Range inclusive month-day range; Start after End wraps the year boundary
type Range struct {
	Start MonthDay
	End   MonthDay
}

func (r Range) contains(ordinal int) bool {
	start, end := r.Start.ordinal(), r.End.ordinal()
	if start <= end {
		return ordinal >= start && ordinal <= end
	}
	return ordinal >= start || ordinal <= end
}

// PeriodRanges all ranges of one period
type PeriodRanges struct {
	Period domain.SeasonalPeriod
	Ranges []Range
}

// DefaultTable the hotel's season table
func DefaultTable() []PeriodRanges {
	return []PeriodRanges{
		{
			Period: domain.PeriodA,
			Ranges: []Range{
				{Start: MonthDay{time.January, 8}, End: MonthDay{time.March, 31}},
				{Start: MonthDay{time.November, 1}, End: MonthDay{time.December, 22}},
			},
		},
		{
			Period: domain.PeriodB,
			Ranges: []Range{
				{Start: MonthDay{time.December, 23}, End: MonthDay{time.January, 7}},
				{Start: MonthDay{time.April, 1}, End: MonthDay{time.May, 31}},
				{Start: MonthDay{time.October, 1}, End: MonthDay{time.October, 31}},
			},
		},
		{
			Period: domain.PeriodC,
			Ranges: []Range{
				{Start: MonthDay{time.June, 1}, End: MonthDay{time.June, 30}},
				{Start: MonthDay{time.September, 1}, End: MonthDay{time.September, 30}},
			},
		},
		{
			Period: domain.PeriodD,
			Ranges: []Range{
				{Start: MonthDay{time.July, 1}, End: MonthDay{time.August, 31}},
			},
		},
	}
}

// Classifier maps dates to seasonal periods
type Classifier struct {
	table []PeriodRanges
}

// NewClassifier creates a classifier over the given table. Call Validate before use
// when the table does not come from DefaultTable.
func NewClassifier(table []PeriodRanges) *Classifier {
	return &Classifier{table: table}
}

// NewDefaultClassifier creates a classifier over DefaultTable
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultTable())
}

// Classify returns the period containing the date; the year is ignored.
// The first matching period wins; Validate guarantees there is only one.
func (c *Classifier) Classify(date time.Time) (domain.SeasonalPeriod, error) {
	ordinal := MonthDay{Month: date.Month(), Day: date.Day()}.ordinal()
	for _, p := range c.table {
		for _, r := range p.Ranges {
			if r.contains(ordinal) {
				return p.Period, nil
			}
		}
	}
	return "", &ConfigurationError{Date: date, err: ErrNoSeasonalPeriod}
}

// Validate checks that every day of a leap year matches exactly one period
func (c *Classifier) Validate() error {
	for _, p := range c.table {
		if !p.Period.IsValid() {
			return fmt.Errorf("%w: unknown period %q", ErrInvalidRange, p.Period)
		}
		for _, r := range p.Ranges {
			if !r.Start.valid() || !r.End.valid() {
				return fmt.Errorf("%w: period %s %v-%v", ErrInvalidRange, p.Period, r.Start, r.End)
			}
		}
	}

	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == 2024 {
		if matches := c.matches(day); len(matches) != 1 {
			err := ErrNoSeasonalPeriod
			if len(matches) > 1 {
				err = ErrOverlappingPeriods
			}
			return &ConfigurationError{Date: day, Matches: matches, err: err}
		}
		day = day.AddDate(0, 0, 1)
	}
	return nil
}

func (c *Classifier) matches(date time.Time) []domain.SeasonalPeriod {
	ordinal := MonthDay{Month: date.Month(), Day: date.Day()}.ordinal()
	var found []domain.SeasonalPeriod
	for _, p := range c.table {
		for _, r := range p.Ranges {
			if r.contains(ordinal) {
				found = append(found, p.Period)
			}
		}
	}
	return found
}
