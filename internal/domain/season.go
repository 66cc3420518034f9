package domain

// SeasonalPeriod one of the four recurring pricing bands
type SeasonalPeriod string

const (
	PeriodA SeasonalPeriod = "A"
	PeriodB SeasonalPeriod = "B"
	PeriodC SeasonalPeriod = "C"
	PeriodD SeasonalPeriod = "D"
)

// AllPeriods in table order
var AllPeriods = []SeasonalPeriod{PeriodA, PeriodB, PeriodC, PeriodD}

// IsValid returns true for A, B, C and D
func (p SeasonalPeriod) IsValid() bool {
	switch p {
	case PeriodA, PeriodB, PeriodC, PeriodD:
		return true
	}
	return false
}

// TaxSeason tourism tax band
type TaxSeason string

const (
	TaxSeasonLow  TaxSeason = "low"
	TaxSeasonHigh TaxSeason = "high"
)

// TaxSeason maps a pricing period to its tourism tax band.
// The mapping is fixed: A and B are low season, C and D are high season.
func (p SeasonalPeriod) TaxSeason() TaxSeason {
	switch p {
	case PeriodC, PeriodD:
		return TaxSeasonHigh
	default:
		return TaxSeasonLow
	}
}
