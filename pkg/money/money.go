// Package money holds the rounding helpers used for every monetary amount.
package money

import "math"

// Round2 rounds an amount to whole cents, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Sum adds amounts that are already rounded to cents and rounds the result again,
// so binary floating point noise never leaks into totals.
func Sum(values ...float64) float64 {
	var cents int64
	for _, v := range values {
		cents += int64(math.Round(v * 100))
	}
	return float64(cents) / 100
}

// Equal reports whether two amounts differ by less than half a cent.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}
