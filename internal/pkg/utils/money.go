package utils

import "math"

// ToMinorUnits converts a major-unit amount (e.g. 1500.00 PKR) into the
// processor's integer minor units (150000), rounding half away from zero.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromMinorUnits converts processor minor units back to major units.
func FromMinorUnits(amount int64) float64 {
	return float64(amount) / 100
}
