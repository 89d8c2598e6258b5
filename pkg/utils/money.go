package utils

import "math"

// ToMinorUnits converts a major-unit amount (e.g. 579.97 INR) to integer
// minor units (57997 paise) using round-half-up, so money math downstream
// never touches floating point.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Floor(amount*100 + 0.5))
}

// ToMajorUnits converts integer minor units back to a major-unit amount.
func ToMajorUnits(amount int64) float64 {
	return float64(amount) / 100
}
