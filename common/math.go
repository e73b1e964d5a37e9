package common

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds to the nearest integer, with halves rounded up
// towards positive infinity (-2.5 rounds to -2), as browsers do.
func Round(num float64) int {
	return int(math.Floor(num + 0.5))
}

// DecimalToFixed rounds num to precision decimal places.
// Rounding happens on the shortest decimal representation of num,
// so 1.005 rounds to 1.01 rather than the 1.00 a float multiply would give.
func DecimalToFixed(num float64, precision int) float64 {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return num
	}
	return decimal.NewFromFloat(num).Round(int32(precision)).InexactFloat64()
}
