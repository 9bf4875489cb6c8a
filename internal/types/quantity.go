package types

import (
	"github.com/shopspring/decimal"
)

const (
	// QuantityMaxDigits bounds the integer part of a distance or energy figure
	QuantityMaxDigits int32 = 9
	// QuantityMaxFractionDigits bounds the fractional part of a distance or energy figure
	QuantityMaxFractionDigits int32 = 18
)

var maxQuantity = decimal.New(1, QuantityMaxDigits)

// QuantityInRange reports whether a usage quantity is small enough to price
// and print. The exponent is checked first so that comparing never has to
// expand a huge exponent.
func QuantityInRange(quantity decimal.Decimal) bool {
	exp := quantity.Exponent()
	if exp > QuantityMaxDigits || exp < -QuantityMaxFractionDigits {
		return false
	}
	return quantity.Abs().LessThanOrEqual(maxQuantity)
}
