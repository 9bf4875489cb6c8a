package types

import (
	"github.com/shopspring/decimal"
)

const (
	// DefaultCurrency is the only currency rentals are billed in
	DefaultCurrency = "chf"
	// DefaultCurrencyLabel is how amounts are labelled on printed reports
	DefaultCurrencyLabel = "CHF"
	// AmountPrecision is the number of fractional digits kept on every amount
	AmountPrecision int32 = 2
	// RatioPrecision is the number of fractional digits kept on intermediate ratios
	RatioPrecision int32 = 10
)

// RoundAmount rounds an amount to AmountPrecision, half away from zero.
// Every line item is rounded at source before being summed.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountPrecision)
}

// ZeroAmount returns zero at amount precision
func ZeroAmount() decimal.Decimal {
	return decimal.New(0, -AmountPrecision)
}

// FormatAmount renders an amount with exactly AmountPrecision digits
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(AmountPrecision)
}

// FormatQuantity renders a usage quantity with trailing zeros stripped
func FormatQuantity(quantity decimal.Decimal) string {
	return quantity.String()
}
