package pricing

import (
	"github.com/flexprice/vanrental/internal/domain/rental"
	"github.com/shopspring/decimal"
)

// CostBreakdown is the itemized charge for one rental. Every amount has
// exactly two fractional digits. Consumers must treat it as read-only.
type CostBreakdown struct {
	Rental *rental.Rental

	DistanceCost   decimal.Decimal
	EnergyCost     decimal.Decimal
	VignetteCost   decimal.Decimal
	TunnelCost     decimal.Decimal
	CongestionCost decimal.Decimal
	// EcoBonus is zero or negative
	EcoBonus decimal.Decimal

	Subtotal decimal.Decimal
}

// ItemsTotal returns the exact sum of the six line items
func (b *CostBreakdown) ItemsTotal() decimal.Decimal {
	return decimal.Sum(
		b.DistanceCost,
		b.EnergyCost,
		b.VignetteCost,
		b.TunnelCost,
		b.CongestionCost,
		b.EcoBonus,
	)
}

// DailySummary is the ordered set of breakdowns for a day and their total.
// Breakdowns keep the order the rentals were given in.
type DailySummary struct {
	Breakdowns []*CostBreakdown
	GrandTotal decimal.Decimal
}

func (s *DailySummary) Count() int {
	return len(s.Breakdowns)
}
