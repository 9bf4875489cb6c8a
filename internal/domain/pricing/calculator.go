/*
Package pricing turns validated rentals into itemized cost breakdowns and
folds them into daily summaries. The calculator is stateless, performs no
I/O and never fails for a valid rental.
*/
package pricing

import (
	"github.com/flexprice/vanrental/internal/domain/rental"
	"github.com/flexprice/vanrental/internal/domain/vehicle"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	// MaxBillableTunnelPassages caps the Gubrist toll per rental
	MaxBillableTunnelPassages = 2
)

// Fixed business rates. They are unexported so no importer can change them.
var (
	vignetteFee             = decimal.RequireFromString("9.00")
	tunnelFeePerPassage     = decimal.RequireFromString("2.50")
	congestionRatePerKm     = decimal.RequireFromString("1.00")
	ecoBonusAmount          = decimal.RequireFromString("-10.00")
	ecoBonusMinDistance     = decimal.NewFromInt(80)
	ecoBonusMaxEnergyPer100 = decimal.NewFromInt(22)

	hundred = decimal.NewFromInt(100)
)

// Calculator prices rentals
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Price computes the itemized breakdown for a single rental. Each line item
// is rounded to two decimals before it is summed into the subtotal.
func (c *Calculator) Price(r *rental.Rental) *CostBreakdown {
	profile := vehicle.MustGet(r.Category())

	distanceCost := types.RoundAmount(r.Distance().Mul(profile.RatePerDistanceUnit))
	energyCost := types.RoundAmount(r.EnergyConsumed().Mul(profile.RatePerEnergyUnit))

	vignetteCost := types.ZeroAmount()
	if r.HasMotorwayVignette() {
		vignetteCost = vignetteFee
	}

	billablePassages := lo.Min([]int{r.TunnelPassages(), MaxBillableTunnelPassages})
	tunnelCost := types.RoundAmount(tunnelFeePerPassage.Mul(decimal.NewFromInt(int64(billablePassages))))

	congestionCost := types.RoundAmount(r.CityDistance().Mul(congestionRatePerKm))

	ecoBonus := c.ecoBonus(r)

	b := &CostBreakdown{
		Rental:         r,
		DistanceCost:   distanceCost,
		EnergyCost:     energyCost,
		VignetteCost:   vignetteCost,
		TunnelCost:     tunnelCost,
		CongestionCost: congestionCost,
		EcoBonus:       ecoBonus,
	}
	b.Subtotal = types.RoundAmount(b.ItemsTotal())
	return b
}

// Aggregate prices every rental in order and totals the subtotals.
// An empty input yields an empty summary with a zero grand total.
func (c *Calculator) Aggregate(rentals []*rental.Rental) *DailySummary {
	breakdowns := lo.Map(rentals, func(r *rental.Rental, _ int) *CostBreakdown {
		return c.Price(r)
	})

	grandTotal := lo.Reduce(breakdowns, func(total decimal.Decimal, b *CostBreakdown, _ int) decimal.Decimal {
		return total.Add(b.Subtotal)
	}, types.ZeroAmount())

	return &DailySummary{
		Breakdowns: breakdowns,
		GrandTotal: types.RoundAmount(grandTotal),
	}
}

// ecoBonus applies to E-Vans driven more than 80 km whose consumption stays
// strictly below 22 kWh per 100 km. The ratio is taken from the raw energy
// figure at ten fractional digits, not from the rounded energy cost.
func (c *Calculator) ecoBonus(r *rental.Rental) decimal.Decimal {
	if !r.Category().IsElectric() {
		return types.ZeroAmount()
	}
	if r.Distance().LessThanOrEqual(ecoBonusMinDistance) {
		return types.ZeroAmount()
	}

	energyPer100 := r.EnergyConsumed().Mul(hundred).DivRound(r.Distance(), types.RatioPrecision)
	if energyPer100.GreaterThanOrEqual(ecoBonusMaxEnergyPer100) {
		return types.ZeroAmount()
	}
	return ecoBonusAmount
}
