package report

import (
	"fmt"

	"github.com/flexprice/vanrental/internal/domain/pricing"
	"github.com/flexprice/vanrental/internal/domain/vehicle"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/samber/lo"
)

const receiptWidth = 50

// CustomerReceipt renders the boxed receipt for a single rental
func (r *Renderer) CustomerReceipt(b *pricing.CostBreakdown) string {
	rent := b.Rental
	profile := vehicle.MustGet(rent.Category())
	out := newBox(receiptWidth)

	out.border()
	out.center(r.cfg.CompanyName)
	out.center("Customer Receipt")
	out.doubleBorder()

	out.left("Date: " + r.formattedDate())
	out.empty()
	out.left("Vehicle:    " + profile.DisplayName)
	out.left("Distance:   " + types.FormatQuantity(rent.Distance()) + " km")
	out.left("City km:    " + types.FormatQuantity(rent.CityDistance()) + " km")
	out.left("Energy:     " + types.FormatQuantity(rent.EnergyConsumed()) + " " + profile.EnergyUnit)
	out.left("Vignette:   " + lo.Ternary(rent.HasMotorwayVignette(), "Yes", "No"))
	out.left(fmt.Sprintf("Gubrist:    %d passages", rent.TunnelPassages()))

	out.doubleBorder()
	out.center("CHARGES")
	out.doubleBorder()

	for _, c := range charges(b, "Zurich Congestion Fee") {
		out.amount(c.label, r.cfg.CurrencyLabel, c.amount)
	}

	out.doubleBorder()
	out.amount("TOTAL", r.cfg.CurrencyLabel, b.Subtotal)
	out.border()

	return out.String()
}
