package report

import (
	"fmt"
	"strings"

	"github.com/flexprice/vanrental/internal/domain/pricing"
	"github.com/flexprice/vanrental/internal/domain/vehicle"
	"github.com/flexprice/vanrental/internal/types"
)

const companySummaryWidth = 118

// CompanySummary renders the wide daily table listing every rental, its
// itemized charges and subtotal, followed by the grand total.
func (r *Renderer) CompanySummary(s *pricing.DailySummary) string {
	out := newBox(companySummaryWidth)

	out.border()
	out.center(r.cfg.CompanyName)
	out.center("Company Daily Summary")
	out.doubleBorder()
	out.twoColumns("Date: "+r.formattedDate(), fmt.Sprintf("Total vehicles: %d", s.Count()))
	out.doubleBorder()

	for i, b := range s.Breakdowns {
		out.empty()
		out.left(vehicleHeader(i+1, b))
		out.separator()
		for _, c := range charges(b, "City congestion") {
			out.amount("  "+c.label, r.cfg.CurrencyLabel, c.amount)
		}
		out.raw(subtotalSeparator())
		out.amount("  Subtotal", r.cfg.CurrencyLabel, b.Subtotal)
	}

	out.doubleBorder()
	out.amount("  GRAND TOTAL (Company Revenue)", r.cfg.CurrencyLabel, s.GrandTotal)
	out.border()

	return out.String()
}

// vehicleHeader reads like "#1  E-Van | 95 km | 20 kWh | Vignette | Gubrist x3"
func vehicleHeader(position int, b *pricing.CostBreakdown) string {
	rent := b.Rental
	profile := vehicle.MustGet(rent.Category())

	parts := []string{
		fmt.Sprintf("#%d  %s", position, profile.DisplayName),
		types.FormatQuantity(rent.Distance()) + " km",
		types.FormatQuantity(rent.EnergyConsumed()) + " " + profile.EnergyUnit,
	}
	parts = append(parts, usageTags(b)...)
	return strings.Join(parts, " | ")
}

// subtotalSeparator underlines the amount column
func subtotalSeparator() string {
	const sep = "---------------"
	padLeft := companySummaryWidth - 2 - len(sep) - 1
	return "| " + strings.Repeat(" ", padLeft) + sep + "  |"
}
