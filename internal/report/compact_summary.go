package report

import (
	"fmt"
	"strings"

	"github.com/flexprice/vanrental/internal/domain/pricing"
	"github.com/flexprice/vanrental/internal/domain/vehicle"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/samber/lo"
)

// CompactSummary renders the day as plain lines, one block per rental:
//
//	E-Van, 95 km, 20 kWh, Vignette, Gubrist x3:
//	  Distance: 64.60 | Electricity: 6.00 | Vignette: 9.00 | Gubrist: 5.00 | Eco-bonus: -10.00
//	  Subtotal: CHF 74.60
func (r *Renderer) CompactSummary(s *pricing.DailySummary) string {
	blocks := lo.Map(s.Breakdowns, func(b *pricing.CostBreakdown, _ int) string {
		return r.compactBlock(b)
	})

	var sb strings.Builder
	sb.WriteString(strings.Join(blocks, "\n"))
	if len(blocks) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Grand Total: %s %s", r.cfg.CurrencyLabel, types.FormatAmount(s.GrandTotal)))
	return sb.String()
}

func (r *Renderer) compactBlock(b *pricing.CostBreakdown) string {
	rent := b.Rental
	profile := vehicle.MustGet(rent.Category())

	header := append([]string{
		profile.DisplayName,
		types.FormatQuantity(rent.Distance()) + " km",
		types.FormatQuantity(rent.EnergyConsumed()) + " " + profile.EnergyUnit,
	}, usageTags(b)...)

	items := []string{
		"Distance: " + types.FormatAmount(b.DistanceCost),
		profile.EnergyLabel + ": " + types.FormatAmount(b.EnergyCost),
	}
	if b.VignetteCost.IsPositive() {
		items = append(items, "Vignette: "+types.FormatAmount(b.VignetteCost))
	}
	if b.TunnelCost.IsPositive() {
		items = append(items, "Gubrist: "+types.FormatAmount(b.TunnelCost))
	}
	if b.CongestionCost.IsPositive() {
		items = append(items, "City: "+types.FormatAmount(b.CongestionCost))
	}
	if !b.EcoBonus.IsZero() {
		items = append(items, "Eco-bonus: "+types.FormatAmount(b.EcoBonus))
	}

	return strings.Join(header, ", ") + ":\n" +
		"  " + strings.Join(items, " | ") + "\n" +
		fmt.Sprintf("  Subtotal: %s %s\n", r.cfg.CurrencyLabel, types.FormatAmount(b.Subtotal))
}
