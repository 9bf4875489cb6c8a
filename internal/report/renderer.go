/*
Package report renders cost breakdowns and daily summaries as fixed-width
text for customers and the company, and as CSV for export. Renderers only
read the pricing results they are given.
*/
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/flexprice/vanrental/internal/config"
	"github.com/flexprice/vanrental/internal/domain/pricing"
	"github.com/flexprice/vanrental/internal/domain/vehicle"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/shopspring/decimal"
)

// Renderer formats reports for a single business date
type Renderer struct {
	cfg  config.ReportConfig
	date time.Time
}

// NewRenderer returns a Renderer that stamps every report with date
func NewRenderer(cfg config.ReportConfig, date time.Time) *Renderer {
	return &Renderer{cfg: cfg, date: date}
}

func (r *Renderer) formattedDate() string {
	return r.date.Format(r.cfg.DateFormat)
}

// charge is one printable line item
type charge struct {
	label  string
	amount decimal.Decimal
}

// charges lists distance and energy always, the remaining items only when non-zero
func charges(b *pricing.CostBreakdown, congestionLabel string) []charge {
	profile := vehicle.MustGet(b.Rental.Category())

	out := []charge{
		{label: "Distance charge", amount: b.DistanceCost},
		{label: profile.EnergyLabel, amount: b.EnergyCost},
	}
	if b.VignetteCost.IsPositive() {
		out = append(out, charge{label: "Motorway vignette", amount: b.VignetteCost})
	}
	if b.TunnelCost.IsPositive() {
		out = append(out, charge{label: "Gubrist toll", amount: b.TunnelCost})
	}
	if b.CongestionCost.IsPositive() {
		out = append(out, charge{label: congestionLabel, amount: b.CongestionCost})
	}
	if !b.EcoBonus.IsZero() {
		out = append(out, charge{label: "Eco-bonus", amount: b.EcoBonus})
	}
	return out
}

// usageTags describes the optional usage facts, e.g. "Vignette", "Gubrist x3", "City 30 km"
func usageTags(b *pricing.CostBreakdown) []string {
	r := b.Rental
	tags := []string{}
	if r.HasMotorwayVignette() {
		tags = append(tags, "Vignette")
	}
	if r.TunnelPassages() > 0 {
		tags = append(tags, fmt.Sprintf("Gubrist x%d", r.TunnelPassages()))
	}
	if r.CityDistance().IsPositive() {
		tags = append(tags, fmt.Sprintf("City %s km", types.FormatQuantity(r.CityDistance())))
	}
	return tags
}

// box draws fixed-width bordered lines. Every line is width+2 characters.
type box struct {
	width int
	sb    strings.Builder
}

func newBox(width int) *box {
	return &box{width: width}
}

func (b *box) border()       { b.raw("+" + strings.Repeat("-", b.width) + "+") }
func (b *box) doubleBorder() { b.raw("+" + strings.Repeat("=", b.width) + "+") }
func (b *box) separator()    { b.raw("|" + strings.Repeat("-", b.width) + "|") }
func (b *box) empty()        { b.raw("| " + strings.Repeat(" ", b.width-2) + " |") }

func (b *box) raw(line string) {
	if b.sb.Len() > 0 {
		b.sb.WriteString("\n")
	}
	b.sb.WriteString(line)
}

func (b *box) left(text string) {
	b.raw(fmt.Sprintf("| %-*s |", b.width-2, text))
}

func (b *box) center(text string) {
	padding := (b.width - len(text)) / 2
	b.left(strings.Repeat(" ", max(0, padding)) + text)
}

func (b *box) twoColumns(left, right string) {
	space := b.width - 2 - len(left) - len(right)
	b.left(left + strings.Repeat(" ", max(1, space)) + right)
}

func (b *box) amount(label, currency string, amount decimal.Decimal) {
	amountStr := fmt.Sprintf("%s %12s", currency, types.FormatAmount(amount))
	b.twoColumns(label, amountStr)
}

func (b *box) String() string {
	return b.sb.String()
}
