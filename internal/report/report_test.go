package report

import (
	"encoding/csv"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/flexprice/vanrental/internal/config"
	"github.com/flexprice/vanrental/internal/domain/pricing"
	"github.com/flexprice/vanrental/internal/domain/rental"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportDate = time.Date(2026, time.March, 7, 9, 30, 0, 0, time.UTC)

func newTestRenderer() *Renderer {
	return NewRenderer(config.GetDefaultConfig().Report, reportDate)
}

func referenceSummary() *pricing.DailySummary {
	return pricing.NewCalculator().Aggregate(rental.ReferenceDay())
}

// assertAmountRow checks that some line starts with label and ends with the formatted amount
func assertAmountRow(t *testing.T, text, label, amount string) {
	t.Helper()
	suffix := fmt.Sprintf("CHF %12s |", amount)
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "| "+label+" ") && strings.HasSuffix(line, suffix) {
			return
		}
	}
	assert.Failf(t, "amount row not found", "label %q amount %q in\n%s", label, amount, text)
}

func assertWidth(t *testing.T, text string, width int) {
	t.Helper()
	for i, line := range strings.Split(text, "\n") {
		assert.Len(t, line, width+2, "line %d: %q", i, line)
	}
}

func TestCustomerReceipt_EVan(t *testing.T) {
	s := referenceSummary()
	out := newTestRenderer().CustomerReceipt(s.Breakdowns[0])

	assertWidth(t, out, receiptWidth)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "+"+strings.Repeat("-", 50)+"+", lines[0])
	assert.Equal(t, "| "+fmt.Sprintf("%-48s", strings.Repeat(" ", 16)+"JEFF'S CAR RENTAL")+" |", lines[1])
	assert.Contains(t, lines[2], "Customer Receipt")

	assert.Contains(t, out, "| Date: 07/03/2026")
	assert.Contains(t, out, "| Vehicle:    E-Van")
	assert.Contains(t, out, "| Distance:   95 km")
	assert.Contains(t, out, "| City km:    0 km")
	assert.Contains(t, out, "| Energy:     20 kWh")
	assert.Contains(t, out, "| Vignette:   Yes")
	assert.Contains(t, out, "| Gubrist:    3 passages")
	assert.Contains(t, out, "CHARGES")

	assertAmountRow(t, out, "Distance charge", "64.60")
	assertAmountRow(t, out, "Electricity", "6.00")
	assertAmountRow(t, out, "Motorway vignette", "9.00")
	assertAmountRow(t, out, "Gubrist toll", "5.00")
	assertAmountRow(t, out, "Eco-bonus", "-10.00")
	assertAmountRow(t, out, "TOTAL", "74.60")

	assert.NotContains(t, out, "Zurich Congestion Fee")
}

func TestCustomerReceipt_OmitsZeroCharges(t *testing.T) {
	s := referenceSummary()
	out := newTestRenderer().CustomerReceipt(s.Breakdowns[1])

	assertAmountRow(t, out, "Distance charge", "32.80")
	assertAmountRow(t, out, "Fuel", "9.75")
	assertAmountRow(t, out, "TOTAL", "42.55")
	assert.Contains(t, out, "| Vignette:   No")
	assert.Contains(t, out, "| Gubrist:    0 passages")

	for _, label := range []string{"Motorway vignette", "Gubrist toll", "Zurich Congestion Fee", "Eco-bonus"} {
		assert.NotContains(t, out, label)
	}
}

func TestCustomerReceipt_CongestionFee(t *testing.T) {
	s := referenceSummary()
	out := newTestRenderer().CustomerReceipt(s.Breakdowns[2])

	assert.Contains(t, out, "| City km:    30 km")
	assertAmountRow(t, out, "Zurich Congestion Fee", "30.00")
	assertAmountRow(t, out, "TOTAL", "248.25")
}

func TestCustomerReceipt_FractionalQuantities(t *testing.T) {
	r := rental.Must(rental.Params{
		Category:       types.VehicleCategoryCompactVan,
		Distance:       decimal.RequireFromString("12.50"),
		EnergyConsumed: decimal.RequireFromString("1.250"),
		CityDistance:   decimal.RequireFromString("2.5"),
	})
	out := newTestRenderer().CustomerReceipt(pricing.NewCalculator().Price(r))

	assert.Contains(t, out, "| Distance:   12.5 km")
	assert.Contains(t, out, "| Energy:     1.25 L")
	assert.Contains(t, out, "| City km:    2.5 km")
}

func TestCompanySummary_ReferenceDay(t *testing.T) {
	out := newTestRenderer().CompanySummary(referenceSummary())

	assertWidth(t, out, companySummaryWidth)

	assert.Contains(t, out, "Company Daily Summary")
	assert.Contains(t, out, "| Date: 07/03/2026")
	assert.Contains(t, out, "Total vehicles: 3 |")

	assert.Contains(t, out, "| #1  E-Van | 95 km | 20 kWh | Vignette | Gubrist x3 ")
	assert.Contains(t, out, "| #2  Compact Van | 40 km | 5 L ")
	assert.Contains(t, out, "| #3  Large Van | 180 km | 15 L | City 30 km ")

	assertAmountRow(t, out, "  Distance charge", "64.60")
	assertAmountRow(t, out, "  Eco-bonus", "-10.00")
	assertAmountRow(t, out, "  City congestion", "30.00")
	assertAmountRow(t, out, "  Subtotal", "74.60")
	assertAmountRow(t, out, "  Subtotal", "42.55")
	assertAmountRow(t, out, "  Subtotal", "248.25")
	assertAmountRow(t, out, "  GRAND TOTAL (Company Revenue)", "365.40")

	assert.Equal(t, 3, strings.Count(out, "---------------  |"))
	assert.NotContains(t, out, "Zurich Congestion Fee")
}

func TestCompanySummary_Empty(t *testing.T) {
	s := pricing.NewCalculator().Aggregate(nil)
	out := newTestRenderer().CompanySummary(s)

	assertWidth(t, out, companySummaryWidth)
	assert.Contains(t, out, "Total vehicles: 0 |")
	assertAmountRow(t, out, "  GRAND TOTAL (Company Revenue)", "0.00")
	assert.NotContains(t, out, "Subtotal")
}

func TestCompactSummary_ReferenceDay(t *testing.T) {
	out := newTestRenderer().CompactSummary(referenceSummary())

	expected := strings.Join([]string{
		"E-Van, 95 km, 20 kWh, Vignette, Gubrist x3:",
		"  Distance: 64.60 | Electricity: 6.00 | Vignette: 9.00 | Gubrist: 5.00 | Eco-bonus: -10.00",
		"  Subtotal: CHF 74.60",
		"",
		"Compact Van, 40 km, 5 L:",
		"  Distance: 32.80 | Fuel: 9.75",
		"  Subtotal: CHF 42.55",
		"",
		"Large Van, 180 km, 15 L, City 30 km:",
		"  Distance: 189.00 | Fuel: 29.25 | City: 30.00",
		"  Subtotal: CHF 248.25",
		"",
		"Grand Total: CHF 365.40",
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestCompactSummary_Empty(t *testing.T) {
	out := newTestRenderer().CompactSummary(pricing.NewCalculator().Aggregate(nil))
	assert.Equal(t, "Grand Total: CHF 0.00", out)
}

func TestSummaryCSV(t *testing.T) {
	data, err := SummaryCSV(referenceSummary())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{
		"position", "vehicle_category", "distance_km", "energy_consumed", "motorway_vignette",
		"tunnel_passages", "city_distance_km", "distance_cost", "energy_cost", "vignette_cost",
		"tunnel_cost", "congestion_cost", "eco_bonus", "subtotal",
	}, records[0])
	assert.Equal(t, []string{
		"1", "E_VAN", "95", "20", "true", "3", "0",
		"64.60", "6.00", "9.00", "5.00", "0.00", "-10.00", "74.60",
	}, records[1])
	assert.Equal(t, "COMPACT_VAN", records[2][1])
	assert.Equal(t, "42.55", records[2][13])
	assert.Equal(t, "LARGE_VAN", records[3][1])
	assert.Equal(t, "30.00", records[3][11])
	assert.Equal(t, "248.25", records[3][13])

	total := decimal.Zero
	for _, rec := range records[1:] {
		total = total.Add(decimal.RequireFromString(rec[13]))
	}
	assert.Equal(t, "365.40", total.StringFixed(2))
}
