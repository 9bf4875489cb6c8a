package report

import (
	"bytes"

	"github.com/flexprice/vanrental/internal/domain/pricing"
	ierr "github.com/flexprice/vanrental/internal/errors"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/gocarina/gocsv"
	"github.com/samber/lo"
)

// BreakdownCSV is one exported row of the daily summary
type BreakdownCSV struct {
	Position         int    `csv:"position"`
	VehicleCategory  string `csv:"vehicle_category"`
	Distance         string `csv:"distance_km"`
	EnergyConsumed   string `csv:"energy_consumed"`
	MotorwayVignette bool   `csv:"motorway_vignette"`
	TunnelPassages   int    `csv:"tunnel_passages"`
	CityDistance     string `csv:"city_distance_km"`
	DistanceCost     string `csv:"distance_cost"`
	EnergyCost       string `csv:"energy_cost"`
	VignetteCost     string `csv:"vignette_cost"`
	TunnelCost       string `csv:"tunnel_cost"`
	CongestionCost   string `csv:"congestion_cost"`
	EcoBonus         string `csv:"eco_bonus"`
	Subtotal         string `csv:"subtotal"`
}

// SummaryCSV exports one row per rental in summary order. The grand
// total is not a row; it equals the sum of the subtotal column.
func SummaryCSV(s *pricing.DailySummary) ([]byte, error) {
	records := lo.Map(s.Breakdowns, func(b *pricing.CostBreakdown, i int) *BreakdownCSV {
		return &BreakdownCSV{
			Position:         i + 1,
			VehicleCategory:  b.Rental.Category().String(),
			Distance:         types.FormatQuantity(b.Rental.Distance()),
			EnergyConsumed:   types.FormatQuantity(b.Rental.EnergyConsumed()),
			MotorwayVignette: b.Rental.HasMotorwayVignette(),
			TunnelPassages:   b.Rental.TunnelPassages(),
			CityDistance:     types.FormatQuantity(b.Rental.CityDistance()),
			DistanceCost:     types.FormatAmount(b.DistanceCost),
			EnergyCost:       types.FormatAmount(b.EnergyCost),
			VignetteCost:     types.FormatAmount(b.VignetteCost),
			TunnelCost:       types.FormatAmount(b.TunnelCost),
			CongestionCost:   types.FormatAmount(b.CongestionCost),
			EcoBonus:         types.FormatAmount(b.EcoBonus),
			Subtotal:         types.FormatAmount(b.Subtotal),
		}
	})

	var buf bytes.Buffer
	if err := gocsv.Marshal(records, &buf); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to marshal daily summary to CSV").
			Mark(ierr.ErrInternal)
	}
	return buf.Bytes(), nil
}
