package rental

import (
	"github.com/flexprice/vanrental/internal/types"
	"github.com/shopspring/decimal"
)

// ReferenceDay returns the fixed three-rental day used to check the
// company summary end to end. Its grand total is 365.40.
func ReferenceDay() []*Rental {
	return []*Rental{
		Must(Params{
			Category:         types.VehicleCategoryEVan,
			Distance:         decimal.NewFromInt(95),
			EnergyConsumed:   decimal.NewFromInt(20),
			MotorwayVignette: true,
			TunnelPassages:   3,
			CityDistance:     decimal.Zero,
		}),
		Must(Params{
			Category:       types.VehicleCategoryCompactVan,
			Distance:       decimal.NewFromInt(40),
			EnergyConsumed: decimal.NewFromInt(5),
			CityDistance:   decimal.Zero,
		}),
		Must(Params{
			Category:       types.VehicleCategoryLargeVan,
			Distance:       decimal.NewFromInt(180),
			EnergyConsumed: decimal.NewFromInt(15),
			CityDistance:   decimal.NewFromInt(30),
		}),
	}
}
