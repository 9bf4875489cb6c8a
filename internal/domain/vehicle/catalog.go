/*
Package vehicle holds the fixed rate table for every rentable van category.
The table is built once at startup and never changes; rates are business
constants and are not configurable.
*/
package vehicle

import (
	"fmt"

	ierr "github.com/flexprice/vanrental/internal/errors"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Profile describes how a vehicle category is billed and presented
type Profile struct {
	Category types.VehicleCategory `json:"category"`

	// RatePerDistanceUnit is charged per kilometer driven
	RatePerDistanceUnit decimal.Decimal `json:"rate_per_km"`

	// RatePerEnergyUnit is charged per liter of fuel or kWh of electricity
	RatePerEnergyUnit decimal.Decimal `json:"rate_per_energy_unit"`

	// EnergyUnit is the unit energy consumption is measured in ("L" or "kWh")
	EnergyUnit string `json:"energy_unit"`

	DisplayName string `json:"display_name"`

	// EnergyLabel names the energy line item on reports
	EnergyLabel string `json:"energy_label"`
}

var catalog = map[types.VehicleCategory]Profile{
	types.VehicleCategoryCompactVan: newProfile(types.VehicleCategoryCompactVan, "0.82", "1.95", "L", "Compact Van", "Fuel"),
	types.VehicleCategoryLargeVan:   newProfile(types.VehicleCategoryLargeVan, "1.05", "1.95", "L", "Large Van", "Fuel"),
	types.VehicleCategoryEVan:       newProfile(types.VehicleCategoryEVan, "0.68", "0.30", "kWh", "E-Van", "Electricity"),
}

func newProfile(category types.VehicleCategory, ratePerKm, ratePerEnergyUnit, unit, name, label string) Profile {
	return Profile{
		Category:            category,
		RatePerDistanceUnit: decimal.RequireFromString(ratePerKm),
		RatePerEnergyUnit:   decimal.RequireFromString(ratePerEnergyUnit),
		EnergyUnit:          unit,
		DisplayName:         name,
		EnergyLabel:         label,
	}
}

// Get returns the profile for a category
func Get(category types.VehicleCategory) (Profile, error) {
	profile, ok := catalog[category]
	if !ok {
		return Profile{}, ierr.NewError("vehicle category not found").
			WithHint("Vehicle category must be one of COMPACT_VAN, LARGE_VAN or E_VAN").
			WithReportableDetails(map[string]interface{}{
				"vehicle_category": category.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	return profile, nil
}

// MustGet returns the profile for a category that has already been validated.
// It panics on an unknown category.
func MustGet(category types.VehicleCategory) Profile {
	profile, err := Get(category)
	if err != nil {
		panic(fmt.Sprintf("vehicle: no profile for category %q", category))
	}
	return profile
}

// List returns every profile in menu order
func List() []Profile {
	return lo.Map(types.VehicleCategories, func(c types.VehicleCategory, _ int) Profile {
		return catalog[c]
	})
}
