/*
Package rental provides the validated record of a single van rental.
A Rental can only be obtained through New, which enforces every invariant
on the usage facts; once built it is never mutated.
*/
package rental

import (
	ierr "github.com/flexprice/vanrental/internal/errors"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/shopspring/decimal"
)

// Params are the raw usage facts for a rental
type Params struct {
	Category         types.VehicleCategory
	Distance         decimal.Decimal
	EnergyConsumed   decimal.Decimal
	MotorwayVignette bool
	TunnelPassages   int
	CityDistance     decimal.Decimal
}

// Rental is an immutable, invariant-satisfying rental record
type Rental struct {
	category         types.VehicleCategory
	distance         decimal.Decimal
	energyConsumed   decimal.Decimal
	motorwayVignette bool
	tunnelPassages   int
	cityDistance     decimal.Decimal
}

// New validates the params and returns a Rental. Negative quantities are
// marked ierr.ErrInvalidQuantity and a city distance above the total
// distance is marked ierr.ErrInconsistentRange.
func New(p Params) (*Rental, error) {
	if err := p.Category.Validate(); err != nil {
		return nil, err
	}
	if err := checkRange("distance", p.Distance); err != nil {
		return nil, err
	}
	if err := checkRange("energy_consumed", p.EnergyConsumed); err != nil {
		return nil, err
	}
	if err := checkRange("city_distance", p.CityDistance); err != nil {
		return nil, err
	}
	if p.Distance.IsNegative() {
		return nil, negativeQuantity("distance", "Kilometers driven must not be negative", p.Distance.String())
	}
	if p.EnergyConsumed.IsNegative() {
		return nil, negativeQuantity("energy_consumed", "Energy consumed must not be negative", p.EnergyConsumed.String())
	}
	if p.CityDistance.IsNegative() {
		return nil, negativeQuantity("city_distance", "City kilometers must not be negative", p.CityDistance.String())
	}
	if p.CityDistance.GreaterThan(p.Distance) {
		return nil, ierr.NewError("city distance exceeds distance").
			WithHint("City kilometers must not exceed kilometers driven").
			WithReportableDetails(map[string]interface{}{
				"distance":      p.Distance.String(),
				"city_distance": p.CityDistance.String(),
			}).
			Mark(ierr.ErrInconsistentRange)
	}
	if p.TunnelPassages < 0 {
		return nil, negativeQuantity("tunnel_passages", "Gubrist tunnel passages must not be negative", p.TunnelPassages)
	}

	return &Rental{
		category:         p.Category,
		distance:         p.Distance,
		energyConsumed:   p.EnergyConsumed,
		motorwayVignette: p.MotorwayVignette,
		tunnelPassages:   p.TunnelPassages,
		cityDistance:     p.CityDistance,
	}, nil
}

// Must is like New but panics on invalid params. Only use it for fixed fixtures.
func Must(p Params) *Rental {
	r, err := New(p)
	if err != nil {
		panic(err)
	}
	return r
}

func negativeQuantity(field, hint string, value interface{}) error {
	return ierr.NewErrorf("%s must not be negative", field).
		WithHint(hint).
		WithReportableDetails(map[string]interface{}{
			field: value,
		}).
		Mark(ierr.ErrInvalidQuantity)
}

func (r *Rental) Category() types.VehicleCategory { return r.category }

// Distance is the total kilometers driven
func (r *Rental) Distance() decimal.Decimal { return r.distance }

// EnergyConsumed is liters of fuel or kWh, depending on the category
func (r *Rental) EnergyConsumed() decimal.Decimal { return r.energyConsumed }

func (r *Rental) HasMotorwayVignette() bool { return r.motorwayVignette }

// TunnelPassages is the number of Gubrist tunnel passages, billable or not
func (r *Rental) TunnelPassages() int { return r.tunnelPassages }

// CityDistance is the share of Distance driven inside the congestion zone
func (r *Rental) CityDistance() decimal.Decimal { return r.cityDistance }

// Params returns the usage facts the rental was built from
func (r *Rental) Params() Params {
	return Params{
		Category:         r.category,
		Distance:         r.distance,
		EnergyConsumed:   r.energyConsumed,
		MotorwayVignette: r.motorwayVignette,
		TunnelPassages:   r.tunnelPassages,
		CityDistance:     r.cityDistance,
	}
}

// checkRange runs before any comparison so oversized values are never expanded
func checkRange(field string, value decimal.Decimal) error {
	if types.QuantityInRange(value) {
		return nil
	}
	return ierr.NewErrorf("%s is out of range", field).
		WithHintf("%s must be at most %d digits with at most %d decimal places", field, types.QuantityMaxDigits, types.QuantityMaxFractionDigits).
		WithReportableDetails(map[string]interface{}{
			field: "out_of_range",
		}).
		Mark(ierr.ErrInvalidQuantity)
}
