package dto

import (
	"github.com/flexprice/vanrental/internal/domain/pricing"
	"github.com/flexprice/vanrental/internal/domain/rental"
	"github.com/flexprice/vanrental/internal/domain/vehicle"
	ierr "github.com/flexprice/vanrental/internal/errors"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/flexprice/vanrental/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CreateRentalRequest carries the raw usage facts of one rental.
// Quantities are decimal strings so no precision is lost in transit.
type CreateRentalRequest struct {
	VehicleCategory  types.VehicleCategory `json:"vehicle_category" validate:"required"`
	Distance         string                `json:"distance" validate:"required,decimal"`
	EnergyConsumed   string                `json:"energy_consumed" validate:"required,decimal"`
	MotorwayVignette bool                  `json:"motorway_vignette"`
	TunnelPassages   int                   `json:"tunnel_passages"`
	CityDistance     string                `json:"city_distance,omitempty" validate:"omitempty,decimal"`
}

func (r *CreateRentalRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.VehicleCategory.Validate()
}

// ToRental parses the request and builds a validated rental
func (r *CreateRentalRequest) ToRental() (*rental.Rental, error) {
	distance, err := parseQuantity("distance", r.Distance)
	if err != nil {
		return nil, err
	}
	energy, err := parseQuantity("energy_consumed", r.EnergyConsumed)
	if err != nil {
		return nil, err
	}
	cityDistance := decimal.Zero
	if r.CityDistance != "" {
		if cityDistance, err = parseQuantity("city_distance", r.CityDistance); err != nil {
			return nil, err
		}
	}

	return rental.New(rental.Params{
		Category:         r.VehicleCategory,
		Distance:         distance,
		EnergyConsumed:   energy,
		MotorwayVignette: r.MotorwayVignette,
		TunnelPassages:   r.TunnelPassages,
		CityDistance:     cityDistance,
	})
}

func parseQuantity(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, ierr.WithError(err).
			WithHintf("%s must be a valid decimal number", field).
			WithReportableDetails(map[string]interface{}{
				field: value,
			}).
			Mark(ierr.ErrValidation)
	}
	if !types.QuantityInRange(d) {
		return decimal.Zero, ierr.NewErrorf("%s is out of range", field).
			WithHintf("%s must be at most %d digits with at most %d decimal places", field, types.QuantityMaxDigits, types.QuantityMaxFractionDigits).
			WithReportableDetails(map[string]interface{}{
				field: "out_of_range",
			}).
			Mark(ierr.ErrValidation)
	}
	return d, nil
}

// DailySummaryRequest prices a whole day of rentals at once. An empty list is valid.
type DailySummaryRequest struct {
	Rentals []CreateRentalRequest `json:"rentals" validate:"dive"`
}

func (r *DailySummaryRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	for i := range r.Rentals {
		if err := r.Rentals[i].VehicleCategory.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r *DailySummaryRequest) ToRentals() ([]*rental.Rental, error) {
	rentals := make([]*rental.Rental, 0, len(r.Rentals))
	for i := range r.Rentals {
		rent, err := r.Rentals[i].ToRental()
		if err != nil {
			return nil, ierr.WithError(err).
				WithHintf("Rental #%d is invalid", i+1).
				WithReportableDetails(map[string]interface{}{
					"position": i + 1,
				}).
				Mark(ierr.ErrValidation)
		}
		rentals = append(rentals, rent)
	}
	return rentals, nil
}

type RentalResponse struct {
	Position         int                   `json:"position,omitempty"`
	VehicleCategory  types.VehicleCategory `json:"vehicle_category"`
	DisplayName      string                `json:"display_name"`
	Distance         string                `json:"distance"`
	EnergyConsumed   string                `json:"energy_consumed"`
	EnergyUnit       string                `json:"energy_unit"`
	MotorwayVignette bool                  `json:"motorway_vignette"`
	TunnelPassages   int                   `json:"tunnel_passages"`
	CityDistance     string                `json:"city_distance"`
}

func NewRentalResponse(r *rental.Rental, position int) *RentalResponse {
	profile := vehicle.MustGet(r.Category())
	return &RentalResponse{
		Position:         position,
		VehicleCategory:  r.Category(),
		DisplayName:      profile.DisplayName,
		Distance:         types.FormatQuantity(r.Distance()),
		EnergyConsumed:   types.FormatQuantity(r.EnergyConsumed()),
		EnergyUnit:       profile.EnergyUnit,
		MotorwayVignette: r.HasMotorwayVignette(),
		TunnelPassages:   r.TunnelPassages(),
		CityDistance:     types.FormatQuantity(r.CityDistance()),
	}
}

// CostBreakdownResponse renders every amount with two fractional digits
type CostBreakdownResponse struct {
	Rental         *RentalResponse `json:"rental"`
	DistanceCost   string          `json:"distance_cost"`
	EnergyCost     string          `json:"energy_cost"`
	VignetteCost   string          `json:"vignette_cost"`
	TunnelCost     string          `json:"tunnel_cost"`
	CongestionCost string          `json:"congestion_cost"`
	EcoBonus       string          `json:"eco_bonus"`
	Subtotal       string          `json:"subtotal"`
	Currency       string          `json:"currency"`
}

func NewCostBreakdownResponse(b *pricing.CostBreakdown, position int) *CostBreakdownResponse {
	return &CostBreakdownResponse{
		Rental:         NewRentalResponse(b.Rental, position),
		DistanceCost:   types.FormatAmount(b.DistanceCost),
		EnergyCost:     types.FormatAmount(b.EnergyCost),
		VignetteCost:   types.FormatAmount(b.VignetteCost),
		TunnelCost:     types.FormatAmount(b.TunnelCost),
		CongestionCost: types.FormatAmount(b.CongestionCost),
		EcoBonus:       types.FormatAmount(b.EcoBonus),
		Subtotal:       types.FormatAmount(b.Subtotal),
		Currency:       types.DefaultCurrency,
	}
}

type DailySummaryResponse struct {
	Items      []*CostBreakdownResponse `json:"items"`
	Count      int                      `json:"count"`
	GrandTotal string                   `json:"grand_total"`
	Currency   string                   `json:"currency"`
}

// NewDailySummaryResponse numbers breakdowns from 1 in summary order
func NewDailySummaryResponse(s *pricing.DailySummary) *DailySummaryResponse {
	return &DailySummaryResponse{
		Items: lo.Map(s.Breakdowns, func(b *pricing.CostBreakdown, i int) *CostBreakdownResponse {
			return NewCostBreakdownResponse(b, i+1)
		}),
		Count:      s.Count(),
		GrandTotal: types.FormatAmount(s.GrandTotal),
		Currency:   types.DefaultCurrency,
	}
}
