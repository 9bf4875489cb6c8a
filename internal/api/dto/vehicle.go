package dto

import (
	"github.com/flexprice/vanrental/internal/domain/vehicle"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/samber/lo"
)

type VehicleResponse struct {
	Category          types.VehicleCategory `json:"category"`
	DisplayName       string                `json:"display_name"`
	RatePerKm         string                `json:"rate_per_km"`
	RatePerEnergyUnit string                `json:"rate_per_energy_unit"`
	EnergyUnit        string                `json:"energy_unit"`
}

type ListVehiclesResponse struct {
	Items    []*VehicleResponse `json:"items"`
	Currency string             `json:"currency"`
}

func NewListVehiclesResponse(profiles []vehicle.Profile) *ListVehiclesResponse {
	return &ListVehiclesResponse{
		Items: lo.Map(profiles, func(p vehicle.Profile, _ int) *VehicleResponse {
			return &VehicleResponse{
				Category:          p.Category,
				DisplayName:       p.DisplayName,
				RatePerKm:         types.FormatAmount(p.RatePerDistanceUnit),
				RatePerEnergyUnit: types.FormatAmount(p.RatePerEnergyUnit),
				EnergyUnit:        p.EnergyUnit,
			}
		}),
		Currency: types.DefaultCurrency,
	}
}
