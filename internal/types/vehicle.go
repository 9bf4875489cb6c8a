package types

import (
	ierr "github.com/flexprice/vanrental/internal/errors"
)

// VehicleCategory identifies one of the van categories offered for rent
type VehicleCategory string

const (
	VehicleCategoryCompactVan VehicleCategory = "COMPACT_VAN"
	VehicleCategoryLargeVan   VehicleCategory = "LARGE_VAN"
	VehicleCategoryEVan       VehicleCategory = "E_VAN"
)

// VehicleCategories lists every category in menu order
var VehicleCategories = []VehicleCategory{
	VehicleCategoryCompactVan,
	VehicleCategoryLargeVan,
	VehicleCategoryEVan,
}

func (c VehicleCategory) String() string {
	return string(c)
}

// IsElectric reports whether the category is billed per kWh
func (c VehicleCategory) IsElectric() bool {
	return c == VehicleCategoryEVan
}

func (c VehicleCategory) Validate() error {
	switch c {
	case VehicleCategoryCompactVan, VehicleCategoryLargeVan, VehicleCategoryEVan:
		return nil
	}
	return ierr.NewError("invalid vehicle category").
		WithHint("Vehicle category must be one of COMPACT_VAN, LARGE_VAN or E_VAN").
		WithReportableDetails(map[string]interface{}{
			"vehicle_category": string(c),
		}).
		Mark(ierr.ErrValidation)
}
