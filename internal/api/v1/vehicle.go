package v1

import (
	"net/http"

	"github.com/flexprice/vanrental/internal/api/dto"
	"github.com/flexprice/vanrental/internal/domain/vehicle"
	"github.com/gin-gonic/gin"
)

type VehicleHandler struct{}

func NewVehicleHandler() *VehicleHandler {
	return &VehicleHandler{}
}

// @Summary List vehicle categories
// @Description List every rentable vehicle category with its rates
// @Tags Vehicles
// @Produce json
// @Success 200 {object} dto.ListVehiclesResponse
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewListVehiclesResponse(vehicle.List()))
}
