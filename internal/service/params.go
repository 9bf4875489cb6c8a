package service

import (
	"github.com/flexprice/vanrental/internal/config"
	"github.com/flexprice/vanrental/internal/domain/pricing"
	"github.com/flexprice/vanrental/internal/domain/rental"
	"github.com/flexprice/vanrental/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger     *logger.Logger
	Config     *config.Configuration
	RentalRepo rental.Repository
	Calculator *pricing.Calculator
}

// NewServiceParams creates a new ServiceParams instance
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	rentalRepo rental.Repository,
	calculator *pricing.Calculator,
) ServiceParams {
	return ServiceParams{
		Logger:     logger,
		Config:     config,
		RentalRepo: rentalRepo,
		Calculator: calculator,
	}
}
