package service

import (
	"context"

	"github.com/flexprice/vanrental/internal/api/dto"
	"github.com/flexprice/vanrental/internal/domain/pricing"
	"github.com/flexprice/vanrental/internal/domain/rental"
	ierr "github.com/flexprice/vanrental/internal/errors"
	"github.com/flexprice/vanrental/internal/types"
)

// NoRentalsMessage is shown when a report is requested before any rental exists
const NoRentalsMessage = "No rentals added yet."

// RentalService manages the rentals entered during a session and prices them
type RentalService interface {
	AddRental(ctx context.Context, req dto.CreateRentalRequest) (*dto.RentalResponse, error)
	ListRentals(ctx context.Context) ([]*rental.Rental, error)
	GetReceipt(ctx context.Context, position int) (*pricing.CostBreakdown, error)
	GetDailySummary(ctx context.Context) (*pricing.DailySummary, error)
	GetReferenceSummary(ctx context.Context) *pricing.DailySummary

	// Quote and QuoteDay price rentals without storing them
	Quote(ctx context.Context, req dto.CreateRentalRequest) (*dto.CostBreakdownResponse, error)
	QuoteDay(ctx context.Context, req dto.DailySummaryRequest) (*pricing.DailySummary, error)
}

type rentalService struct {
	ServiceParams
}

func NewRentalService(params ServiceParams) RentalService {
	return &rentalService{
		ServiceParams: params,
	}
}

func (s *rentalService) AddRental(ctx context.Context, req dto.CreateRentalRequest) (*dto.RentalResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r, err := req.ToRental()
	if err != nil {
		return nil, err
	}

	position, err := s.RentalRepo.Append(ctx, r)
	if err != nil {
		return nil, err
	}

	s.Logger.WithContext(ctx).Infow("rental added",
		"position", position,
		"vehicle_category", r.Category(),
		"distance", r.Distance().String(),
	)

	return dto.NewRentalResponse(r, position), nil
}

func (s *rentalService) ListRentals(ctx context.Context) ([]*rental.Rental, error) {
	return s.RentalRepo.List(ctx)
}

func (s *rentalService) GetReceipt(ctx context.Context, position int) (*pricing.CostBreakdown, error) {
	if err := s.ensureRentals(ctx); err != nil {
		return nil, err
	}

	r, err := s.RentalRepo.Get(ctx, position)
	if err != nil {
		return nil, err
	}

	b := s.Calculator.Price(r)
	s.Logger.WithContext(ctx).Debugw("receipt priced",
		"position", position,
		"subtotal", types.FormatAmount(b.Subtotal),
	)
	return b, nil
}

func (s *rentalService) GetDailySummary(ctx context.Context) (*pricing.DailySummary, error) {
	if err := s.ensureRentals(ctx); err != nil {
		return nil, err
	}

	rentals, err := s.RentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := s.Calculator.Aggregate(rentals)
	s.Logger.WithContext(ctx).Infow("daily summary generated",
		"rentals", summary.Count(),
		"grand_total", types.FormatAmount(summary.GrandTotal),
	)
	return summary, nil
}

func (s *rentalService) GetReferenceSummary(ctx context.Context) *pricing.DailySummary {
	return s.Calculator.Aggregate(rental.ReferenceDay())
}

func (s *rentalService) Quote(ctx context.Context, req dto.CreateRentalRequest) (*dto.CostBreakdownResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r, err := req.ToRental()
	if err != nil {
		return nil, err
	}

	return dto.NewCostBreakdownResponse(s.Calculator.Price(r), 0), nil
}

func (s *rentalService) QuoteDay(ctx context.Context, req dto.DailySummaryRequest) (*pricing.DailySummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rentals, err := req.ToRentals()
	if err != nil {
		return nil, err
	}

	summary := s.Calculator.Aggregate(rentals)
	s.Logger.WithContext(ctx).Debugw("daily quote priced",
		"rentals", summary.Count(),
		"grand_total", types.FormatAmount(summary.GrandTotal),
	)
	return summary, nil
}

func (s *rentalService) ensureRentals(ctx context.Context) error {
	count, err := s.RentalRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		return ierr.NewError("no rentals added yet").
			WithHint(NoRentalsMessage).
			Mark(ierr.ErrInvalidOperation)
	}
	return nil
}
