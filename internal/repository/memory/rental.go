package memory

import (
	"context"
	"sync"

	"github.com/flexprice/vanrental/internal/domain/rental"
	ierr "github.com/flexprice/vanrental/internal/errors"
)

// RentalStore is an append-only, in-memory rental.Repository. Nothing
// survives the process; reads return snapshots so callers never observe
// later appends.
type RentalStore struct {
	mu      sync.RWMutex
	rentals []*rental.Rental
}

func NewRentalStore() *RentalStore {
	return &RentalStore{}
}

// Append stores r and returns its 1-based position
func (s *RentalStore) Append(_ context.Context, r *rental.Rental) (int, error) {
	if r == nil {
		return 0, ierr.NewError("rental cannot be nil").
			WithHint("Rental cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rentals = append(s.rentals, r)
	return len(s.rentals), nil
}

func (s *RentalStore) Get(_ context.Context, position int) (*rental.Rental, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if position < 1 || position > len(s.rentals) {
		return nil, ierr.NewErrorf("rental %d not found", position).
			WithHintf("Select a rental between 1 and %d", len(s.rentals)).
			WithReportableDetails(map[string]interface{}{
				"position": position,
				"count":    len(s.rentals),
			}).
			Mark(ierr.ErrNotFound)
	}
	return s.rentals[position-1], nil
}

func (s *RentalStore) List(_ context.Context) ([]*rental.Rental, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]*rental.Rental, len(s.rentals))
	copy(snapshot, s.rentals)
	return snapshot, nil
}

func (s *RentalStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.rentals), nil
}
