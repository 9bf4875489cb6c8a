package rental

import "context"

// Repository stores the rentals entered during a session, in entry order
type Repository interface {
	Append(ctx context.Context, r *Rental) (int, error)
	// Get returns the rental at a 1-based position
	Get(ctx context.Context, position int) (*Rental, error)
	List(ctx context.Context) ([]*Rental, error)
	Count(ctx context.Context) (int, error)
}
